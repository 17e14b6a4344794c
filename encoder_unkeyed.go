package cbor

import (
	"math"

	"github.com/cbor-go/bridge/internal/wire"
)

// UnkeyedEncoder appends values in order to a deferred array arena.
type UnkeyedEncoder struct {
	arr  *deferredArray
	path CodingPath
}

// CodingPath reports the breadcrumb of the container itself.
func (ue *UnkeyedEncoder) CodingPath() CodingPath { return ue.path }

func (ue *UnkeyedEncoder) nextIndex() int { return len(ue.arr.items) }

func (ue *UnkeyedEncoder) pushLiteral(lit []byte) {
	ue.arr.push(future{kind: futureConcrete, concrete: wire.Encoded{Kind: wire.EncodedLiteral, Literal: lit}})
}

// EncodeNil appends CBOR null.
func (ue *UnkeyedEncoder) EncodeNil() { ue.pushLiteral(wire.AppendNil(nil)) }

// EncodeBool appends a bool.
func (ue *UnkeyedEncoder) EncodeBool(v bool) { ue.pushLiteral(wire.AppendBool(nil, v)) }

// EncodeString appends a text string.
func (ue *UnkeyedEncoder) EncodeString(v string) { ue.pushLiteral(wire.AppendString(nil, v)) }

// EncodeBytes appends a byte string.
func (ue *UnkeyedEncoder) EncodeBytes(v []byte) { ue.pushLiteral(wire.AppendBytes(nil, v)) }

// EncodeInt8 appends a signed 8-bit integer.
func (ue *UnkeyedEncoder) EncodeInt8(v int8) { ue.pushLiteral(signedLiteral(int64(v))) }

// EncodeInt16 appends a signed 16-bit integer.
func (ue *UnkeyedEncoder) EncodeInt16(v int16) { ue.pushLiteral(signedLiteral(int64(v))) }

// EncodeInt32 appends a signed 32-bit integer.
func (ue *UnkeyedEncoder) EncodeInt32(v int32) { ue.pushLiteral(signedLiteral(int64(v))) }

// EncodeInt64 appends a signed 64-bit integer.
func (ue *UnkeyedEncoder) EncodeInt64(v int64) { ue.pushLiteral(signedLiteral(v)) }

// EncodeInt appends a signed machine-width integer.
func (ue *UnkeyedEncoder) EncodeInt(v int) { ue.pushLiteral(signedLiteral(int64(v))) }

// EncodeUint8 appends an unsigned 8-bit integer.
func (ue *UnkeyedEncoder) EncodeUint8(v uint8) { ue.pushLiteral(wire.AppendUint(nil, uint64(v))) }

// EncodeUint16 appends an unsigned 16-bit integer.
func (ue *UnkeyedEncoder) EncodeUint16(v uint16) { ue.pushLiteral(wire.AppendUint(nil, uint64(v))) }

// EncodeUint32 appends an unsigned 32-bit integer.
func (ue *UnkeyedEncoder) EncodeUint32(v uint32) { ue.pushLiteral(wire.AppendUint(nil, uint64(v))) }

// EncodeUint64 appends an unsigned 64-bit integer.
func (ue *UnkeyedEncoder) EncodeUint64(v uint64) { ue.pushLiteral(wire.AppendUint(nil, v)) }

// EncodeUint appends an unsigned machine-width integer.
func (ue *UnkeyedEncoder) EncodeUint(v uint) { ue.pushLiteral(wire.AppendUint(nil, uint64(v))) }

// EncodeFloat32 appends a float32.
func (ue *UnkeyedEncoder) EncodeFloat32(v float32) {
	ue.pushLiteral(wire.AppendFloat32(nil, math.Float32bits(v)))
}

// EncodeFloat64 appends a float64.
func (ue *UnkeyedEncoder) EncodeFloat64(v float64) {
	ue.pushLiteral(wire.AppendFloat64(nil, math.Float64bits(v)))
}

// Encode runs v's EncodeCBOR against a fresh sub-encoder and appends its
// result.
func (ue *UnkeyedEncoder) Encode(v Encodable) error {
	path := ue.path.append(indexElement(ue.nextIndex()))
	val, err := encodeNested(path, v)
	if err != nil {
		return err
	}
	ue.arr.push(future{kind: futureConcrete, concrete: val})
	return nil
}

// NestedKeyedEncoderUnkeyed appends a nested keyed container, keyed by K.
// Free function: K cannot be introduced by a method of UnkeyedEncoder.
func NestedKeyedEncoderUnkeyed[K CodingKey](ue *UnkeyedEncoder) *KeyedEncoder[K] {
	mp := newDeferredMap()
	ue.arr.push(future{kind: futureMap, mp: mp})
	return &KeyedEncoder[K]{mp: mp, path: ue.path.append(indexElement(ue.nextIndex() - 1))}
}

// NestedUnkeyedEncoder appends a nested unkeyed container.
func (ue *UnkeyedEncoder) NestedUnkeyedEncoder() *UnkeyedEncoder {
	arr := &deferredArray{}
	ue.arr.push(future{kind: futureArray, arr: arr})
	return &UnkeyedEncoder{arr: arr, path: ue.path.append(indexElement(ue.nextIndex() - 1))}
}

// SuperEncoder appends an encoder slot, used by types that model
// inheritance by unkeyed composition.
func (ue *UnkeyedEncoder) SuperEncoder() *Encoder {
	path := ue.path.append(indexElement(ue.nextIndex()))
	sub := newEncoder(path)
	ue.arr.push(future{kind: futureEncoder, enc: sub})
	return sub
}

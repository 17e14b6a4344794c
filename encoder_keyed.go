package cbor

import (
	"math"

	"github.com/cbor-go/bridge/internal/wire"
)

// KeyedEncoder writes named slots into a deferred map arena, keyed by K
// at the call site. Keys may be written in any order; the map is
// finalized in first-write order, matching the insertion-order guarantee
// decoding relies on.
type KeyedEncoder[K CodingKey] struct {
	mp   *deferredMap
	path CodingPath
}

// CodingPath reports the breadcrumb of the container itself.
func (ke *KeyedEncoder[K]) CodingPath() CodingPath { return ke.path }

// EncodeNil encodes CBOR null for key.
func (ke *KeyedEncoder[K]) EncodeNil(key K) {
	ke.mp.setValue(key.StringValue(), wire.Encoded{Kind: wire.EncodedLiteral, Literal: wire.AppendNil(nil)})
}

// EncodeBool encodes a bool for key.
func (ke *KeyedEncoder[K]) EncodeBool(key K, v bool) {
	ke.mp.setValue(key.StringValue(), wire.Encoded{Kind: wire.EncodedLiteral, Literal: wire.AppendBool(nil, v)})
}

// EncodeString encodes a text string for key.
func (ke *KeyedEncoder[K]) EncodeString(key K, v string) {
	ke.mp.setValue(key.StringValue(), wire.Encoded{Kind: wire.EncodedLiteral, Literal: wire.AppendString(nil, v)})
}

// EncodeBytes encodes a byte string for key.
func (ke *KeyedEncoder[K]) EncodeBytes(key K, v []byte) {
	ke.mp.setValue(key.StringValue(), wire.Encoded{Kind: wire.EncodedLiteral, Literal: wire.AppendBytes(nil, v)})
}

func (ke *KeyedEncoder[K]) setSigned(key K, v int64) {
	ke.mp.setValue(key.StringValue(), wire.Encoded{Kind: wire.EncodedLiteral, Literal: signedLiteral(v)})
}

func (ke *KeyedEncoder[K]) setUnsigned(key K, v uint64) {
	ke.mp.setValue(key.StringValue(), wire.Encoded{Kind: wire.EncodedLiteral, Literal: wire.AppendUint(nil, v)})
}

// EncodeInt8 encodes a signed 8-bit integer for key.
func (ke *KeyedEncoder[K]) EncodeInt8(key K, v int8) { ke.setSigned(key, int64(v)) }

// EncodeInt16 encodes a signed 16-bit integer for key.
func (ke *KeyedEncoder[K]) EncodeInt16(key K, v int16) { ke.setSigned(key, int64(v)) }

// EncodeInt32 encodes a signed 32-bit integer for key.
func (ke *KeyedEncoder[K]) EncodeInt32(key K, v int32) { ke.setSigned(key, int64(v)) }

// EncodeInt64 encodes a signed 64-bit integer for key.
func (ke *KeyedEncoder[K]) EncodeInt64(key K, v int64) { ke.setSigned(key, v) }

// EncodeInt encodes a signed machine-width integer for key.
func (ke *KeyedEncoder[K]) EncodeInt(key K, v int) { ke.setSigned(key, int64(v)) }

// EncodeUint8 encodes an unsigned 8-bit integer for key.
func (ke *KeyedEncoder[K]) EncodeUint8(key K, v uint8) { ke.setUnsigned(key, uint64(v)) }

// EncodeUint16 encodes an unsigned 16-bit integer for key.
func (ke *KeyedEncoder[K]) EncodeUint16(key K, v uint16) { ke.setUnsigned(key, uint64(v)) }

// EncodeUint32 encodes an unsigned 32-bit integer for key.
func (ke *KeyedEncoder[K]) EncodeUint32(key K, v uint32) { ke.setUnsigned(key, uint64(v)) }

// EncodeUint64 encodes an unsigned 64-bit integer for key.
func (ke *KeyedEncoder[K]) EncodeUint64(key K, v uint64) { ke.setUnsigned(key, v) }

// EncodeUint encodes an unsigned machine-width integer for key.
func (ke *KeyedEncoder[K]) EncodeUint(key K, v uint) { ke.setUnsigned(key, uint64(v)) }

// EncodeFloat32 encodes a float32 for key.
func (ke *KeyedEncoder[K]) EncodeFloat32(key K, v float32) {
	ke.mp.setValue(key.StringValue(), wire.Encoded{Kind: wire.EncodedLiteral, Literal: wire.AppendFloat32(nil, math.Float32bits(v))})
}

// EncodeFloat64 encodes a float64 for key.
func (ke *KeyedEncoder[K]) EncodeFloat64(key K, v float64) {
	ke.mp.setValue(key.StringValue(), wire.Encoded{Kind: wire.EncodedLiteral, Literal: wire.AppendFloat64(nil, math.Float64bits(v))})
}

// Encode runs v's EncodeCBOR against a fresh sub-encoder and stores its
// result at key.
func (ke *KeyedEncoder[K]) Encode(key K, v Encodable) error {
	val, err := encodeNested(ke.path.append(keyElement(key)), v)
	if err != nil {
		return err
	}
	ke.mp.setValue(key.StringValue(), val)
	return nil
}

// NestedKeyedEncoder opens a nested keyed container at key, keyed by K2.
// Free function: K2 cannot be introduced by a method of KeyedEncoder[K].
func NestedKeyedEncoder[K2 CodingKey, K CodingKey](ke *KeyedEncoder[K], key K) *KeyedEncoder[K2] {
	mp := ke.mp.openMap(key.StringValue())
	return &KeyedEncoder[K2]{mp: mp, path: ke.path.append(keyElement(key))}
}

// NestedUnkeyedEncoder opens a nested unkeyed container at key.
func (ke *KeyedEncoder[K]) NestedUnkeyedEncoder(key K) *UnkeyedEncoder {
	arr := ke.mp.openArray(key.StringValue())
	return &UnkeyedEncoder{arr: arr, path: ke.path.append(keyElement(key))}
}

// SuperEncoder returns an encoder for the "super" slot, used by types
// that model inheritance to encode their base-class payload.
func (ke *KeyedEncoder[K]) SuperEncoder() *Encoder {
	sub := newEncoder(ke.path.append(PathElement{Key: superKey}))
	ke.mp.setEncoder(superKey, sub)
	return sub
}

// SuperEncoderForKey returns an encoder for the slot named by key rather
// than the default "super" name.
func (ke *KeyedEncoder[K]) SuperEncoderForKey(key K) *Encoder {
	sub := newEncoder(ke.path.append(keyElement(key)))
	ke.mp.setEncoder(key.StringValue(), sub)
	return sub
}

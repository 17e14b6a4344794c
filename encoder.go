package cbor

import (
	"math"

	"github.com/cbor-go/bridge/internal/wire"
)

// encoderState tracks which single shape an Encoder has committed to
// producing. Once non-empty, producing a different shape is a contract
// violation; producing the same container kind again reuses the existing
// arena, matching a Codable-style container(keyedBy:) being requested
// more than once.
type encoderState uint8

const (
	stateEmpty encoderState = iota
	stateValue
	stateArray
	stateMap
)

// Encoder accumulates exactly one encoded value: a literal, a nested
// Encodable's result, or a deferred array/map arena that is resolved only
// at Marshal time.
type Encoder struct {
	path  CodingPath
	state encoderState
	value wire.Encoded
	arr   *deferredArray
	mp    *deferredMap
}

func newEncoder(path CodingPath) *Encoder { return &Encoder{path: path} }

// CodingPath reports the breadcrumb locating this encoder within the
// overall value graph.
func (e *Encoder) CodingPath() CodingPath { return e.path }

func (e *Encoder) requireEmpty() {
	if e.state != stateEmpty {
		panicContract("encoder at " + e.path.String() + " already produced a value")
	}
}

func (e *Encoder) setLiteral(lit []byte) {
	e.requireEmpty()
	e.value = wire.Encoded{Kind: wire.EncodedLiteral, Literal: lit}
	e.state = stateValue
}

// EncodeNil encodes CBOR null.
func (e *Encoder) EncodeNil() { e.setLiteral(wire.AppendNil(nil)) }

// EncodeBool encodes a bool.
func (e *Encoder) EncodeBool(v bool) { e.setLiteral(wire.AppendBool(nil, v)) }

// EncodeString encodes a text string.
func (e *Encoder) EncodeString(v string) { e.setLiteral(wire.AppendString(nil, v)) }

// EncodeBytes encodes a byte string.
func (e *Encoder) EncodeBytes(v []byte) { e.setLiteral(wire.AppendBytes(nil, v)) }

// signedLiteral implements the major-0/major-1 choice for a signed value
// of any width: non-negative values are major 0; negative values are
// major 1 with argument n = ^v (bitwise complement), which equals -1-v
// for any two's-complement width once v is sign-extended to int64.
func signedLiteral(v int64) []byte {
	if v >= 0 {
		return wire.AppendUint(nil, uint64(v))
	}
	return wire.AppendNInt(nil, uint64(^v))
}

func (e *Encoder) encodeSigned(v int64) { e.setLiteral(signedLiteral(v)) }

// EncodeInt8 encodes a signed 8-bit integer.
func (e *Encoder) EncodeInt8(v int8) { e.encodeSigned(int64(v)) }

// EncodeInt16 encodes a signed 16-bit integer.
func (e *Encoder) EncodeInt16(v int16) { e.encodeSigned(int64(v)) }

// EncodeInt32 encodes a signed 32-bit integer.
func (e *Encoder) EncodeInt32(v int32) { e.encodeSigned(int64(v)) }

// EncodeInt64 encodes a signed 64-bit integer.
func (e *Encoder) EncodeInt64(v int64) { e.encodeSigned(v) }

// EncodeInt encodes a signed machine-width integer.
func (e *Encoder) EncodeInt(v int) { e.encodeSigned(int64(v)) }

// EncodeUint8 encodes an unsigned 8-bit integer.
func (e *Encoder) EncodeUint8(v uint8) { e.setLiteral(wire.AppendUint(nil, uint64(v))) }

// EncodeUint16 encodes an unsigned 16-bit integer.
func (e *Encoder) EncodeUint16(v uint16) { e.setLiteral(wire.AppendUint(nil, uint64(v))) }

// EncodeUint32 encodes an unsigned 32-bit integer.
func (e *Encoder) EncodeUint32(v uint32) { e.setLiteral(wire.AppendUint(nil, uint64(v))) }

// EncodeUint64 encodes an unsigned 64-bit integer.
func (e *Encoder) EncodeUint64(v uint64) { e.setLiteral(wire.AppendUint(nil, v)) }

// EncodeUint encodes an unsigned machine-width integer.
func (e *Encoder) EncodeUint(v uint) { e.setLiteral(wire.AppendUint(nil, uint64(v))) }

// EncodeFloat32 encodes a float32 at its own width (no widening to
// float64, and this bridge never narrows to float16 on encode since Go
// has no native float16 type).
func (e *Encoder) EncodeFloat32(v float32) {
	e.setLiteral(wire.AppendFloat32(nil, math.Float32bits(v)))
}

// EncodeFloat64 encodes a float64.
func (e *Encoder) EncodeFloat64(v float64) {
	e.setLiteral(wire.AppendFloat64(nil, math.Float64bits(v)))
}

// Encode runs v's own EncodeCBOR against a fresh sub-encoder, wraps the
// result in v's declared tag if it implements TaggedType, and commits it
// as this encoder's value.
func (e *Encoder) Encode(v Encodable) error {
	e.requireEmpty()
	val, err := encodeNested(e.path, v)
	if err != nil {
		return err
	}
	e.value = val
	e.state = stateValue
	return nil
}

// EncodeTagged runs f against a fresh sub-encoder and wraps its result in
// the given explicit tag number. Use this instead of TaggedType when a
// value's tag cannot be expressed as one fixed CBORTag() — for example a
// bignum whose tag (2 or 3) depends on its own sign.
func (e *Encoder) EncodeTagged(tag uint64, f func(*Encoder) error) error {
	e.requireEmpty()
	sub := newEncoder(e.path)
	if err := f(sub); err != nil {
		return err
	}
	val, err := sub.finalize()
	if err != nil {
		return err
	}
	e.value = wire.Encoded{Kind: wire.EncodedTagged, Tag: wire.AppendTagHead(nil, tag), Value: &val}
	e.state = stateValue
	return nil
}

func encodeNested(path CodingPath, v Encodable) (wire.Encoded, error) {
	sub := newEncoder(path)
	if err := v.EncodeCBOR(sub); err != nil {
		return wire.Encoded{}, err
	}
	val, err := sub.finalize()
	if err != nil {
		return wire.Encoded{}, err
	}
	if tagged, ok := v.(TaggedType); ok {
		wrapped := val
		return wire.Encoded{
			Kind:  wire.EncodedTagged,
			Tag:   wire.AppendTagHead(nil, tagged.CBORTag()),
			Value: &wrapped,
		}, nil
	}
	return val, nil
}

// EncodeKeyed opens (or reuses) a keyed encoding container, keyed by K,
// over e. It is a free function rather than a method because Go methods
// cannot introduce their own type parameters.
func EncodeKeyed[K CodingKey](e *Encoder) *KeyedEncoder[K] {
	switch e.state {
	case stateEmpty:
		e.mp = newDeferredMap()
		e.state = stateMap
	case stateMap:
	default:
		panicContract("encoder at " + e.path.String() + " already produced a non-map value")
	}
	return &KeyedEncoder[K]{mp: e.mp, path: e.path}
}

// UnkeyedContainer opens (or reuses) an unkeyed encoding container over e.
func (e *Encoder) UnkeyedContainer() *UnkeyedEncoder {
	switch e.state {
	case stateEmpty:
		e.arr = &deferredArray{}
		e.state = stateArray
	case stateArray:
	default:
		panicContract("encoder at " + e.path.String() + " already produced a non-array value")
	}
	return &UnkeyedEncoder{arr: e.arr, path: e.path}
}

func (e *Encoder) finalize() (wire.Encoded, error) {
	switch e.state {
	case stateValue:
		return e.value, nil
	case stateArray:
		return e.arr.finalize(e.path)
	case stateMap:
		return e.mp.finalize(e.path)
	default:
		return wire.Encoded{}, newEncodingError(e.path, ErrNoValueEncoded)
	}
}

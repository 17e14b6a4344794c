package cbor

import (
	"strconv"

	"github.com/cbor-go/bridge/internal/wire"
)

// decoderValue is a local alias for wire.Value so sibling files in this
// package (decoder_unkeyed.go) can reference it without importing the
// internal package twice.
type decoderValue = wire.Value

// Decoder exposes one scanned wire.Value as a single-value decoding
// container, and builds keyed/unkeyed containers over it when the value
// is a Map or Array.
type Decoder struct {
	value wire.Value
	path  CodingPath
}

func newDecoder(v wire.Value, path CodingPath) *Decoder {
	return &Decoder{value: v, path: path}
}

// CodingPath reports the breadcrumb locating this decoder within the
// overall value graph.
func (d *Decoder) CodingPath() CodingPath { return d.path }

func (d *Decoder) fail(kind DecodingErrorKind, err error) error {
	return newDecodingError(kind, d.path, err)
}

func wireErrKind(err error) DecodingErrorKind {
	switch err {
	case wire.ErrTypeMismatch:
		return TypeMismatch
	default:
		return DataCorrupted
	}
}

func (d *Decoder) convertErr(err error) error {
	if err == nil {
		return nil
	}
	return d.fail(wireErrKind(err), err)
}

// DecodeNil reports whether the value is CBOR null/undefined.
func (d *Decoder) DecodeNil() bool { return wire.IsNil(d.value) }

// DecodeBool decodes a CBOR boolean.
func (d *Decoder) DecodeBool() (bool, error) {
	v, err := wire.IntoBool(d.value)
	if err != nil {
		return false, d.convertErr(err)
	}
	return v, nil
}

// DecodeString decodes a CBOR text string, validating UTF-8.
func (d *Decoder) DecodeString() (string, error) {
	v, err := wire.IntoString(d.value)
	if err != nil {
		return "", d.convertErr(err)
	}
	return v, nil
}

// DecodeBytes decodes a CBOR byte string.
func (d *Decoder) DecodeBytes() ([]byte, error) {
	v, err := wire.IntoBytes(d.value)
	if err != nil {
		return nil, d.convertErr(err)
	}
	return v, nil
}

func (d *Decoder) decodeSigned(bits int) (int64, error) {
	v, err := wire.IntoSigned(d.value, bits)
	if err != nil {
		return 0, d.convertErr(err)
	}
	return v, nil
}

func (d *Decoder) decodeUnsigned(bits int) (uint64, error) {
	v, err := wire.IntoUnsigned(d.value, bits)
	if err != nil {
		return 0, d.convertErr(err)
	}
	return v, nil
}

// DecodeInt8 decodes a signed 8-bit integer, truncating per RFC narrowing.
func (d *Decoder) DecodeInt8() (int8, error) { v, err := d.decodeSigned(8); return int8(v), err }

// DecodeInt16 decodes a signed 16-bit integer.
func (d *Decoder) DecodeInt16() (int16, error) { v, err := d.decodeSigned(16); return int16(v), err }

// DecodeInt32 decodes a signed 32-bit integer.
func (d *Decoder) DecodeInt32() (int32, error) { v, err := d.decodeSigned(32); return int32(v), err }

// DecodeInt64 decodes a signed 64-bit integer.
func (d *Decoder) DecodeInt64() (int64, error) { return d.decodeSigned(64) }

// DecodeInt decodes a signed machine-width integer.
func (d *Decoder) DecodeInt() (int, error) { v, err := d.decodeSigned(64); return int(v), err }

// DecodeUint8 decodes an unsigned 8-bit integer.
func (d *Decoder) DecodeUint8() (uint8, error) { v, err := d.decodeUnsigned(8); return uint8(v), err }

// DecodeUint16 decodes an unsigned 16-bit integer.
func (d *Decoder) DecodeUint16() (uint16, error) {
	v, err := d.decodeUnsigned(16)
	return uint16(v), err
}

// DecodeUint32 decodes an unsigned 32-bit integer.
func (d *Decoder) DecodeUint32() (uint32, error) {
	v, err := d.decodeUnsigned(32)
	return uint32(v), err
}

// DecodeUint64 decodes an unsigned 64-bit integer. Named plainly (not
// decode64), unlike the mis-named unkeyed entry point this library's
// reference lineage once carried.
func (d *Decoder) DecodeUint64() (uint64, error) { return d.decodeUnsigned(64) }

// DecodeUint decodes an unsigned machine-width integer.
func (d *Decoder) DecodeUint() (uint, error) { v, err := d.decodeUnsigned(64); return uint(v), err }

// DecodeFloat32 decodes a CBOR float, narrowing to float32 if the wire
// value was wider.
func (d *Decoder) DecodeFloat32() (float32, error) {
	v, err := wire.IntoFloat64(d.value)
	if err != nil {
		return 0, d.convertErr(err)
	}
	return float32(v), nil
}

// DecodeFloat64 decodes a CBOR float, widening narrower encodings.
func (d *Decoder) DecodeFloat64() (float64, error) {
	v, err := wire.IntoFloat64(d.value)
	if err != nil {
		return 0, d.convertErr(err)
	}
	return v, nil
}

// Decode delegates to v's own DecodeCBOR, honoring its TaggedType
// capability if present.
func (d *Decoder) Decode(v Decodable) error {
	return decodeTagged(d, v)
}

func decodeTagged(d *Decoder, v Decodable) error {
	if tagged, ok := v.(TaggedType); ok {
		if d.value.Kind != wire.KindTagged {
			return d.fail(TypeMismatch, errExpectedTag)
		}
		if d.value.Tag != tagged.CBORTag() {
			return d.fail(DataCorrupted, tagMismatchError{Want: tagged.CBORTag(), Got: d.value.Tag})
		}
		inner := newDecoder(*d.value.Tagged, d.path)
		return v.DecodeCBOR(inner)
	}
	return v.DecodeCBOR(d)
}

// DecodeTag validates that d's value is a CBOR tag and returns the tag
// number together with a decoder over the wrapped inner value. Use this
// instead of TaggedType when a value's tag cannot be checked against one
// fixed CBORTag() — for example a bignum whose tag (2 or 3) depends on
// its own sign, which isn't known until after decoding.
func (d *Decoder) DecodeTag() (uint64, *Decoder, error) {
	if d.value.Kind != wire.KindTagged {
		return 0, nil, d.fail(TypeMismatch, errExpectedTag)
	}
	return d.value.Tag, newDecoder(*d.value.Tagged, d.path), nil
}

// DecodeKeyed builds a keyed decoding container, keyed by K, over d's
// value, which must be a CBOR map. It is a free function rather than a
// method because Go methods cannot introduce their own type parameters.
func DecodeKeyed[K CodingKey](d *Decoder) (*KeyedDecoder[K], error) {
	if d.value.Kind != wire.KindMap {
		return nil, d.fail(TypeMismatch, errWantMap)
	}
	return newKeyedDecoder[K](d.value, d.path)
}

// UnkeyedContainer builds an unkeyed decoding container over this value.
// A Map value is coerced into its flattened k,v,k,v sequence; None
// coerces to an empty sequence.
func (d *Decoder) UnkeyedContainer() (*UnkeyedDecoder, error) {
	switch d.value.Kind {
	case wire.KindArray:
		return newUnkeyedDecoder(d.value.Items, d.path), nil
	case wire.KindMap:
		return newUnkeyedDecoder(d.value.Items, d.path), nil
	case wire.KindNone:
		return newUnkeyedDecoder(nil, d.path), nil
	default:
		return nil, d.fail(TypeMismatch, errWantArray)
	}
}

var (
	errExpectedTag = plainError("expected a tagged value")
	errWantMap     = plainError("expected a CBOR map")
	errWantArray   = plainError("expected a CBOR array")
)

type plainError string

func (e plainError) Error() string { return string(e) }

type tagMismatchError struct{ Want, Got uint64 }

func (e tagMismatchError) Error() string {
	return "tag mismatch: want " + strconv.FormatUint(e.Want, 10) + ", got " + strconv.FormatUint(e.Got, 10)
}

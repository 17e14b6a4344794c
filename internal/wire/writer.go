package wire

import "encoding/binary"

// AppendHead appends the minimal-width head encoding of major type M with
// argument n: inline for n<=23, else the smallest of the 1/2/4/8-byte
// forms. This is total for every uint64 n — there is no unrepresentable
// case, unlike a hand-rolled "n <= Int.max" style branch tree.
func AppendHead(b []byte, major uint8, n uint64) []byte {
	switch {
	case n <= aiDirectMax:
		return append(b, makeHead(major, uint8(n)))
	case n <= 0xFF:
		return append(b, makeHead(major, aiUint8), uint8(n))
	case n <= 0xFFFF:
		b = append(b, makeHead(major, aiUint16))
		return binary.BigEndian.AppendUint16(b, uint16(n))
	case n <= 0xFFFFFFFF:
		b = append(b, makeHead(major, aiUint32))
		return binary.BigEndian.AppendUint32(b, uint32(n))
	default:
		b = append(b, makeHead(major, aiUint64))
		return binary.BigEndian.AppendUint64(b, n)
	}
}

// AppendUint appends a complete major-0 unsigned integer literal.
func AppendUint(b []byte, v uint64) []byte { return AppendHead(b, MajorUint, v) }

// AppendNInt appends a complete major-1 negative integer literal whose
// argument is n (representing the value -1-n).
func AppendNInt(b []byte, n uint64) []byte { return AppendHead(b, MajorNInt, n) }

// AppendTagHead appends the major-6 head+argument encoding of a tag
// number, with no wrapped value.
func AppendTagHead(b []byte, tag uint64) []byte { return AppendHead(b, MajorTag, tag) }

// AppendBool appends a complete bool literal.
func AppendBool(b []byte, v bool) []byte {
	if v {
		return append(b, makeHead(MajorSimple, simpleTrue))
	}
	return append(b, makeHead(MajorSimple, simpleFalse))
}

// AppendNil appends the CBOR null literal.
func AppendNil(b []byte) []byte { return append(b, makeHead(MajorSimple, simpleNull)) }

// AppendString appends a complete major-3 text string literal.
func AppendString(b []byte, s string) []byte {
	b = AppendHead(b, MajorText, uint64(len(s)))
	return append(b, s...)
}

// AppendBytes appends a complete major-2 byte string literal.
func AppendBytes(b []byte, v []byte) []byte {
	b = AppendHead(b, MajorBytes, uint64(len(v)))
	return append(b, v...)
}

// AppendFloat16 appends a complete 2-byte float literal from its raw bits.
func AppendFloat16(b []byte, bits uint16) []byte {
	b = append(b, makeHead(MajorSimple, simpleFloat16))
	return binary.BigEndian.AppendUint16(b, bits)
}

// AppendFloat32 appends a complete 4-byte float literal.
func AppendFloat32(b []byte, bits uint32) []byte {
	b = append(b, makeHead(MajorSimple, simpleFloat32))
	return binary.BigEndian.AppendUint32(b, bits)
}

// AppendFloat64 appends a complete 8-byte float literal.
func AppendFloat64(b []byte, bits uint64) []byte {
	b = append(b, makeHead(MajorSimple, simpleFloat64))
	return binary.BigEndian.AppendUint64(b, bits)
}

// Write serializes an Encoded tree depth-first, always choosing definite
// container lengths (indefinite forms are never produced on encode).
func Write(b []byte, v Encoded) ([]byte, error) {
	switch v.Kind {
	case EncodedNone:
		return b, nil
	case EncodedLiteral:
		return append(b, v.Literal...), nil
	case EncodedTagged:
		b = append(b, v.Tag...)
		if v.Value == nil {
			return b, nil
		}
		return Write(b, *v.Value)
	case EncodedArray:
		b = AppendHead(b, MajorArray, uint64(len(v.Items)))
		for _, item := range v.Items {
			var err error
			b, err = Write(b, item)
			if err != nil {
				return b, err
			}
		}
		return b, nil
	case EncodedMap:
		b = AppendHead(b, MajorMap, uint64(len(v.Items)/2))
		for _, item := range v.Items {
			var err error
			b, err = Write(b, item)
			if err != nil {
				return b, err
			}
		}
		return b, nil
	default:
		return b, nil
	}
}

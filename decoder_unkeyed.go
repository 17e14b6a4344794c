package cbor

// UnkeyedDecoder iterates a scanned CBOR array (or a map coerced into its
// flattened k,v,k,v sequence) position by position.
type UnkeyedDecoder struct {
	items []decoderValue
	idx   int
	path  CodingPath
}

func newUnkeyedDecoder(items []decoderValue, path CodingPath) *UnkeyedDecoder {
	return &UnkeyedDecoder{items: items, path: path}
}

// CodingPath reports the breadcrumb of the container itself.
func (ud *UnkeyedDecoder) CodingPath() CodingPath { return ud.path }

// Count returns the total number of elements.
func (ud *UnkeyedDecoder) Count() int { return len(ud.items) }

// CurrentIndex returns the index of the next element to be decoded.
func (ud *UnkeyedDecoder) CurrentIndex() int { return ud.idx }

// IsAtEnd reports whether every element has been consumed.
func (ud *UnkeyedDecoder) IsAtEnd() bool { return ud.idx >= len(ud.items) }

func (ud *UnkeyedDecoder) next() (*Decoder, error) {
	if ud.IsAtEnd() {
		path := ud.path.append(indexElement(ud.idx))
		return nil, newDecodingError(ValueNotFound, path, plainError("unkeyed container exhausted"))
	}
	v := ud.items[ud.idx]
	path := ud.path.append(indexElement(ud.idx))
	ud.idx++
	return newDecoder(v, path), nil
}

// DecodeBool decodes the next element as a bool.
func (ud *UnkeyedDecoder) DecodeBool() (bool, error) {
	d, err := ud.next()
	if err != nil {
		return false, err
	}
	return d.DecodeBool()
}

// DecodeString decodes the next element as a string.
func (ud *UnkeyedDecoder) DecodeString() (string, error) {
	d, err := ud.next()
	if err != nil {
		return "", err
	}
	return d.DecodeString()
}

// DecodeBytes decodes the next element as a byte string.
func (ud *UnkeyedDecoder) DecodeBytes() ([]byte, error) {
	d, err := ud.next()
	if err != nil {
		return nil, err
	}
	return d.DecodeBytes()
}

// DecodeInt8 decodes the next element as a signed 8-bit integer.
func (ud *UnkeyedDecoder) DecodeInt8() (int8, error) {
	d, err := ud.next()
	if err != nil {
		return 0, err
	}
	return d.DecodeInt8()
}

// DecodeInt16 decodes the next element as a signed 16-bit integer.
func (ud *UnkeyedDecoder) DecodeInt16() (int16, error) {
	d, err := ud.next()
	if err != nil {
		return 0, err
	}
	return d.DecodeInt16()
}

// DecodeInt32 decodes the next element as a signed 32-bit integer.
func (ud *UnkeyedDecoder) DecodeInt32() (int32, error) {
	d, err := ud.next()
	if err != nil {
		return 0, err
	}
	return d.DecodeInt32()
}

// DecodeInt64 decodes the next element as a signed 64-bit integer.
func (ud *UnkeyedDecoder) DecodeInt64() (int64, error) {
	d, err := ud.next()
	if err != nil {
		return 0, err
	}
	return d.DecodeInt64()
}

// DecodeInt decodes the next element as a signed machine-width integer.
func (ud *UnkeyedDecoder) DecodeInt() (int, error) {
	d, err := ud.next()
	if err != nil {
		return 0, err
	}
	return d.DecodeInt()
}

// DecodeUint8 decodes the next element as an unsigned 8-bit integer.
func (ud *UnkeyedDecoder) DecodeUint8() (uint8, error) {
	d, err := ud.next()
	if err != nil {
		return 0, err
	}
	return d.DecodeUint8()
}

// DecodeUint16 decodes the next element as an unsigned 16-bit integer.
func (ud *UnkeyedDecoder) DecodeUint16() (uint16, error) {
	d, err := ud.next()
	if err != nil {
		return 0, err
	}
	return d.DecodeUint16()
}

// DecodeUint32 decodes the next element as an unsigned 32-bit integer.
func (ud *UnkeyedDecoder) DecodeUint32() (uint32, error) {
	d, err := ud.next()
	if err != nil {
		return 0, err
	}
	return d.DecodeUint32()
}

// DecodeUint64 decodes the next element as an unsigned 64-bit integer.
// This is the bridge's unkeyed u64 entry point, named plainly rather than
// the mis-named "decode64" this lineage's prior art carried.
func (ud *UnkeyedDecoder) DecodeUint64() (uint64, error) {
	d, err := ud.next()
	if err != nil {
		return 0, err
	}
	return d.DecodeUint64()
}

// DecodeUint decodes the next element as an unsigned machine-width
// integer.
func (ud *UnkeyedDecoder) DecodeUint() (uint, error) {
	d, err := ud.next()
	if err != nil {
		return 0, err
	}
	return d.DecodeUint()
}

// DecodeFloat32 decodes the next element as a float32.
func (ud *UnkeyedDecoder) DecodeFloat32() (float32, error) {
	d, err := ud.next()
	if err != nil {
		return 0, err
	}
	return d.DecodeFloat32()
}

// DecodeFloat64 decodes the next element as a float64.
func (ud *UnkeyedDecoder) DecodeFloat64() (float64, error) {
	d, err := ud.next()
	if err != nil {
		return 0, err
	}
	return d.DecodeFloat64()
}

// Decode decodes the next element into v.
func (ud *UnkeyedDecoder) Decode(v Decodable) error {
	d, err := ud.next()
	if err != nil {
		return err
	}
	return decodeTagged(d, v)
}

// NestedKeyedDecoderUnkeyed opens the next element as a nested keyed
// container.
func NestedKeyedDecoderUnkeyed[K CodingKey](ud *UnkeyedDecoder) (*KeyedDecoder[K], error) {
	d, err := ud.next()
	if err != nil {
		return nil, err
	}
	return DecodeKeyed[K](d)
}

// NestedUnkeyedDecoder opens the next element as a nested unkeyed
// container.
func (ud *UnkeyedDecoder) NestedUnkeyedDecoder() (*UnkeyedDecoder, error) {
	d, err := ud.next()
	if err != nil {
		return nil, err
	}
	return d.UnkeyedContainer()
}

// SuperDecoder returns a decoder over the next element, for types that
// model inheritance by unkeyed composition.
func (ud *UnkeyedDecoder) SuperDecoder() (*Decoder, error) {
	return ud.next()
}

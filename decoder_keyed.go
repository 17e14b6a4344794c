package cbor

import "github.com/cbor-go/bridge/internal/wire"

// KeyedDecoder flattens a scanned CBOR map into an insertion-ordered
// lookup from string key to value, keyed by K at the call site.
type KeyedDecoder[K CodingKey] struct {
	order   []string
	entries map[string]wire.Value
	path    CodingPath
}

func newKeyedDecoder[K CodingKey](v wire.Value, path CodingPath) (*KeyedDecoder[K], error) {
	kd := &KeyedDecoder[K]{entries: make(map[string]wire.Value, len(v.Items)/2)}
	for i := 0; i+1 < len(v.Items); i += 2 {
		keyStr, err := wire.IntoString(v.Items[i])
		if err != nil {
			return nil, newDecodingError(DataCorrupted, path, err)
		}
		if _, dup := kd.entries[keyStr]; dup {
			// First occurrence wins; later duplicates are ignored.
			continue
		}
		kd.entries[keyStr] = v.Items[i+1]
		kd.order = append(kd.order, keyStr)
	}
	kd.path = path
	return kd, nil
}

// CodingPath reports the breadcrumb of the container itself.
func (kd *KeyedDecoder[K]) CodingPath() CodingPath { return kd.path }

// AllKeys returns every key present, in first-insertion order.
func (kd *KeyedDecoder[K]) AllKeys() []string { return append([]string(nil), kd.order...) }

// Contains reports whether key has an entry.
func (kd *KeyedDecoder[K]) Contains(key K) bool {
	_, ok := kd.entries[key.StringValue()]
	return ok
}

// DecodeNil reports whether key is present and holds CBOR null.
func (kd *KeyedDecoder[K]) DecodeNil(key K) bool {
	v, ok := kd.entries[key.StringValue()]
	return ok && wire.IsNil(v)
}

func (kd *KeyedDecoder[K]) lookup(key K) (wire.Value, CodingPath, error) {
	path := kd.path.append(keyElement(key))
	v, ok := kd.entries[key.StringValue()]
	if !ok {
		return wire.Value{}, path, newDecodingError(KeyNotFound, path, plainError("key not present: "+key.StringValue()))
	}
	return v, path, nil
}

func (kd *KeyedDecoder[K]) valueDecoder(key K) (*Decoder, error) {
	v, path, err := kd.lookup(key)
	if err != nil {
		return nil, err
	}
	return newDecoder(v, path), nil
}

// DecodeBool decodes the value for key as a bool.
func (kd *KeyedDecoder[K]) DecodeBool(key K) (bool, error) {
	d, err := kd.valueDecoder(key)
	if err != nil {
		return false, err
	}
	return d.DecodeBool()
}

// DecodeString decodes the value for key as a string.
func (kd *KeyedDecoder[K]) DecodeString(key K) (string, error) {
	d, err := kd.valueDecoder(key)
	if err != nil {
		return "", err
	}
	return d.DecodeString()
}

// DecodeBytes decodes the value for key as a byte string.
func (kd *KeyedDecoder[K]) DecodeBytes(key K) ([]byte, error) {
	d, err := kd.valueDecoder(key)
	if err != nil {
		return nil, err
	}
	return d.DecodeBytes()
}

// DecodeInt8 decodes the value for key as a signed 8-bit integer.
func (kd *KeyedDecoder[K]) DecodeInt8(key K) (int8, error) {
	d, err := kd.valueDecoder(key)
	if err != nil {
		return 0, err
	}
	return d.DecodeInt8()
}

// DecodeInt16 decodes the value for key as a signed 16-bit integer.
func (kd *KeyedDecoder[K]) DecodeInt16(key K) (int16, error) {
	d, err := kd.valueDecoder(key)
	if err != nil {
		return 0, err
	}
	return d.DecodeInt16()
}

// DecodeInt32 decodes the value for key as a signed 32-bit integer.
func (kd *KeyedDecoder[K]) DecodeInt32(key K) (int32, error) {
	d, err := kd.valueDecoder(key)
	if err != nil {
		return 0, err
	}
	return d.DecodeInt32()
}

// DecodeInt64 decodes the value for key as a signed 64-bit integer.
func (kd *KeyedDecoder[K]) DecodeInt64(key K) (int64, error) {
	d, err := kd.valueDecoder(key)
	if err != nil {
		return 0, err
	}
	return d.DecodeInt64()
}

// DecodeInt decodes the value for key as a signed machine-width integer.
func (kd *KeyedDecoder[K]) DecodeInt(key K) (int, error) {
	d, err := kd.valueDecoder(key)
	if err != nil {
		return 0, err
	}
	return d.DecodeInt()
}

// DecodeUint8 decodes the value for key as an unsigned 8-bit integer.
func (kd *KeyedDecoder[K]) DecodeUint8(key K) (uint8, error) {
	d, err := kd.valueDecoder(key)
	if err != nil {
		return 0, err
	}
	return d.DecodeUint8()
}

// DecodeUint16 decodes the value for key as an unsigned 16-bit integer.
func (kd *KeyedDecoder[K]) DecodeUint16(key K) (uint16, error) {
	d, err := kd.valueDecoder(key)
	if err != nil {
		return 0, err
	}
	return d.DecodeUint16()
}

// DecodeUint32 decodes the value for key as an unsigned 32-bit integer.
func (kd *KeyedDecoder[K]) DecodeUint32(key K) (uint32, error) {
	d, err := kd.valueDecoder(key)
	if err != nil {
		return 0, err
	}
	return d.DecodeUint32()
}

// DecodeUint64 decodes the value for key as an unsigned 64-bit integer.
func (kd *KeyedDecoder[K]) DecodeUint64(key K) (uint64, error) {
	d, err := kd.valueDecoder(key)
	if err != nil {
		return 0, err
	}
	return d.DecodeUint64()
}

// DecodeUint decodes the value for key as an unsigned machine-width
// integer.
func (kd *KeyedDecoder[K]) DecodeUint(key K) (uint, error) {
	d, err := kd.valueDecoder(key)
	if err != nil {
		return 0, err
	}
	return d.DecodeUint()
}

// DecodeFloat32 decodes the value for key as a float32.
func (kd *KeyedDecoder[K]) DecodeFloat32(key K) (float32, error) {
	d, err := kd.valueDecoder(key)
	if err != nil {
		return 0, err
	}
	return d.DecodeFloat32()
}

// DecodeFloat64 decodes the value for key as a float64.
func (kd *KeyedDecoder[K]) DecodeFloat64(key K) (float64, error) {
	d, err := kd.valueDecoder(key)
	if err != nil {
		return 0, err
	}
	return d.DecodeFloat64()
}

// Decode decodes the value for key into v.
func (kd *KeyedDecoder[K]) Decode(key K, v Decodable) error {
	d, err := kd.valueDecoder(key)
	if err != nil {
		return err
	}
	return decodeTagged(d, v)
}

// NestedKeyedDecoder opens the value for key as a nested keyed container.
func NestedKeyedDecoder[K2 CodingKey, K CodingKey](kd *KeyedDecoder[K], key K) (*KeyedDecoder[K2], error) {
	d, err := kd.valueDecoder(key)
	if err != nil {
		return nil, err
	}
	return DecodeKeyed[K2](d)
}

// NestedUnkeyedDecoder opens the value for key as a nested unkeyed
// container.
func (kd *KeyedDecoder[K]) NestedUnkeyedDecoder(key K) (*UnkeyedDecoder, error) {
	d, err := kd.valueDecoder(key)
	if err != nil {
		return nil, err
	}
	return d.UnkeyedContainer()
}

// SuperDecoder returns a decoder over the "super" slot, used by types
// that model inheritance to recover their base-class payload.
func (kd *KeyedDecoder[K]) SuperDecoder() (*Decoder, error) {
	path := kd.path.append(PathElement{Key: superKey})
	v, ok := kd.entries[superKey]
	if !ok {
		return nil, newDecodingError(KeyNotFound, path, plainError("key not present: "+superKey))
	}
	return newDecoder(v, path), nil
}

// SuperDecoderForKey returns a decoder over the slot named by key rather
// than the default "super" name.
func (kd *KeyedDecoder[K]) SuperDecoderForKey(key K) (*Decoder, error) {
	return kd.valueDecoder(key)
}

// Package ordered provides OrderedMap, a map that preserves insertion
// order through a CBOR round trip, demonstrating the bridge's
// insertion-order guarantee (see the cbor package docs).
package ordered

import (
	cbor "github.com/cbor-go/bridge"
)

// Entry is one key/value pair of an OrderedMap, in encounter order.
type Entry[V any] struct {
	Key   string
	Value V
}

// OrderedMap is a sequence of string-keyed entries that encodes as a CBOR
// map and decodes back with the same key order preserved, relying on
// KeyedDecoder.AllKeys() rather than Go's unordered map type.
type OrderedMap[V any] struct {
	Entries []Entry[V]
}

// Set appends key/value, or overwrites value in place if key is already
// present, without disturbing existing order.
func (m *OrderedMap[V]) Set(key string, value V) {
	for i := range m.Entries {
		if m.Entries[i].Key == key {
			m.Entries[i].Value = value
			return
		}
	}
	m.Entries = append(m.Entries, Entry[V]{Key: key, Value: value})
}

// Get looks up key, reporting whether it was present.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	for _, e := range m.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// EncodeCBOR writes m as a CBOR map using codec to encode each value.
func (m *OrderedMap[V]) EncodeCBOR(enc *cbor.Encoder, codec ElemCodec[V]) error {
	ke := cbor.EncodeKeyed[cbor.StringKey](enc)
	for _, e := range m.Entries {
		if err := ke.Encode(cbor.StringKey(e.Key), valueEncodable[V]{v: e.Value, enc: codec.Encode}); err != nil {
			return err
		}
	}
	return nil
}

// DecodeCBOR populates m from a CBOR map using codec to decode each
// value, preserving the map's on-wire key order.
func (m *OrderedMap[V]) DecodeCBOR(dec *cbor.Decoder, codec ElemCodec[V]) error {
	kd, err := cbor.DecodeKeyed[cbor.StringKey](dec)
	if err != nil {
		return err
	}
	m.Entries = m.Entries[:0]
	for _, key := range kd.AllKeys() {
		var holder valueDecodable[V]
		holder.dec = codec.Decode
		if err := kd.Decode(cbor.StringKey(key), &holder); err != nil {
			return err
		}
		m.Entries = append(m.Entries, Entry[V]{Key: key, Value: holder.v})
	}
	return nil
}

// ElemCodec supplies the per-value Encodable/Decodable behavior an
// OrderedMap[V] needs when V itself is not an Encodable/Decodable type.
type ElemCodec[V any] struct {
	Encode func(*cbor.Encoder, V) error
	Decode func(*cbor.Decoder) (V, error)
}

type valueEncodable[V any] struct {
	v   V
	enc func(*cbor.Encoder, V) error
}

func (w valueEncodable[V]) EncodeCBOR(enc *cbor.Encoder) error { return w.enc(enc, w.v) }

type valueDecodable[V any] struct {
	v   V
	dec func(*cbor.Decoder) (V, error)
}

func (w *valueDecodable[V]) DecodeCBOR(dec *cbor.Decoder) error {
	v, err := w.dec(dec)
	if err != nil {
		return err
	}
	w.v = v
	return nil
}

package ordered_test

import (
	"testing"

	cbor "github.com/cbor-go/bridge"
	"github.com/cbor-go/bridge/ordered"
)

type intMap struct {
	ordered.OrderedMap[int]
}

var intCodec = ordered.ElemCodec[int]{
	Encode: func(enc *cbor.Encoder, v int) error { enc.EncodeInt(v); return nil },
	Decode: func(dec *cbor.Decoder) (int, error) { return dec.DecodeInt() },
}

func (m *intMap) EncodeCBOR(enc *cbor.Encoder) error {
	return m.OrderedMap.EncodeCBOR(enc, intCodec)
}

func (m *intMap) DecodeCBOR(dec *cbor.Decoder) error {
	return m.OrderedMap.DecodeCBOR(dec, intCodec)
}

func TestOrderedMapPreservesInsertionOrder(t *testing.T) {
	m := &intMap{}
	m.Set("z", 1)
	m.Set("a", 2)
	m.Set("m", 3)

	data, err := cbor.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got := &intMap{}
	if err := cbor.Unmarshal(data, got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	wantOrder := []string{"z", "a", "m"}
	if len(got.Entries) != len(wantOrder) {
		t.Fatalf("got %d entries, want %d", len(got.Entries), len(wantOrder))
	}
	for i, k := range wantOrder {
		if got.Entries[i].Key != k {
			t.Fatalf("entry %d: got key %q, want %q", i, got.Entries[i].Key, k)
		}
	}
	v, ok := got.Get("a")
	if !ok || v != 2 {
		t.Fatalf("Get(a) = %d, %v; want 2, true", v, ok)
	}
}

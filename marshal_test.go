package cbor_test

import (
	"encoding/hex"
	"testing"

	cbor "github.com/cbor-go/bridge"
)

type personKey string

func (k personKey) StringValue() string   { return string(k) }
func (k personKey) IntValue() (int, bool) { return 0, false }

const (
	keyName personKey = "name"
	keyAge  personKey = "age"
	keyTags personKey = "tags"
)

type Person struct {
	Name string
	Age  int
	Tags []string
}

func (p *Person) EncodeCBOR(enc *cbor.Encoder) error {
	ke := cbor.EncodeKeyed[personKey](enc)
	ke.EncodeString(keyName, p.Name)
	ke.EncodeInt(keyAge, p.Age)
	ue := ke.NestedUnkeyedEncoder(keyTags)
	for _, tag := range p.Tags {
		ue.EncodeString(tag)
	}
	return nil
}

func (p *Person) DecodeCBOR(dec *cbor.Decoder) error {
	kd, err := cbor.DecodeKeyed[personKey](dec)
	if err != nil {
		return err
	}
	if p.Name, err = kd.DecodeString(keyName); err != nil {
		return err
	}
	if p.Age, err = kd.DecodeInt(keyAge); err != nil {
		return err
	}
	ud, err := kd.NestedUnkeyedDecoder(keyTags)
	if err != nil {
		return err
	}
	p.Tags = nil
	for !ud.IsAtEnd() {
		s, err := ud.DecodeString()
		if err != nil {
			return err
		}
		p.Tags = append(p.Tags, s)
	}
	return nil
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	want := &Person{Name: "Ada", Age: 36, Tags: []string{"math", "computing"}}
	data, err := cbor.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got := &Person{}
	if err := cbor.Unmarshal(data, got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Name != want.Name || got.Age != want.Age || len(got.Tags) != len(want.Tags) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want.Tags {
		if got.Tags[i] != want.Tags[i] {
			t.Fatalf("tag %d: got %q, want %q", i, got.Tags[i], want.Tags[i])
		}
	}
}

type nameOnly struct{ Name string }

func (n *nameOnly) EncodeCBOR(enc *cbor.Encoder) error {
	ke := cbor.EncodeKeyed[personKey](enc)
	ke.EncodeString(keyName, n.Name)
	return nil
}

func TestUnmarshalMissingKey(t *testing.T) {
	data, err := cbor.Marshal(&nameOnly{Name: "Ada"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got := &Person{}
	err = cbor.Unmarshal(data, got)
	if err == nil {
		t.Fatalf("expected error for missing age/tags keys")
	}
	derr, ok := err.(*cbor.DecodingError)
	if !ok {
		t.Fatalf("got %T, want *cbor.DecodingError", err)
	}
	if derr.Kind != cbor.KeyNotFound {
		t.Fatalf("got kind %v, want KeyNotFound", derr.Kind)
	}
}

func TestUnmarshalTrailingData(t *testing.T) {
	data, err := cbor.Marshal(&Person{Name: "Ada", Age: 1, Tags: nil})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	data = append(data, 0x00)
	got := &Person{}
	if err := cbor.Unmarshal(data, got); err == nil {
		t.Fatalf("expected trailing-data error")
	}
}

func TestNegativeIntegerRoundTrip(t *testing.T) {
	want := &Person{Name: "x", Age: -5}
	data, err := cbor.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got := &Person{}
	if err := cbor.Unmarshal(data, got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Age != -5 {
		t.Fatalf("got Age=%d, want -5", got.Age)
	}
}

// scalar wraps a single primitive so it can drive Marshal, which requires
// an Encodable rather than a bare Go value.
type scalar struct {
	kind string
	b    bool
	s    string
	i64  int64
	null bool
}

func (v *scalar) EncodeCBOR(enc *cbor.Encoder) error {
	switch v.kind {
	case "bool":
		enc.EncodeBool(v.b)
	case "string":
		enc.EncodeString(v.s)
	case "nil":
		enc.EncodeNil()
	}
	return nil
}

// TestConcreteWireScenarios checks the spec.md §8.4 hex table's scalar
// rows directly against the encoder's output.
func TestConcreteWireScenarios(t *testing.T) {
	cases := []struct {
		name string
		v    *scalar
		want string
	}{
		{"false", &scalar{kind: "bool", b: false}, "f4"},
		{"true", &scalar{kind: "bool", b: true}, "f5"},
		{"nil", &scalar{kind: "nil"}, "f6"},
		{"empty string", &scalar{kind: "string", s: ""}, "60"},
		{"hello world", &scalar{kind: "string", s: "Hello World"}, "6b48656c6c6f20576f726c64"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			data, err := cbor.Marshal(c.v)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if got := hex.EncodeToString(data); got != c.want {
				t.Fatalf("got %s, want %s", got, c.want)
			}
		})
	}
}

// intArray implements Encodable over an unkeyed container of ints.
type intArray []int

func (a intArray) EncodeCBOR(enc *cbor.Encoder) error {
	ue := enc.UnkeyedContainer()
	for _, v := range a {
		ue.EncodeInt(v)
	}
	return nil
}

func TestConcreteArrayScenario(t *testing.T) {
	data, err := cbor.Marshal(intArray{1, 2, 3})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got := hex.EncodeToString(data); got != "83010203" {
		t.Fatalf("got %s, want 83010203", got)
	}
}

func TestIndefiniteArrayDecodesToSlice(t *testing.T) {
	data, err := hex.DecodeString("9f010203ff")
	if err != nil {
		t.Fatalf("hex: %v", err)
	}
	diag, err := cbor.Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if diag != "[1, 2, 3]" {
		t.Fatalf("got %q, want [1, 2, 3]", diag)
	}
}

// opacity is a single-field tagged type whose wire form is just the bare
// tagged integer (tag 1 over 0x46), per spec.md §8.4.
type opacity struct{ a uint8 }

func (opacity) CBORTag() uint64 { return 1 }

func (o *opacity) EncodeCBOR(enc *cbor.Encoder) error {
	enc.EncodeUint8(o.a)
	return nil
}

func (o *opacity) DecodeCBOR(dec *cbor.Decoder) error {
	v, err := dec.DecodeUint8()
	if err != nil {
		return err
	}
	o.a = v
	return nil
}

func TestTaggedScenario(t *testing.T) {
	data, err := cbor.Marshal(&opacity{a: 0x46})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got := hex.EncodeToString(data); got != "c11846" {
		t.Fatalf("got %s, want c11846", got)
	}
	got := &opacity{}
	if err := cbor.Unmarshal(data, got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.a != 0x46 {
		t.Fatalf("got a=%#x, want 0x46", got.a)
	}
}

func TestTaggedMismatchedTagIsDataCorrupted(t *testing.T) {
	data, err := hex.DecodeString("c21846") // tag 2, not tag 1
	if err != nil {
		t.Fatalf("hex: %v", err)
	}
	got := &opacity{}
	err = cbor.Unmarshal(data, got)
	derr, ok := err.(*cbor.DecodingError)
	if !ok {
		t.Fatalf("got %T, want *cbor.DecodingError", err)
	}
	if derr.Kind != cbor.DataCorrupted {
		t.Fatalf("got kind %v, want DataCorrupted", derr.Kind)
	}
}

func TestEmptyMapEncodesToA0(t *testing.T) {
	data, err := cbor.Marshal(&nameOnlyMap{})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got := hex.EncodeToString(data); got != "a0" {
		t.Fatalf("got %s, want a0", got)
	}
}

// nameOnlyMap always produces an empty keyed container.
type nameOnlyMap struct{}

func (n *nameOnlyMap) EncodeCBOR(enc *cbor.Encoder) error {
	cbor.EncodeKeyed[personKey](enc)
	return nil
}

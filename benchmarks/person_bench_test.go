// Package benchmarks compares the bridge's Encodable-based round trip
// against two other wire formats the rest of the example corpus reaches
// for: github.com/fxamacker/cbor/v2 (reflection-based CBOR) and
// github.com/tinylib/msgp's low-level Append/Read primitives (MessagePack,
// hand-wired here rather than through msgp's usual code generator, which
// this module does not run).
package benchmarks

import (
	"testing"

	fxcbor "github.com/fxamacker/cbor/v2"
	"github.com/tinylib/msgp/msgp"

	cbor "github.com/cbor-go/bridge"
)

type personKey string

func (k personKey) StringValue() string   { return string(k) }
func (k personKey) IntValue() (int, bool) { return 0, false }

const (
	keyName personKey = "name"
	keyAge  personKey = "age"
)

type bridgePerson struct {
	Name string
	Age  int
}

func (p *bridgePerson) EncodeCBOR(enc *cbor.Encoder) error {
	ke := cbor.EncodeKeyed[personKey](enc)
	ke.EncodeString(keyName, p.Name)
	ke.EncodeInt(keyAge, p.Age)
	return nil
}

func (p *bridgePerson) DecodeCBOR(dec *cbor.Decoder) error {
	kd, err := cbor.DecodeKeyed[personKey](dec)
	if err != nil {
		return err
	}
	if p.Name, err = kd.DecodeString(keyName); err != nil {
		return err
	}
	p.Age, err = kd.DecodeInt(keyAge)
	return err
}

type fxPerson struct {
	Name string `cbor:"name"`
	Age  int    `cbor:"age"`
}

type msgpPerson struct {
	Name string
	Age  int
}

func (p *msgpPerson) MarshalMsg(b []byte) ([]byte, error) {
	b = msgp.AppendMapHeader(b, 2)
	b = msgp.AppendString(b, "name")
	b = msgp.AppendString(b, p.Name)
	b = msgp.AppendString(b, "age")
	b = msgp.AppendInt(b, p.Age)
	return b, nil
}

func (p *msgpPerson) UnmarshalMsg(bts []byte) ([]byte, error) {
	sz, bts, err := msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		return bts, err
	}
	for i := uint32(0); i < sz; i++ {
		var key string
		key, bts, err = msgp.ReadStringBytes(bts)
		if err != nil {
			return bts, err
		}
		switch key {
		case "name":
			p.Name, bts, err = msgp.ReadStringBytes(bts)
		case "age":
			p.Age, bts, err = msgp.ReadIntBytes(bts)
		default:
			bts, err = msgp.Skip(bts)
		}
		if err != nil {
			return bts, err
		}
	}
	return bts, nil
}

var samplePerson = bridgePerson{Name: "Ada Lovelace", Age: 36}

func BenchmarkBridgeMarshal(b *testing.B) {
	p := samplePerson
	for i := 0; i < b.N; i++ {
		if _, err := cbor.Marshal(&p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFxamackerCBORMarshal(b *testing.B) {
	p := fxPerson{Name: samplePerson.Name, Age: samplePerson.Age}
	for i := 0; i < b.N; i++ {
		if _, err := fxcbor.Marshal(&p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMsgpMarshal(b *testing.B) {
	p := msgpPerson{Name: samplePerson.Name, Age: samplePerson.Age}
	for i := 0; i < b.N; i++ {
		if _, err := p.MarshalMsg(nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBridgeUnmarshal(b *testing.B) {
	p := samplePerson
	data, err := cbor.Marshal(&p)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var out bridgePerson
		if err := cbor.Unmarshal(data, &out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFxamackerCBORUnmarshal(b *testing.B) {
	p := fxPerson{Name: samplePerson.Name, Age: samplePerson.Age}
	data, err := fxcbor.Marshal(&p)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var out fxPerson
		if err := fxcbor.Unmarshal(data, &out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMsgpUnmarshal(b *testing.B) {
	p := msgpPerson{Name: samplePerson.Name, Age: samplePerson.Age}
	data, err := p.MarshalMsg(nil)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var out msgpPerson
		if _, err := out.UnmarshalMsg(data); err != nil {
			b.Fatal(err)
		}
	}
}

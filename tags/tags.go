// Package tags provides wrapper types for common CBOR semantic tags (RFC
// 8949 §3.4), implemented against the cbor package's Encodable/Decodable/
// TaggedType bridge rather than as built-in special cases.
package tags

import (
	"fmt"
	"math/big"
	"time"

	cbor "github.com/cbor-go/bridge"
)

const (
	TagDateTimeString = 0
	TagEpochDateTime  = 1
	TagPositiveBigNum = 2
	TagNegativeBigNum = 3
	TagSelfDescribe   = 55799
)

// Time wraps time.Time as CBOR tag 1: an epoch timestamp, encoded as an
// integer when sub-second precision is absent and a float64 otherwise,
// matching a common Time-as-epoch CBOR convention.
type Time struct {
	time.Time
}

func (Time) CBORTag() uint64 { return TagEpochDateTime }

func (t Time) EncodeCBOR(enc *cbor.Encoder) error {
	nsec := t.Nanosecond()
	if nsec == 0 {
		enc.EncodeInt64(t.Unix())
		return nil
	}
	enc.EncodeFloat64(float64(t.Unix()) + float64(nsec)/1e9)
	return nil
}

func (t *Time) DecodeCBOR(dec *cbor.Decoder) error {
	if f, err := dec.DecodeFloat64(); err == nil {
		sec := int64(f)
		ns := int64((f - float64(sec)) * 1e9)
		t.Time = time.Unix(sec, ns).UTC()
		return nil
	}
	sec, err := dec.DecodeInt64()
	if err != nil {
		return err
	}
	t.Time = time.Unix(sec, 0).UTC()
	return nil
}

// BigInt wraps math/big.Int as CBOR tag 2 (non-negative) or tag 3
// (negative, magnitude encoded as -1-n), the standard RFC 8949 bignum
// convention. Its tag depends on its own sign, so it bypasses TaggedType
// (whose CBORTag() would need a value before one exists) and
// wraps/unwraps the tag explicitly via EncodeTagged/DecodeTag.
type BigInt struct {
	*big.Int
}

func (b BigInt) EncodeCBOR(enc *cbor.Encoder) error {
	tag := uint64(TagPositiveBigNum)
	mag := new(big.Int).Abs(b.Int)
	if b.Int != nil && b.Sign() < 0 {
		tag = TagNegativeBigNum
		mag.Sub(mag, big.NewInt(1))
	}
	return enc.EncodeTagged(tag, func(sub *cbor.Encoder) error {
		sub.EncodeBytes(mag.Bytes())
		return nil
	})
}

func (b *BigInt) DecodeCBOR(dec *cbor.Decoder) error {
	tag, inner, err := dec.DecodeTag()
	if err != nil {
		return err
	}
	raw, err := inner.DecodeBytes()
	if err != nil {
		return err
	}
	mag := new(big.Int).SetBytes(raw)
	switch tag {
	case TagPositiveBigNum:
		b.Int = mag
	case TagNegativeBigNum:
		b.Int = mag.Neg(mag.Add(mag, big.NewInt(1)))
	default:
		return fmt.Errorf("tags: unexpected bignum tag %d", tag)
	}
	return nil
}

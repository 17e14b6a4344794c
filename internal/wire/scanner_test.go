package wire

import (
	"bytes"
	"testing"
)

func TestScanUints(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want uint64
	}{
		{"direct", []byte{0x05}, 5},
		{"uint8", []byte{0x18, 0xFF}, 255},
		{"uint16", []byte{0x19, 0x01, 0x00}, 256},
		{"uint32", []byte{0x1a, 0x00, 0x01, 0x00, 0x00}, 65536},
		{"uint64", []byte{0x1b, 0, 0, 0, 1, 0, 0, 0, 0}, 1 << 32},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, rest, err := Scan(c.in)
			if err != nil {
				t.Fatalf("Scan: %v", err)
			}
			if len(rest) != 0 {
				t.Fatalf("leftover bytes: %v", rest)
			}
			if v.Kind != KindUInt {
				t.Fatalf("kind = %v, want KindUInt", v.Kind)
			}
			got, err := IntoUnsigned(v, 64)
			if err != nil || got != c.want {
				t.Fatalf("got %d, %v; want %d", got, err, c.want)
			}
		})
	}
}

func TestScanNegativeIntegersDirect(t *testing.T) {
	// major 1, ai=4 => value -1-4 = -5. Must not be corrupted by major bits
	// leaking into the argument (regression for the direct-value head bug).
	v, rest, err := Scan([]byte{0x24})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("leftover: %v", rest)
	}
	got, err := IntoSigned(v, 64)
	if err != nil {
		t.Fatalf("IntoSigned: %v", err)
	}
	if got != -5 {
		t.Fatalf("got %d, want -5", got)
	}
}

func TestScanIndefiniteArray(t *testing.T) {
	// [_ 1, 2]
	in := []byte{0x9f, 0x01, 0x02, 0xff}
	v, rest, err := Scan(in)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("leftover: %v", rest)
	}
	if v.Kind != KindArray || len(v.Items) != 2 {
		t.Fatalf("got %+v", v)
	}
}

func TestScanIndefiniteMapBreakOnlyInKeyPosition(t *testing.T) {
	// {_ 1: 2, 3: <break in value position, invalid>}
	in := []byte{0xbf, 0x01, 0x02, 0x03, 0xff}
	_, _, err := Scan(in)
	if err != ErrBreakOutsideContainer {
		t.Fatalf("got err %v, want ErrBreakOutsideContainer", err)
	}
}

func TestScanIndefiniteText(t *testing.T) {
	// (_ "ab", "cd")
	in := []byte{0x7f, 0x62, 'a', 'b', 0x62, 'c', 'd', 0xff}
	v, rest, err := Scan(in)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("leftover: %v", rest)
	}
	s, err := IntoString(v)
	if err != nil || s != "abcd" {
		t.Fatalf("got %q, %v", s, err)
	}
}

func TestAppendHeadMinimalWidth(t *testing.T) {
	cases := []struct {
		n    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{23, []byte{0x17}},
		{24, []byte{0x18, 0x18}},
		{255, []byte{0x18, 0xff}},
		{256, []byte{0x19, 0x01, 0x00}},
		{65536, []byte{0x1a, 0x00, 0x01, 0x00, 0x00}},
		{1 << 32, []byte{0x1b, 0, 0, 0, 1, 0, 0, 0, 0}},
	}
	for _, c := range cases {
		got := AppendHead(nil, MajorUint, c.n)
		if !bytes.Equal(got, c.want) {
			t.Errorf("AppendHead(%d) = %x, want %x", c.n, got, c.want)
		}
	}
}

func TestRoundTripArray(t *testing.T) {
	enc := Encoded{Kind: EncodedArray, Items: []Encoded{
		{Kind: EncodedLiteral, Literal: AppendUint(nil, 1)},
		{Kind: EncodedLiteral, Literal: AppendUint(nil, 2)},
		{Kind: EncodedLiteral, Literal: AppendUint(nil, 3)},
	}}
	b, err := Write(nil, enc)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	v, rest, err := Scan(b)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("leftover: %v", rest)
	}
	if v.Kind != KindArray || len(v.Items) != 3 {
		t.Fatalf("got %+v", v)
	}
}

func TestScanWithLimitsRejectsOversizedContainer(t *testing.T) {
	// [1, 2, 3] declares length 3.
	in := []byte{0x83, 0x01, 0x02, 0x03}
	_, _, err := ScanWithLimits(in, Limits{MaxContainerLen: 2})
	if err != ErrContainerTooLarge {
		t.Fatalf("got %v, want ErrContainerTooLarge", err)
	}
	if _, _, err := ScanWithLimits(in, Limits{MaxContainerLen: 3}); err != nil {
		t.Fatalf("unexpected error at the boundary: %v", err)
	}
}

func TestScanWithLimitsRejectsDeepNesting(t *testing.T) {
	// [[[1]]]
	in := []byte{0x81, 0x81, 0x81, 0x01}
	if _, _, err := ScanWithLimits(in, Limits{MaxDepth: 2}); err != ErrMaxDepthExceeded {
		t.Fatalf("got %v, want ErrMaxDepthExceeded", err)
	}
	if _, _, err := ScanWithLimits(in, Limits{MaxDepth: 10}); err != nil {
		t.Fatalf("unexpected error with headroom: %v", err)
	}
}

package wire

// Kind classifies a scanned Value (§3.1 of the design).
type Kind uint8

const (
	KindNone Kind = iota
	KindNil
	KindBreak
	KindBool
	KindUInt
	KindNInt
	KindFloat16
	KindFloat32
	KindFloat64
	KindStr
	KindBin
	KindArray
	KindMap
	KindTagged
)

// Value is the intermediate scanned representation of one CBOR item. Only
// the fields relevant to Kind are populated.
//
// For KindUInt/KindNInt, Bytes holds the argument's raw big-endian bytes
// and Width its length (1, 2, 4, or 8) exactly as found on the wire; no
// numeric conversion happens here. For KindFloat16/32/64, Bytes holds the
// raw big-endian float payload. For KindStr/KindBin, Bytes holds the
// (possibly chunk-concatenated) payload.
//
// For KindArray, Items holds the elements in order. For KindMap, Items
// holds a flattened, always-even k0,v0,k1,v1,... sequence in insertion
// order. For KindTagged, Tag holds the tag number and Tagged the wrapped
// value.
type Value struct {
	Kind   Kind
	Bool   bool
	Bytes  []byte
	Width  int
	Items  []Value
	Tag    uint64
	Tagged *Value
}

// EncodedKind classifies an Encoded tree node (§3.2).
type EncodedKind uint8

const (
	EncodedNone EncodedKind = iota
	EncodedLiteral
	EncodedArray
	EncodedMap
	EncodedTagged
)

// Encoded is the intermediate to-be-written representation built by the
// encoding bridge. Each node is produced exactly once and consumed exactly
// once by Write.
type Encoded struct {
	Kind    EncodedKind
	Literal []byte    // fully self-contained head+payload bytes
	Items   []Encoded // Array, or flattened k0,v0,... for Map
	Tag     []byte    // head+payload encoding of the tag number (major type 6)
	Value   *Encoded  // the tagged inner value
}

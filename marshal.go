package cbor

import "github.com/cbor-go/bridge/internal/wire"

// Encodable is implemented by types that know how to write themselves
// into an Encoder's containers.
type Encodable interface {
	EncodeCBOR(enc *Encoder) error
}

// Decodable is implemented by types that know how to populate themselves
// from a Decoder's containers.
type Decodable interface {
	DecodeCBOR(dec *Decoder) error
}

// TaggedType is an optional capability: a value possessing it is wrapped
// in (or unwrapped from) a CBOR tag carrying its declared tag number.
type TaggedType interface {
	CBORTag() uint64
}

// Marshal encodes v to CBOR bytes.
func Marshal(v Encodable) ([]byte, error) {
	val, err := encodeNested(nil, v)
	if err != nil {
		return nil, err
	}
	return wire.Write(nil, val)
}

// Unmarshal decodes CBOR bytes into v. The entire input must be consumed
// by exactly one top-level item; trailing bytes are an error.
func Unmarshal(data []byte, v Decodable) error {
	return UnmarshalWithOptions(data, v, DecodeOptions{})
}

// DecodeOptions bounds the scanner's recursion depth and declared
// container/string lengths. The zero value imposes no container-length
// cap and uses the scanner's default recursion limit.
type DecodeOptions struct {
	// MaxDepth caps container/tag nesting depth. Zero means the scanner's
	// built-in default.
	MaxDepth int
	// MaxContainerLen caps the declared length of any array, map, byte
	// string, or text string header. Zero disables the check.
	MaxContainerLen uint64
}

func (o DecodeOptions) limits() wire.Limits {
	return wire.Limits{MaxDepth: o.MaxDepth, MaxContainerLen: o.MaxContainerLen}
}

// UnmarshalWithOptions is Unmarshal with caller-supplied scan limits,
// rejecting adversarial input (deep nesting, implausible declared
// lengths) before it drives allocation.
func UnmarshalWithOptions(data []byte, v Decodable, opts DecodeOptions) error {
	val, rest, err := wire.ScanWithLimits(data, opts.limits())
	if err != nil {
		return newDecodingError(DataCorrupted, nil, err)
	}
	if len(rest) != 0 {
		return newDecodingError(DataCorrupted, nil, errTrailingData)
	}
	dec := newDecoder(val, nil)
	return decodeTagged(dec, v)
}

var errTrailingData = trailingDataError{}

type trailingDataError struct{}

func (trailingDataError) Error() string { return "cbor: trailing bytes after top-level item" }

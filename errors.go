package cbor

import (
	"errors"
	"strconv"
	"strings"
)

// PathElement is one breadcrumb in a CodingPath: either a named key or,
// for unkeyed containers, a positional index.
type PathElement struct {
	Key     string
	Index   int
	IsIndex bool
}

func keyElement(k CodingKey) PathElement { return PathElement{Key: k.StringValue()} }
func indexElement(i int) PathElement     { return PathElement{Index: i, IsIndex: true} }

// CodingPath locates a position within a nested value graph, outermost
// container first.
type CodingPath []PathElement

func (p CodingPath) String() string {
	var sb strings.Builder
	for i, e := range p {
		if i > 0 {
			sb.WriteByte('/')
		}
		if e.IsIndex {
			sb.WriteString("[")
			sb.WriteString(strconv.Itoa(e.Index))
			sb.WriteString("]")
		} else {
			sb.WriteString(e.Key)
		}
	}
	return sb.String()
}

func (p CodingPath) append(e PathElement) CodingPath {
	out := make(CodingPath, len(p)+1)
	copy(out, p)
	out[len(p)] = e
	return out
}

// DecodingErrorKind classifies why a decode call failed.
type DecodingErrorKind uint8

const (
	// DataCorrupted indicates malformed CBOR: a truncated stream, an
	// unexpected opcode, invalid UTF-8, or a tag number that differs from
	// the declared tag of the TaggedType being decoded.
	DataCorrupted DecodingErrorKind = iota
	// TypeMismatch indicates the wire type at the current position does
	// not match what the caller asked to decode.
	TypeMismatch
	// ValueNotFound indicates an unkeyed container was exhausted. A keyed
	// container missing a key reports KeyNotFound instead.
	ValueNotFound
	// KeyNotFound indicates a keyed decode of one specific key whose
	// entry is absent.
	KeyNotFound
)

func (k DecodingErrorKind) String() string {
	switch k {
	case DataCorrupted:
		return "data corrupted"
	case TypeMismatch:
		return "type mismatch"
	case ValueNotFound:
		return "value not found"
	case KeyNotFound:
		return "key not found"
	default:
		return "unknown"
	}
}

// DecodingError reports a failed decode, with the coding path pinpointing
// where in the value graph it occurred.
type DecodingError struct {
	Kind       DecodingErrorKind
	CodingPath CodingPath
	Err        error
}

func (e *DecodingError) Error() string {
	msg := e.Kind.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if len(e.CodingPath) > 0 {
		msg += " at " + e.CodingPath.String()
	}
	return msg
}

func (e *DecodingError) Unwrap() error { return e.Err }

func newDecodingError(kind DecodingErrorKind, path CodingPath, cause error) *DecodingError {
	return &DecodingError{Kind: kind, CodingPath: path, Err: cause}
}

// EncodingError reports a failed encode: the caller emitted no value for a
// slot (cause ErrNoValueEncoded). Every Go integer and float fits a CBOR
// encoding, so numeric values do not produce one.
type EncodingError struct {
	CodingPath CodingPath
	Err        error
}

func (e *EncodingError) Error() string {
	msg := "invalid value"
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if len(e.CodingPath) > 0 {
		msg += " at " + e.CodingPath.String()
	}
	return msg
}

func (e *EncodingError) Unwrap() error { return e.Err }

func newEncodingError(path CodingPath, cause error) *EncodingError {
	return &EncodingError{CodingPath: path, Err: cause}
}

// ErrNoValueEncoded is the cause wrapped by an EncodingError when a
// single-value container is finalized without ever receiving a value.
var ErrNoValueEncoded = errors.New("cbor: no value was encoded into this container")

// ProgrammerError is panicked, never returned, when caller code violates a
// container's contract rather than the input data being malformed — for
// example setting a key that already holds an array-future to a map
// future. These represent bugs in the calling Encodable implementation and
// are not recoverable decode/encode failures.
type ProgrammerError struct {
	Msg string
}

func (e ProgrammerError) Error() string { return "cbor: contract violation: " + e.Msg }

func panicContract(msg string) { panic(ProgrammerError{Msg: msg}) }

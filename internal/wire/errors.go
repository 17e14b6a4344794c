package wire

import (
	"errors"
	"fmt"
)

// ErrShortBytes is returned when the slice being decoded is too short to
// contain the encoding of the next item.
var ErrShortBytes = errors.New("cbor: too few bytes left to read item")

// ErrMaxDepthExceeded is returned when container nesting exceeds the
// scanner's recursion limit. This only realistically triggers on
// adversarial input trying to exhaust the stack.
var ErrMaxDepthExceeded = errors.New("cbor: max nesting depth exceeded")

// ErrInvalidUTF8 is returned when a text string's payload is not
// well-formed UTF-8.
var ErrInvalidUTF8 = errors.New("cbor: invalid UTF-8 in text string")

// ErrBreakOutsideContainer is returned when a break (0xFF) sentinel is
// encountered somewhere other than terminating an indefinite-length
// container, or in value position within an indefinite map.
var ErrBreakOutsideContainer = errors.New("cbor: unexpected break code")

// ErrIndefiniteChunkType is returned when a chunk of an indefinite-length
// byte or text string is not itself a definite-length item of the same
// major type.
var ErrIndefiniteChunkType = errors.New("cbor: indefinite-length chunk has wrong major type")

// ErrContainerTooLarge is returned when a header's declared length (array,
// map, byte string, or text string) exceeds a caller-configured Limits.
// MaxContainerLen.
var ErrContainerTooLarge = errors.New("cbor: declared container length exceeds configured limit")

// InvalidAdditionalInfoError is returned for the reserved additional
// information values 28, 29, and 30, and for the indefinite-length value
// 31 on a major type that has no indefinite form (integers and tags).
type InvalidAdditionalInfoError struct {
	Major uint8
	Info  uint8
}

func (e InvalidAdditionalInfoError) Error() string {
	return fmt.Sprintf("cbor: reserved additional information %d for major type %d", e.Info, e.Major)
}

// BadMajorTypeError is returned by the scanner for a major type it does
// not handle. splitHead yields only major types 0-7, all of which the
// scanner handles, so scanning well-formed or malformed input does not
// produce it.
type BadMajorTypeError struct {
	Got, Want uint8
}

func (e BadMajorTypeError) Error() string {
	return fmt.Sprintf("cbor: wanted major type %d, got %d", e.Want, e.Got)
}

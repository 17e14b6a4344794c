package cbor

import "strconv"

// CodingKey names one step of a path through a keyed container. Types that
// enumerate their own field names (the usual case) implement this
// directly; StringKey and IndexKey cover the common ad hoc cases.
type CodingKey interface {
	// StringValue is the textual representation written as the CBOR map
	// key.
	StringValue() string
	// IntValue optionally reports an integer index for the key. The
	// containers in this package build coding paths from StringValue and
	// positional indices, and do not call it.
	IntValue() (int, bool)
}

// StringKey is a CodingKey backed by an arbitrary string, for containers
// keyed by ad hoc names (e.g. OrderedMap).
type StringKey string

func (k StringKey) StringValue() string   { return string(k) }
func (k StringKey) IntValue() (int, bool) { return 0, false }

// IndexKey is a CodingKey backed by an integer. Unkeyed containers record
// their positions as index PathElements, not as IndexKey values.
type IndexKey int

func (k IndexKey) StringValue() string   { return "Index " + strconv.Itoa(int(k)) }
func (k IndexKey) IntValue() (int, bool) { return int(k), true }

// superKey is the distinguished map key used by bare superEncoder/
// superDecoder calls to carry an inherited type's base-class payload.
const superKey = "super"

// Package cbor serializes and deserializes in-memory Go values to and from
// the Concise Binary Object Representation (CBOR, RFC 8949).
//
// Byte-level scanning, the intermediate value tree, and the writer live in
// the internal wire package. This package bridges that tree to user record
// types through three container shapes — single-value, keyed, and unkeyed —
// mirroring encoding/json's Marshaler/Unmarshaler split but exposing the
// container objects directly so a type can drive nested encoding/decoding
// itself, including the "super" slot used by types that model inheritance.
//
// Map keys are preserved in insertion order, not sorted into canonical
// order; float widths are preserved as encoded, not narrowed; and the
// input/output are always in-memory byte slices, never a streaming
// io.Reader/io.Writer.
package cbor

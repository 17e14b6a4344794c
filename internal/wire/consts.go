// Package wire implements the byte-level RFC 8949 CBOR encoding: the
// opcode/length decoder, the scanner that turns a byte slice into a typed
// tree, the encoded-tree model, and the writer that serializes it back to
// bytes. It has no notion of user record types; that bridging lives in the
// parent cbor package.
package wire

// Major types (top 3 bits of the head byte).
const (
	MajorUint   uint8 = 0 // unsigned integer
	MajorNInt   uint8 = 1 // negative integer
	MajorBytes  uint8 = 2 // byte string
	MajorText   uint8 = 3 // text string (UTF-8)
	MajorArray  uint8 = 4 // array
	MajorMap    uint8 = 5 // map
	MajorTag    uint8 = 6 // semantic tag
	MajorSimple uint8 = 7 // float, simple values, break
)

// Additional-information values (low 5 bits of the head byte).
const (
	aiDirectMax  = 23 // 0..23 encode their own value
	aiUint8      = 24
	aiUint16     = 25
	aiUint32     = 26
	aiUint64     = 27
	aiIndefinite = 31
)

// Simple values and float widths under major type 7.
const (
	simpleFalse     = 20
	simpleTrue      = 21
	simpleNull      = 22
	simpleUndefined = 23
	simpleFloat16   = 25
	simpleFloat32   = 26
	simpleFloat64   = 27
	simpleBreak     = 31
)

func makeHead(major, ai uint8) byte { return byte(major<<5) | ai }

func splitHead(b byte) (major, ai uint8) {
	return (b >> 5) & 0x07, b & 0x1f
}

const breakByte = 0xFF

const recursionLimit = 10000

// float16/float32 bit-layout constants, used to widen a half-precision
// float read off the wire into a float32/float64, and by float32ToFloat16
// to narrow a float32 into half precision (the encoding bridge itself
// never narrows).
const (
	float16ExpBits  = 5
	float16MantBits = 10
	float16SignShift = float16ExpBits + float16MantBits
	float16ExpMask   uint16 = (1 << float16ExpBits) - 1
	float16MantMask  uint16 = (1 << float16MantBits) - 1
	float16ExpBias          = int(float16ExpMask >> 1)

	float32ExpBits  = 8
	float32MantBits = 23
	float32SignShift = float32ExpBits + float32MantBits
	float32ExpMask   uint32 = (1 << float32ExpBits) - 1
	float32MantMask  uint32 = (1 << float32MantBits) - 1
	float32ExpBias          = int(float32ExpMask >> 1)

	float32ToFloat16MantShift = float32MantBits - float16MantBits
)

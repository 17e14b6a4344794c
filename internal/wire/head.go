package wire

import "encoding/binary"

// argument is the decoded additional-information payload of a head byte:
// the raw big-endian bytes of the argument (width 1, 2, 4, or 8), its
// numeric value, and whether ai signaled indefinite length.
type argument struct {
	raw        []byte
	value      uint64
	width      int
	indefinite bool
}

// readArgument reads the head byte at b[0] and its trailing argument
// bytes, returning the major type, the argument, and the remaining
// input. ai values 28-30 are reserved and rejected.
func readArgument(b []byte) (major, ai uint8, arg argument, rest []byte, err error) {
	if len(b) < 1 {
		return 0, 0, argument{}, b, ErrShortBytes
	}
	major, ai = splitHead(b[0])
	switch {
	case ai <= aiDirectMax:
		return major, ai, argument{raw: []byte{ai}, value: uint64(ai), width: 1}, b[1:], nil
	case ai == aiUint8:
		if len(b) < 2 {
			return 0, 0, argument{}, b, ErrShortBytes
		}
		return major, ai, argument{raw: b[1:2], value: uint64(b[1]), width: 1}, b[2:], nil
	case ai == aiUint16:
		if len(b) < 3 {
			return 0, 0, argument{}, b, ErrShortBytes
		}
		return major, ai, argument{raw: b[1:3], value: uint64(binary.BigEndian.Uint16(b[1:3])), width: 2}, b[3:], nil
	case ai == aiUint32:
		if len(b) < 5 {
			return 0, 0, argument{}, b, ErrShortBytes
		}
		return major, ai, argument{raw: b[1:5], value: uint64(binary.BigEndian.Uint32(b[1:5])), width: 4}, b[5:], nil
	case ai == aiUint64:
		if len(b) < 9 {
			return 0, 0, argument{}, b, ErrShortBytes
		}
		return major, ai, argument{raw: b[1:9], value: binary.BigEndian.Uint64(b[1:9]), width: 8}, b[9:], nil
	case ai == aiIndefinite:
		return major, ai, argument{indefinite: true}, b[1:], nil
	default: // 28, 29, 30
		return 0, 0, argument{}, b, InvalidAdditionalInfoError{Major: major, Info: ai}
	}
}

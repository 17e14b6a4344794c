package wire

// Limits bounds the scanner's recursion depth and, optionally, the
// declared length of any single container or string header. A zero
// MaxContainerLen disables that check; MaxDepth defaults to
// recursionLimit when the caller passes the zero Limits.
type Limits struct {
	MaxDepth        int
	MaxContainerLen uint64
}

func (l Limits) depthLimit() int {
	if l.MaxDepth > 0 {
		return l.MaxDepth
	}
	return recursionLimit
}

// DefaultLimits is the permissive configuration Scan uses: recursionLimit
// deep, no declared-length cap.
var DefaultLimits = Limits{MaxDepth: recursionLimit}

// Scan parses exactly one CBOR data item from b and returns it along with
// the remaining, unconsumed bytes, using DefaultLimits.
func Scan(b []byte) (Value, []byte, error) {
	return ScanWithLimits(b, DefaultLimits)
}

// ScanWithLimits is Scan with caller-supplied recursion and
// declared-container-length bounds, letting callers reject adversarial
// inputs (deeply nested containers, or a header claiming a length far
// larger than the remaining input) before they drive allocation.
func ScanWithLimits(b []byte, limits Limits) (Value, []byte, error) {
	if len(b) == 0 {
		return Value{Kind: KindNone}, b, nil
	}
	s := scanner{limits: limits}
	return s.scanOne(b, 0)
}

type scanner struct {
	limits Limits
}

func (s scanner) checkContainerLen(n uint64) error {
	if s.limits.MaxContainerLen > 0 && n > s.limits.MaxContainerLen {
		return ErrContainerTooLarge
	}
	return nil
}

func (s scanner) scanOne(b []byte, depth int) (Value, []byte, error) {
	if depth > s.limits.depthLimit() {
		return Value{}, b, ErrMaxDepthExceeded
	}
	major, ai, arg, rest, err := readArgument(b)
	if err != nil {
		return Value{}, b, err
	}
	if arg.indefinite && (major == MajorUint || major == MajorNInt) {
		return Value{}, b, InvalidAdditionalInfoError{Major: major, Info: ai}
	}
	switch major {
	case MajorUint:
		return Value{Kind: KindUInt, Bytes: arg.raw, Width: arg.width}, rest, nil
	case MajorNInt:
		return Value{Kind: KindNInt, Bytes: arg.raw, Width: arg.width}, rest, nil
	case MajorBytes:
		return s.scanByteLike(MajorBytes, KindBin, arg, rest, depth)
	case MajorText:
		return s.scanByteLike(MajorText, KindStr, arg, rest, depth)
	case MajorArray:
		return s.scanArray(arg, rest, depth)
	case MajorMap:
		return s.scanMap(arg, rest, depth)
	case MajorTag:
		if arg.indefinite {
			return Value{}, b, InvalidAdditionalInfoError{Major: MajorTag, Info: ai}
		}
		inner, rest2, err := s.scanOne(rest, depth+1)
		if err != nil {
			return Value{}, b, err
		}
		return Value{Kind: KindTagged, Tag: arg.value, Tagged: &inner}, rest2, nil
	case MajorSimple:
		return scanSimple(ai, arg, rest)
	default:
		return Value{}, b, BadMajorTypeError{Got: major}
	}
}

func (s scanner) scanByteLike(major uint8, kind Kind, arg argument, rest []byte, depth int) (Value, []byte, error) {
	if !arg.indefinite {
		n := arg.value
		if err := s.checkContainerLen(n); err != nil {
			return Value{}, rest, err
		}
		if uint64(len(rest)) < n {
			return Value{}, rest, ErrShortBytes
		}
		payload := rest[:n]
		return Value{Kind: kind, Bytes: payload}, rest[n:], nil
	}
	if depth > s.limits.depthLimit() {
		return Value{}, rest, ErrMaxDepthExceeded
	}
	var payload []byte
	p := rest
	for {
		if len(p) < 1 {
			return Value{}, rest, ErrShortBytes
		}
		if p[0] == breakByte {
			return Value{Kind: kind, Bytes: payload}, p[1:], nil
		}
		chunkMajor, _, chunkArg, next, err := readArgument(p)
		if err != nil {
			return Value{}, rest, err
		}
		if chunkMajor != major || chunkArg.indefinite {
			return Value{}, rest, ErrIndefiniteChunkType
		}
		n := chunkArg.value
		if err := s.checkContainerLen(n); err != nil {
			return Value{}, rest, err
		}
		if uint64(len(next)) < n {
			return Value{}, rest, ErrShortBytes
		}
		payload = append(payload, next[:n]...)
		p = next[n:]
	}
}

func (s scanner) scanArray(arg argument, rest []byte, depth int) (Value, []byte, error) {
	if !arg.indefinite {
		n := arg.value
		if err := s.checkContainerLen(n); err != nil {
			return Value{}, rest, err
		}
		items := make([]Value, 0, n)
		p := rest
		for i := uint64(0); i < n; i++ {
			v, next, err := s.scanOne(p, depth+1)
			if err != nil {
				return Value{}, rest, err
			}
			items = append(items, v)
			p = next
		}
		return Value{Kind: KindArray, Items: items}, p, nil
	}
	var items []Value
	p := rest
	for {
		v, next, err := s.scanOne(p, depth+1)
		if err != nil {
			return Value{}, rest, err
		}
		if v.Kind == KindBreak {
			return Value{Kind: KindArray, Items: items}, next, nil
		}
		items = append(items, v)
		p = next
	}
}

func (s scanner) scanMap(arg argument, rest []byte, depth int) (Value, []byte, error) {
	if !arg.indefinite {
		n := arg.value
		if err := s.checkContainerLen(n); err != nil {
			return Value{}, rest, err
		}
		items := make([]Value, 0, n*2)
		p := rest
		for i := uint64(0); i < n; i++ {
			k, next, err := s.scanOne(p, depth+1)
			if err != nil {
				return Value{}, rest, err
			}
			v, next2, err := s.scanOne(next, depth+1)
			if err != nil {
				return Value{}, rest, err
			}
			items = append(items, k, v)
			p = next2
		}
		return Value{Kind: KindMap, Items: items}, p, nil
	}
	var items []Value
	p := rest
	for {
		// Break is only meaningful in key position; a break encountered
		// while scanning the value half of a pair is an error rather than
		// being silently stored as a value (see design notes: this fixes
		// a known bug in at least one reference implementation).
		k, next, err := s.scanOne(p, depth+1)
		if err != nil {
			return Value{}, rest, err
		}
		if k.Kind == KindBreak {
			return Value{Kind: KindMap, Items: items}, next, nil
		}
		v, next2, err := s.scanOne(next, depth+1)
		if err != nil {
			return Value{}, rest, err
		}
		if v.Kind == KindBreak {
			return Value{}, rest, ErrBreakOutsideContainer
		}
		items = append(items, k, v)
		p = next2
	}
}

func scanSimple(ai uint8, arg argument, rest []byte) (Value, []byte, error) {
	switch ai {
	case 20:
		return Value{Kind: KindBool, Bool: false}, rest, nil
	case 21:
		return Value{Kind: KindBool, Bool: true}, rest, nil
	case 22, 23:
		return Value{Kind: KindNil}, rest, nil
	case aiUint16: // 25: float16
		return Value{Kind: KindFloat16, Bytes: arg.raw}, rest, nil
	case aiUint32: // 26: float32
		return Value{Kind: KindFloat32, Bytes: arg.raw}, rest, nil
	case aiUint64: // 27: float64
		return Value{Kind: KindFloat64, Bytes: arg.raw}, rest, nil
	case aiIndefinite: // 31: break
		return Value{Kind: KindBreak}, rest, nil
	default:
		// ai in {0..19, 24}: reserved/unassigned simple values. Accepted
		// as an unsigned integer literal, matching reference behavior
		// rather than rejecting outright.
		return Value{Kind: KindUInt, Bytes: arg.raw, Width: arg.width}, rest, nil
	}
}

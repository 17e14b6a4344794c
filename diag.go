package cbor

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"

	"github.com/cbor-go/bridge/internal/wire"
)

// Diagnose renders the single CBOR item in b using RFC 8949 §8's diagnostic
// notation (e.g. `{"a": 1, "b": [2, 3]}`), for logging and debugging. It
// reports the same structural errors Unmarshal would.
func Diagnose(b []byte) (string, error) {
	return DiagnoseWithOptions(b, DecodeOptions{})
}

// DiagnoseWithOptions is Diagnose with caller-supplied scan limits (see
// DecodeOptions), for rendering diagnostic notation over untrusted input.
func DiagnoseWithOptions(b []byte, opts DecodeOptions) (string, error) {
	v, rest, err := wire.ScanWithLimits(b, opts.limits())
	if err != nil {
		return "", newDecodingError(DataCorrupted, nil, err)
	}
	if len(rest) != 0 {
		return "", newDecodingError(DataCorrupted, nil, errTrailingData)
	}
	var sb strings.Builder
	diagValue(&sb, v)
	return sb.String(), nil
}

func diagValue(sb *strings.Builder, v wire.Value) {
	switch v.Kind {
	case wire.KindNone, wire.KindNil:
		sb.WriteString("null")
	case wire.KindBool:
		if v.Bool {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case wire.KindUInt:
		n, _ := wire.IntoUnsigned(v, 64)
		sb.WriteString(strconv.FormatUint(n, 10))
	case wire.KindNInt:
		n, _ := wire.IntoSigned(v, 64)
		sb.WriteString(strconv.FormatInt(n, 10))
	case wire.KindStr:
		s, _ := wire.IntoString(v)
		sb.WriteString(strconv.Quote(s))
	case wire.KindBin:
		sb.WriteString("h'")
		sb.WriteString(hex.EncodeToString(v.Bytes))
		sb.WriteString("'")
	case wire.KindFloat16, wire.KindFloat32, wire.KindFloat64:
		f, _ := wire.IntoFloat64(v)
		sb.WriteString(formatFloatDiag(f))
	case wire.KindArray:
		sb.WriteString("[")
		for i, item := range v.Items {
			if i > 0 {
				sb.WriteString(", ")
			}
			diagValue(sb, item)
		}
		sb.WriteString("]")
	case wire.KindMap:
		sb.WriteString("{")
		for i := 0; i+1 < len(v.Items); i += 2 {
			if i > 0 {
				sb.WriteString(", ")
			}
			diagValue(sb, v.Items[i])
			sb.WriteString(": ")
			diagValue(sb, v.Items[i+1])
		}
		sb.WriteString("}")
	case wire.KindTagged:
		sb.WriteString(strconv.FormatUint(v.Tag, 10))
		sb.WriteString("(")
		if v.Tagged != nil {
			diagValue(sb, *v.Tagged)
		}
		sb.WriteString(")")
	case wire.KindBreak:
		sb.WriteString("<break>")
	default:
		sb.WriteString("<unknown>")
	}
}

func formatFloatDiag(f float64) string {
	if math.IsInf(f, +1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	if math.IsNaN(f) {
		return "NaN"
	}
	af := math.Abs(f)
	if af == 0 || af < 1e15 {
		return trimTrailingZerosDot(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func trimTrailingZerosDot(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	if i > 0 && s[i-1] == '.' {
		i--
	}
	return s[:i]
}

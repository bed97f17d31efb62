package kernel

import (
	"fmt"
	"strconv"
)

const (
	// TextKey is the key under which XML decoders store element text when the
	// element also carries attributes.
	TextKey = "#text"

	// AltTextKey is the text key used by gateways that re-encode the same
	// documents (for example xml2js-style converters).
	AltTextKey = "_"
)

// TextFieldKind tells which shape a text-bearing field arrived in.
type TextFieldKind int

const (
	// TextAbsent means the field was missing, nil, or of a shape that carries no text.
	TextAbsent TextFieldKind = iota

	// TextBare means the field was a scalar value.
	TextBare

	// TextWrapped means the field was a mapping holding its text under TextKey or AltTextKey.
	TextWrapped
)

// String implements fmt.Stringer.
func (k TextFieldKind) String() string {
	switch k {
	case TextBare:
		return "bare"
	case TextWrapped:
		return "wrapped"
	case TextAbsent:
		return "absent"
	default:
		return "unknown"
	}
}

// TextField is the decoded form of a text-bearing payload field. Every field of
// the upstream documents that is meant to hold text goes through ParseTextField,
// so call sites never branch on the raw shape themselves.
type TextField struct {
	kind  TextFieldKind
	value string
}

// ParseTextField classifies raw and extracts its text:
//
//	"TRK123"                          -> bare "TRK123"
//	map[string]any{"#text": "TRK123"} -> wrapped "TRK123"
//	map[string]any{"_": "TRK123"}     -> wrapped "TRK123"
//	nil, []any{...}, map without text -> absent ""
//
// Numeric and boolean scalars are rendered with their canonical textual form.
func ParseTextField(raw any) TextField {
	switch v := raw.(type) {
	case nil:
		return TextField{kind: TextAbsent}
	case string:
		return TextField{kind: TextBare, value: v}
	case map[string]any:
		for _, key := range []string{TextKey, AltTextKey} {
			inner, ok := v[key]
			if !ok {
				continue
			}
			if s, isScalar := scalarText(inner); isScalar {
				return TextField{kind: TextWrapped, value: s}
			}
		}
		return TextField{kind: TextAbsent}
	default:
		if s, isScalar := scalarText(v); isScalar {
			return TextField{kind: TextBare, value: s}
		}
		return TextField{kind: TextAbsent}
	}
}

// CoerceText returns the text carried by raw, or "" when there is none.
func CoerceText(raw any) string {
	return ParseTextField(raw).Value()
}

// Kind returns the shape the field arrived in.
func (f TextField) Kind() TextFieldKind {
	return f.kind
}

// Value returns the text, empty for absent fields.
func (f TextField) Value() string {
	return f.value
}

// IsAbsent reports whether the field carried no text at all.
func (f TextField) IsAbsent() bool {
	return f.kind == TextAbsent
}

func scalarText(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

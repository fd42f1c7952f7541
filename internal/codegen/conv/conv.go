// Package conv converts engine identifiers (SHOUT_CASE enumerators, dotted
// enum names) into Go-side identifiers.
package conv

import (
	"strings"
	"unicode"
)

// acronyms are identifier segments kept fully capitalized on the Go side.
var acronyms = map[string]bool{
	"AABB": true,
	"RID":  true,
	"RGB":  true,
	"RGBA": true,
	"FFT":  true,
	"HTTP": true,
	"JSON": true,
	"XML":  true,
}

// ToPascalCase maps an engine identifier to a Go type identifier.
//
// Dotted names ("Variant.Type") collapse, SHOUT_CASE splits on underscores,
// and names that already look like PascalCase pass through unchanged.
func ToPascalCase(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	if s == "" {
		return s
	}
	if !strings.Contains(s, "_") && !isShout(s) {
		// Already camel/Pascal shaped; just make sure it is exported.
		return strings.ToUpper(s[:1]) + s[1:]
	}

	var b strings.Builder
	for _, part := range strings.Split(s, "_") {
		b.WriteString(titleSegment(part))
	}
	return b.String()
}

// ToShoutCase maps a PascalCase identifier to SHOUT_CASE, the form engine
// enumerators use. "KeyModifierMask" becomes "KEY_MODIFIER_MASK".
func ToShoutCase(s string) string {
	s = strings.ReplaceAll(s, ".", "_")
	var b strings.Builder
	prevLower := false
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsDigit(r) {
			if prevLower {
				b.WriteByte('_')
			}
			prevLower = false
		} else {
			prevLower = true
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return strings.ReplaceAll(b.String(), "__", "_")
}

// MakeEnumeratorName builds the Go constant name for one enumerator.
//
// The engine repeats (part of) the enum name as a prefix on each enumerator
// ("KEY_ESCAPE" inside "Key", "TYPE_NIL" inside "Variant.Type"). The longest
// matching segment-aligned prefix of the enum's SHOUT form is stripped before
// prefixing with the Go enum name, so the result reads KeyEscape, not
// KeyKeyEscape. Stripping is skipped when it would strip the whole name.
func MakeEnumeratorName(enumGodotName, enumGoName, enumeratorGodotName string) string {
	stripped := stripEnumPrefix(ToShoutCase(enumGodotName), enumeratorGodotName)
	return enumGoName + ToPascalCase(stripped)
}

func stripEnumPrefix(enumShout, enumerator string) string {
	segments := strings.Split(enumShout, "_")
	for i := 0; i < len(segments); i++ {
		prefix := strings.Join(segments[i:], "_") + "_"
		if !strings.HasPrefix(enumerator, prefix) {
			continue
		}
		rest := strings.TrimPrefix(enumerator, prefix)
		if rest == "" {
			continue
		}
		return rest
	}
	return enumerator
}

// SafeIdent escapes Go keywords by appending an underscore.
func SafeIdent(s string) string {
	if goKeywords[s] {
		return s + "_"
	}
	return s
}

var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

func isShout(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

func titleSegment(part string) string {
	if part == "" {
		return ""
	}
	if acronyms[strings.ToUpper(part)] {
		return strings.ToUpper(part)
	}
	lower := strings.ToLower(part)
	out := strings.ToUpper(lower[:1]) + lower[1:]
	// "TRANSFORM2D" -> "Transform2D", "VECTOR3" stays "Vector3".
	if n := len(out); n >= 2 && out[n-1] == 'd' && unicode.IsDigit(rune(out[n-2])) {
		out = out[:n-1] + "D"
	}
	return out
}

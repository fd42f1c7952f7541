package codegen

import (
	"fmt"
	"strings"

	"github.com/gogdext/gdext/internal/codegen/conv"
	"github.com/gogdext/gdext/internal/codegen/domain"
	"github.com/gogdext/gdext/internal/codegen/specialcases"
)

// Enum generation.
//
// Each enum yields two independently selectable outputs: the type definition
// (named type plus constants) and the helper surface (conversion functions,
// name lookups, bitwise combinators). The split exists because the
// dynamic-value-tag enum is defined in the ffi output package but its helpers
// live in the core output package; Go methods must be declared in the
// defining package, so the helper-only rendering emits package-level
// functions against the qualified type instead.

// MakeEnums renders full definitions for all given enums, in order.
func MakeEnums(enums []domain.Enum) string {
	var b strings.Builder
	for i := range enums {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(MakeEnumDefinition(&enums[i]))
	}
	return b.String()
}

// MakeEnumDefinition renders the type definition and all helpers.
func MakeEnumDefinition(e *domain.Enum) string {
	return MakeEnumDefinitionWith(e, "", true, true)
}

// MakeEnumDefinitionWith renders the selected parts of an enum.
//
// qualifier is the package selector ("gdffi.") used to reach the type when
// helpers are emitted into a different package than the definition; it must
// be empty when defineType is set.
func MakeEnumDefinitionWith(e *domain.Enum, qualifier string, defineType, defineHelpers bool) string {
	if e.IsBitfield && e.IsExhaustive {
		panic(fmt.Sprintf("enum %s: bitfields cannot be marked exhaustive", e.GodotName))
	}

	var b strings.Builder
	if defineType {
		writeEnumType(&b, e)
	}
	if defineHelpers {
		writeEnumHelpers(&b, e, qualifier)
	}
	return b.String()
}

// writeEnumType emits the named ordinal type and one constant per
// enumerator.
func writeEnumType(b *strings.Builder, e *domain.Enum) {
	kind := "enum"
	if e.IsBitfield {
		kind = "bitfield"
	}
	fmt.Fprintf(b, "// %s is an engine %s.", e.Name, kind)
	if e.Name != e.GodotName {
		fmt.Fprintf(b, " Godot name: %s.", e.GodotName)
	}
	b.WriteString("\n")
	if e.IsExhaustive {
		b.WriteString("//\n// This enum is exhaustive; future engine versions will not add enumerators.\n")
	} else if !e.IsBitfield {
		b.WriteString("//\n// Future engine versions may add enumerators; see the FromOrd function.\n")
	}
	fmt.Fprintf(b, "type %s %s\n\n", e.Name, e.OrdType())

	if len(e.Enumerators) == 0 {
		return
	}
	b.WriteString("const (\n")
	for _, en := range e.Enumerators {
		fmt.Fprintf(b, "\t%s %s = %s\n", en.Name, e.Name, en.Value.Literal())
	}
	b.WriteString(")\n\n")
}

func writeEnumHelpers(b *strings.Builder, e *domain.Enum, qual string) {
	typeRef := qual + e.Name

	writeFromOrd(b, e, qual, typeRef)
	writeOrd(b, e, qual, typeRef)

	// Bitfields carry no name tables; their values are OR-combinations
	// rather than single enumerators.
	if !e.IsBitfield {
		writeNameLookup(b, e, qual, typeRef)
		writeGodotNameLookup(b, e, qual, typeRef)
	}

	if qual == "" {
		writeStringMethod(b, e)
	}
	writeIndexEnumCount(b, e)
	writeBitwiseOperators(b, e)
}

// writeFromOrd emits the fallible ordinal-to-value conversion. For bitfields
// every bit pattern is a valid flag combination, so conversion always
// succeeds; for enums unknown ordinals (possibly from newer engine versions)
// report false.
func writeFromOrd(b *strings.Builder, e *domain.Enum, qual, typeRef string) {
	ord := e.OrdType()
	switch {
	case e.IsBitfield:
		fmt.Fprintf(b, "// %sFromOrd converts a raw flag combination into a %s.\n// The second result is always true: any bit pattern is a valid flag set.\n", e.Name, e.Name)
		fmt.Fprintf(b, "func %sFromOrd(ord %s) (%s, bool) {\n\treturn %s(ord), true\n}\n\n", e.Name, ord, typeRef, typeRef)

	case e.IsExhaustive:
		fmt.Fprintf(b, "// %sFromOrd converts an ordinal into a %s, reporting false for\n// ordinals unknown to this version of the bindings.\n", e.Name, e.Name)
		fmt.Fprintf(b, "func %sFromOrd(ord %s) (%s, bool) {\n\tswitch ord {\n", e.Name, ord, typeRef)
		for _, en := range e.Enumerators {
			fmt.Fprintf(b, "\tcase %s:\n\t\treturn %s, true\n", en.Value.Literal(), qual+en.Name)
		}
		b.WriteString("\tdefault:\n\t\treturn 0, false\n\t}\n}\n\n")

	default:
		ords := e.UniqueOrds()
		lits := make([]string, len(ords))
		for i, o := range ords {
			lits[i] = fmt.Sprintf("%d", o)
		}
		fmt.Fprintf(b, "// %sFromOrd converts an ordinal into a %s, reporting false for\n// ordinals unknown to this version of the bindings.\n", e.Name, e.Name)
		fmt.Fprintf(b, "func %sFromOrd(ord %s) (%s, bool) {\n\tswitch ord {\n\tcase %s:\n\t\treturn %s(ord), true\n\tdefault:\n\t\treturn 0, false\n\t}\n}\n\n",
			e.Name, ord, typeRef, strings.Join(lits, ", "), typeRef)
	}
}

// writeOrd emits the total value-to-ordinal conversion.
func writeOrd(b *strings.Builder, e *domain.Enum, qual, typeRef string) {
	ord := e.OrdType()
	if qual == "" {
		fmt.Fprintf(b, "// Ord returns the enum's raw ordinal.\nfunc (e %s) Ord() %s {\n\treturn %s(e)\n}\n\n", e.Name, ord, ord)
		return
	}
	fmt.Fprintf(b, "// %sOrd returns the enum's raw ordinal.\nfunc %sOrd(e %s) %s {\n\treturn %s(e)\n}\n\n", e.Name, e.Name, typeRef, ord, ord)
}

// dedupedByOrd returns the enumerators whose ordinal was not already seen.
// Duplicate ordinals are legal aliases; the first-declared enumerator wins
// every lookup. The dedup also keeps the emitted switch compilable, since Go
// rejects duplicate constant cases.
func dedupedByOrd(e *domain.Enum) []domain.Enumerator {
	seen := make(map[int64]bool, len(e.Enumerators))
	out := make([]domain.Enumerator, 0, len(e.Enumerators))
	for _, en := range e.Enumerators {
		if seen[en.Value.Ord] {
			continue
		}
		seen[en.Value.Ord] = true
		out = append(out, en)
	}
	return out
}

// writeNameLookup emits the value-to-Go-identifier lookup. Unknown ordinals
// yield "" so the String method can fall through to the raw ordinal.
func writeNameLookup(b *strings.Builder, e *domain.Enum, qual, typeRef string) {
	if qual == "" {
		fmt.Fprintf(b, "// Name returns the Go constant name of the enumerator, or \"\" if the\n// ordinal has no (known) enumerator.\n")
		fmt.Fprintf(b, "func (e %s) Name() string {\n", e.Name)
	} else {
		fmt.Fprintf(b, "// %sName returns the Go constant name of the enumerator, or \"\" if the\n// ordinal has no (known) enumerator.\n", e.Name)
		fmt.Fprintf(b, "func %sName(e %s) string {\n", e.Name, typeRef)
	}
	b.WriteString("\tswitch e {\n")
	for _, en := range dedupedByOrd(e) {
		fmt.Fprintf(b, "\tcase %s:\n\t\treturn %q\n", qual+en.Name, en.Name)
	}
	b.WriteString("\tdefault:\n\t\treturn \"\"\n\t}\n}\n\n")
}

// writeGodotNameLookup emits the value-to-engine-identifier lookup, falling
// back to the Go name lookup for ordinals without a distinct engine name.
func writeGodotNameLookup(b *strings.Builder, e *domain.Enum, qual, typeRef string) {
	var cases []domain.Enumerator
	for _, en := range dedupedByOrd(e) {
		if en.Name != en.GodotName {
			cases = append(cases, en)
		}
	}

	var header, fallback string
	if qual == "" {
		fmt.Fprintf(b, "// GodotName returns the engine-side name of the enumerator.\n")
		header = fmt.Sprintf("func (e %s) GodotName() string {\n", e.Name)
		fallback = "e.Name()"
	} else {
		fmt.Fprintf(b, "// %sGodotName returns the engine-side name of the enumerator.\n", e.Name)
		header = fmt.Sprintf("func %sGodotName(e %s) string {\n", e.Name, typeRef)
		fallback = fmt.Sprintf("%sName(e)", e.Name)
	}
	b.WriteString(header)

	if len(cases) == 0 {
		// All engine names match the Go names; no switch needed.
		fmt.Fprintf(b, "\treturn %s\n}\n\n", fallback)
		return
	}
	b.WriteString("\tswitch e {\n")
	for _, en := range cases {
		fmt.Fprintf(b, "\tcase %s:\n\t\treturn %q\n", qual+en.Name, en.GodotName)
	}
	fmt.Fprintf(b, "\tdefault:\n\t\treturn %s\n\t}\n}\n\n", fallback)
}

// writeStringMethod emits the fmt.Stringer implementation: the enumerator
// name when resolvable, otherwise the bare ordinal. It never panics, even
// for ordinals introduced by engine versions newer than the bindings.
func writeStringMethod(b *strings.Builder, e *domain.Enum) {
	if e.IsBitfield {
		// Bitfields have no Name lookup; single-flag values are still
		// rendered by name when they match an enumerator exactly.
		fmt.Fprintf(b, "func (e %s) String() string {\n\tswitch e {\n", e.Name)
		for _, en := range dedupedByOrd(e) {
			fmt.Fprintf(b, "\tcase %s:\n\t\treturn %q\n", en.Name, en.Name)
		}
		fmt.Fprintf(b, "\tdefault:\n\t\treturn fmt.Sprintf(\"%s(%%d)\", uint64(e))\n\t}\n}\n\n", e.Name)
		return
	}
	fmt.Fprintf(b, "func (e %s) String() string {\n\tif name := e.Name(); name != \"\" {\n\t\treturn name\n\t}\n\treturn fmt.Sprintf(\"%s(%%d)\", int32(e))\n}\n\n", e.Name, e.Name)
}

// writeIndexEnumCount emits the compile-time enumerator count for index-style
// enums, letting consumers size dense arrays exactly.
func writeIndexEnumCount(b *strings.Builder, e *domain.Enum) {
	max, ok := e.IndexEnumMax()
	if !ok {
		return
	}
	fmt.Fprintf(b, "// %sEnumeratorCount is the number of valid indices of %s.\nconst %sEnumeratorCount = %d\n\n", e.Name, e.Name, e.Name, max)
}

// writeBitwiseOperators emits OR combinators: self-OR for bitfields, and the
// cross-type combinators for enums with a maskable companion bitfield.
func writeBitwiseOperators(b *strings.Builder, e *domain.Enum) {
	if e.IsBitfield {
		fmt.Fprintf(b, "// BitOr combines two flag sets.\nfunc (e %s) BitOr(rhs %s) %s {\n\treturn e | rhs\n}\n\n", e.Name, e.Name, e.Name)
		return
	}

	maskGodot, ok := specialcases.BitmaskableCompanion(e.GodotName)
	if !ok {
		return
	}
	mask := conv.ToPascalCase(maskGodot)

	fmt.Fprintf(b, "// BitOr combines the value with flags of its companion bitfield.\n")
	fmt.Fprintf(b, "func (e %s) BitOr(mask %s) %s {\n", e.Name, mask, e.Name)
	fmt.Fprintf(b, "\tord := uint64(mask)\n\tif ord > uint64(math.MaxInt32) {\n\t\tpanic(\"masking bitfield outside integer range\")\n\t}\n")
	fmt.Fprintf(b, "\treturn e | %s(ord)\n}\n\n", e.Name)

	fmt.Fprintf(b, "// BitOr%s combines the flags with a %s value.\n", e.Name, e.Name)
	fmt.Fprintf(b, "func (mask %s) BitOr%s(e %s) %s {\n\treturn e.BitOr(mask)\n}\n\n", mask, e.Name, e.Name, e.Name)

	fmt.Fprintf(b, "// BitOrAssign merges flags of the companion bitfield into the value.\n")
	fmt.Fprintf(b, "func (e *%s) BitOrAssign(mask %s) {\n\t*e = e.BitOr(mask)\n}\n\n", e.Name, mask)
}

// MakeDeprecatedEnumerators emits deprecated alias constants preserving the
// retired names of renamed enumerators.
func MakeDeprecatedEnumerators(e *domain.Enum) string {
	aliases := specialcases.DeprecatedEnumerators(e.GodotName)
	if len(aliases) == 0 {
		return ""
	}

	byGodotName := make(map[string]string, len(e.Enumerators))
	for _, en := range e.Enumerators {
		byGodotName[en.GodotName] = en.Name
	}

	var b strings.Builder
	for _, a := range aliases {
		target, ok := byGodotName[a.Target]
		if !ok {
			// Registry drift: the alias points at an enumerator this engine
			// version no longer ships. A stale alias is a registry bug.
			panic(fmt.Sprintf("deprecated alias %s targets unknown enumerator %s of %s", a.Alias, a.Target, e.GodotName))
		}
		fmt.Fprintf(&b, "// Deprecated: Use %s instead.\nconst %s = %s\n\n", target, a.Alias, target)
	}
	return b.String()
}

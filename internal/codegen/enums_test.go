package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogdext/gdext/internal/codegen/domain"
)

func TestExhaustiveEnumDefinition(t *testing.T) {
	model, _ := loadTestModel(t)
	out := MakeEnumDefinition(globalEnum(t, model, "Orientation"))

	require.Contains(t, out, "type Orientation int32\n")
	require.Contains(t, out, "OrientationVertical Orientation = 0")
	require.Contains(t, out, "OrientationHorizontal Orientation = 1")
	require.Contains(t, out, "This enum is exhaustive")

	// Exhaustive conversion returns the named constant per ordinal.
	require.Contains(t, out, "func OrientationFromOrd(ord int32) (Orientation, bool)")
	require.Contains(t, out, "case 0:\n\t\treturn OrientationVertical, true")
	require.Contains(t, out, "case 1:\n\t\treturn OrientationHorizontal, true")
	require.Contains(t, out, "default:\n\t\treturn 0, false")

	require.Contains(t, out, "func (e Orientation) Ord() int32")
	require.Contains(t, out, "func (e Orientation) Name() string")
	require.Contains(t, out, "func (e Orientation) String() string")
}

func TestNonExhaustiveEnumDefinition(t *testing.T) {
	model, _ := loadTestModel(t)
	out := MakeEnumDefinition(globalEnum(t, model, "Key"))

	require.Contains(t, out, "type Key int32\n")
	require.Contains(t, out, "KeyNone Key = 0")
	require.Contains(t, out, "KeyEscape Key = 4194305")
	require.Contains(t, out, "Future engine versions may add enumerators")

	// Open enums convert through one ordinal-list case.
	require.Contains(t, out, "case 0, 4194305:\n\t\treturn Key(ord), true")

	require.Contains(t, out, "case KeyNone:\n\t\treturn \"KeyNone\"")
	require.Contains(t, out, "case KeyNone:\n\t\treturn \"KEY_NONE\"")
}

func TestBitfieldDefinition(t *testing.T) {
	model, _ := loadTestModel(t)
	out := MakeEnumDefinition(globalEnum(t, model, "MethodFlags"))

	require.Contains(t, out, "type MethodFlags uint64\n")
	require.Contains(t, out, "MethodFlagsDefault MethodFlags = 1")

	// Conversion is total: any bit pattern is a valid flag combination.
	require.Contains(t, out, "func MethodFlagsFromOrd(ord uint64) (MethodFlags, bool)")
	require.Contains(t, out, "return MethodFlags(ord), true")
	require.Contains(t, out, "func (e MethodFlags) Ord() uint64")

	// Bitfields carry no name tables and combine with their own kind.
	require.NotContains(t, out, "func (e MethodFlags) Name()")
	require.NotContains(t, out, "GodotName")
	require.Contains(t, out, "func (e MethodFlags) BitOr(rhs MethodFlags) MethodFlags")
}

func TestDuplicateOrdinalsDedupeFirstWins(t *testing.T) {
	model, _ := loadTestModel(t)
	out := MakeEnumDefinition(globalEnum(t, model, "MethodFlags"))

	// Default aliases ordinal 1; the first-declared enumerator owns the
	// switch case (and keeps the switch compilable).
	require.Contains(t, out, "case MethodFlagsMethodFlagNormal:")
	require.NotContains(t, out, "case MethodFlagsDefault:")
	require.Equal(t, 1, strings.Count(out, "case MethodFlagsMethodFlagNormal:"))
}

func TestMaskableEnumOperators(t *testing.T) {
	model, _ := loadTestModel(t)
	out := MakeEnumDefinition(globalEnum(t, model, "Key"))

	require.Contains(t, out, "func (e Key) BitOr(mask KeyModifierMask) Key")
	require.Contains(t, out, "if ord > uint64(math.MaxInt32)")
	require.Contains(t, out, `panic("masking bitfield outside integer range")`)
	require.Contains(t, out, "func (mask KeyModifierMask) BitOrKey(e Key) Key")
	require.Contains(t, out, "func (e *Key) BitOrAssign(mask KeyModifierMask)")

	// Plain enums without a companion get no combinators at all.
	orientation := MakeEnumDefinition(globalEnum(t, model, "Orientation"))
	require.NotContains(t, orientation, "BitOr")
}

func TestSplitDefinitionAndHelpers(t *testing.T) {
	model, _ := loadTestModel(t)
	vt := model.VariantTypeEnum()

	def := MakeEnumDefinitionWith(vt, "", true, false)
	require.Contains(t, def, "type VariantType int32\n")
	require.Contains(t, def, "VariantTypeNil VariantType = 0")
	require.Contains(t, def, "VariantTypeMax VariantType = 9")
	require.NotContains(t, def, "func VariantTypeFromOrd")
	require.NotContains(t, def, "func (")

	helpers := MakeEnumDefinitionWith(vt, "gdffi.", false, true)
	require.NotContains(t, helpers, "type VariantType")
	require.Contains(t, helpers, "func VariantTypeFromOrd(ord int32) (gdffi.VariantType, bool)")
	require.Contains(t, helpers, "func VariantTypeOrd(e gdffi.VariantType) int32")
	require.Contains(t, helpers, "func VariantTypeName(e gdffi.VariantType) string")
	require.Contains(t, helpers, "func VariantTypeGodotName(e gdffi.VariantType) string")
	require.Contains(t, helpers, "case gdffi.VariantTypeNil:\n\t\treturn \"VariantTypeNil\"")

	// Methods cannot be declared outside the defining package.
	require.NotContains(t, helpers, "func (")

	// The trailing TYPE_MAX sentinel makes this an index enum.
	require.Contains(t, helpers, "const VariantTypeEnumeratorCount = 9")
}

func TestIndexEnumCountOnlyForSentinelEnums(t *testing.T) {
	model, _ := loadTestModel(t)
	out := MakeEnumDefinition(globalEnum(t, model, "Orientation"))
	require.NotContains(t, out, "EnumeratorCount")
}

func TestExhaustiveBitfieldPanics(t *testing.T) {
	e := &domain.Enum{Name: "Broken", GodotName: "Broken", IsBitfield: true, IsExhaustive: true}
	require.Panics(t, func() { MakeEnumDefinition(e) })
}

func TestMakeEnumsPreservesOrder(t *testing.T) {
	model, _ := loadTestModel(t)
	out := MakeEnums(model.GlobalEnums)

	orientation := strings.Index(out, "type Orientation ")
	key := strings.Index(out, "type Key ")
	variantType := strings.Index(out, "type VariantType ")
	require.Greater(t, orientation, -1)
	require.Greater(t, key, orientation)
	require.Greater(t, variantType, key)
}

func TestDeprecatedEnumerators(t *testing.T) {
	model, _ := loadTestModel(t)
	out := MakeDeprecatedEnumerators(model.VariantTypeEnum())

	require.Contains(t, out, "// Deprecated: Use VariantTypeRID instead.\nconst VariantTypeRid = VariantTypeRID")
	require.Contains(t, out, "// Deprecated: Use VariantTypeAABB instead.\nconst VariantTypeAabb = VariantTypeAABB")

	// Enums without registered aliases emit nothing.
	require.Equal(t, "", MakeDeprecatedEnumerators(globalEnum(t, model, "Orientation")))
}

func TestDeprecatedEnumeratorsPanicOnStaleAlias(t *testing.T) {
	// The registry targets TYPE_RID; an enum that no longer carries it means
	// the registry went stale and must fail loudly.
	e := &domain.Enum{
		Name:      "VariantType",
		GodotName: domain.VariantTypeEnumName,
		Enumerators: []domain.Enumerator{
			{Name: "VariantTypeNil", GodotName: "TYPE_NIL"},
		},
	}
	require.Panics(t, func() { MakeDeprecatedEnumerators(e) })
}

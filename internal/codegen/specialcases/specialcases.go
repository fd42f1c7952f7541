// Package specialcases is the hand-maintained registry of exceptions to the
// mechanical JSON-to-Go mapping: renamed identifiers, excluded classes and
// methods, exhaustive enums, bitmaskable enum/bitfield pairs and deprecated
// aliases.
//
// Every downstream generator consults this package before emitting code.
// Entries are keyed by the engine-side (Godot) name, never the Go name, so
// the registry stays valid when naming rules change. Updating it is a manual
// maintenance task whenever a new engine version lands.
package specialcases

// deletedClasses are engine classes we never generate bindings for, either
// because they cannot work across the extension boundary or because the
// binding provides a hand-written replacement.
var deletedClasses = map[string]bool{
	"JavaClassWrapper": true,
	"JavaScriptBridge": true,
	"ThemeDB":          true,
}

// IsClassDeleted reports whether no code at all is generated for the class.
func IsClassDeleted(godotClass string) bool {
	return deletedClasses[godotClass]
}

// deletedMethods maps "Class.method" keys to methods that are excluded from
// generation, usually because they are unsafe to expose or superseded by a
// hand-written wrapper.
var deletedMethods = map[string]bool{
	"Object.notification":    true,
	"Object.to_string":       true,
	"RefCounted.reference":   true,
	"RefCounted.unreference": true,
}

// IsMethodDeleted reports whether the method is excluded from generation.
func IsMethodDeleted(godotClass, godotMethod string) bool {
	return deletedMethods[godotClass+"."+godotMethod]
}

// serverClasses don't follow the engine's "Server" naming suffix but still
// belong to the servers codegen level.
var serverClasses = map[string]bool{
	"RenderingDevice": true,
	"RenderData":      true,
	"RenderSceneData": true,
}

// IsClassLevelServer reports whether the class belongs to the servers codegen
// level even though its API type says otherwise.
func IsClassLevelServer(godotClass string) bool {
	return serverClasses[godotClass]
}

// editorOverrides are classes misclassified as core by the engine before
// 4.3 (importers are editor-only); see the upstream classification bug.
var editorOverrides = map[string]bool{
	"ResourceImporterOggVorbis": true,
	"ResourceImporterMP3":       true,
}

// OverrideEditorLevel reports whether the class must be forced to the editor
// level for the given engine version.
func OverrideEditorLevel(godotClass string, major, minor int) bool {
	return major == 4 && minor < 3 && editorOverrides[godotClass]
}

// renamedEnums overrides the mechanical name conversion for enums whose
// converted name would be wrong or would collide.
var renamedEnums = map[string]string{
	"Variant.Type":     "VariantType",
	"Variant.Operator": "VariantOperator",
}

// RenameEnum returns the Go name override for the enum, if any.
func RenameEnum(godotEnum string) (string, bool) {
	name, ok := renamedEnums[godotEnum]
	return name, ok
}

// privateEnums are generated but routed into the internal re-export module;
// user code is not expected to name them directly.
var privateEnums = map[string]bool{
	"Variant.Operator": true,
}

// IsEnumPrivate reports whether the enum goes into the internal module.
func IsEnumPrivate(godotEnum string) bool {
	return privateEnums[godotEnum]
}

// exhaustiveEnums are guaranteed by the engine never to gain enumerators, so
// they are safe to emit as closed types with compiler-checked conversion.
// A bitfield must never appear here.
var exhaustiveEnums = map[string]bool{
	"Orientation":    true,
	"ClockDirection": true,
	"Corner":         true,
	"Side":           true,
	"EulerOrder":     true,
}

// IsEnumExhaustive reports whether the enum is closed for all future engine
// versions.
func IsEnumExhaustive(godotEnum string) bool {
	return exhaustiveEnums[godotEnum]
}

// bitmaskableCompanions pairs a scalar enum with the sibling bitfield whose
// flags it can be combined with (a key code OR'd with modifier flags).
var bitmaskableCompanions = map[string]string{
	"Key":         "KeyModifierMask",
	"MouseButton": "MouseButtonMask",
}

// BitmaskableCompanion returns the Godot name of the bitfield the enum can be
// masked with, if any.
func BitmaskableCompanion(godotEnum string) (string, bool) {
	mask, ok := bitmaskableCompanions[godotEnum]
	return mask, ok
}

// EnumeratorAlias preserves a retired Go constant name as a deprecated alias
// of the enumerator it was renamed to.
type EnumeratorAlias struct {
	Alias  string // retired Go constant name
	Target string // engine enumerator name the alias resolves to
}

// deprecatedEnumerators lists aliases kept for source compatibility after
// acronym-casing renames of the variant-type constants.
var deprecatedEnumerators = map[string][]EnumeratorAlias{
	"Variant.Type": {
		{Alias: "VariantTypeRid", Target: "TYPE_RID"},
		{Alias: "VariantTypeAabb", Target: "TYPE_AABB"},
	},
}

// DeprecatedEnumerators returns the deprecated alias constants to emit for
// the enum, in declaration order.
func DeprecatedEnumerators(godotEnum string) []EnumeratorAlias {
	return deprecatedEnumerators[godotEnum]
}

// goTypeOverrides maps engine type names whose Go counterpart is not the
// mechanical PascalCase conversion.
var goTypeOverrides = map[string]string{
	"bool":   "bool",
	"int":    "int64",
	"float":  "float64",
	"Nil":    "Variant",
	"Object": "Object",
}

// GoTypeOverride returns the Go type name override for the engine type.
func GoTypeOverride(godotType string) (string, bool) {
	name, ok := goTypeOverrides[godotType]
	return name, ok
}

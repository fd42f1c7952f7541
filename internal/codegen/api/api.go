// Package api models the engine's machine-generated extension API
// description (extension_api.json) and loads it from disk.
//
// The types here mirror the JSON layout one-to-one and stay raw: name
// conversion, special-casing and version filtering happen when the domain
// model is built, not here.
package api

// ExtensionAPI is the root of the JSON document.
type ExtensionAPI struct {
	Header            Header              `json:"header"`
	BuiltinClassSizes []BuiltinClassSizes `json:"builtin_class_sizes"`
	GlobalEnums       []Enum              `json:"global_enums"`
	BuiltinClasses    []BuiltinClass      `json:"builtin_classes"`
	Classes           []Class             `json:"classes"`
	Singletons        []Singleton         `json:"singletons"`
	NativeStructures  []NativeStructure   `json:"native_structures"`
	UtilityFunctions  []UtilityFunction   `json:"utility_functions"`
}

// Header identifies the engine version the description was generated from.
type Header struct {
	VersionMajor    int    `json:"version_major"`
	VersionMinor    int    `json:"version_minor"`
	VersionPatch    int    `json:"version_patch"`
	VersionStatus   string `json:"version_status"`
	VersionBuild    string `json:"version_build"`
	VersionFullName string `json:"version_full_name"`
}

// BuiltinClassSizes carries per-build-configuration sizes for every builtin
// value type. Build configurations combine float precision and pointer width
// ("float_32", "double_64", ...).
type BuiltinClassSizes struct {
	BuildConfiguration string     `json:"build_configuration"`
	Sizes              []TypeSize `json:"sizes"`
}

// TypeSize is one builtin's size in bytes under a build configuration.
type TypeSize struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// Enum is one engine enum or bitfield, global or class-scoped.
type Enum struct {
	Name       string         `json:"name"`
	IsBitfield bool           `json:"is_bitfield"`
	Values     []EnumConstant `json:"values"`
}

// EnumConstant is one enumerator of an Enum.
type EnumConstant struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// BuiltinClass describes one builtin value type (Vector2, String, ...).
// Methods and operators are consumed by the builtin-method generator and are
// not modeled here.
type BuiltinClass struct {
	Name  string `json:"name"`
	Enums []Enum `json:"enums"`
}

// Class describes one engine class. Only the fields the codegen core needs
// are modeled; methods/properties/signals belong to the class generator.
type Class struct {
	Name         string `json:"name"`
	APIType      string `json:"api_type"`
	IsRefcounted bool   `json:"is_refcounted"`
	Inherits     string `json:"inherits"`
	Enums        []Enum `json:"enums"`
}

// Singleton names an engine singleton and its class.
type Singleton struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// NativeStructure is a C-layout struct passed across the extension boundary,
// described by a C-ish format string ("float left;float right").
type NativeStructure struct {
	Name   string `json:"name"`
	Format string `json:"format"`
}

// UtilityFunction is one global utility function with its call hash.
type UtilityFunction struct {
	Name       string     `json:"name"`
	ReturnType string     `json:"return_type"`
	Category   string     `json:"category"`
	IsVararg   bool       `json:"is_vararg"`
	Hash       int64      `json:"hash"`
	Arguments  []Argument `json:"arguments"`
}

// Argument is one parameter of a utility function or method.
type Argument struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

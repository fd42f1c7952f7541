package codegen

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/gogdext/gdext/internal/codegen/conv"
	"github.com/gogdext/gdext/internal/codegen/domain"
)

// Central files: the handful of generated files everything else depends on.
// The ffi output owns the opaque storage aliases, the build-configuration
// descriptor and the variant-type enum definition; the core output owns the
// variant-type helpers, the variant dispatch type and the global enums.

// Output package names. The ffi package is referenced from core output by
// import path, so both names are fixed rather than configurable.
const (
	ffiPackageName  = "gdffi"
	corePackageName = "gdcore"
)

// MakeFFICentralFiles renders the ffi-side central files for the chosen
// precision: one opaque-type file per pointer width plus the central file
// with the build descriptor and the variant-type enum definition.
func MakeFFICentralFiles(api *domain.ExtensionAPI, ctx *Context, precision domain.Precision) ([]GeneratedFile, error) {
	var files []GeneratedFile
	for _, bits := range []int{32, 64} {
		f, err := makeOpaqueFile(api, domain.BuildConfig{Precision: precision, PointerBits: bits})
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	files = append(files, makeFFICentralFile(api, precision))
	return files, nil
}

// makeOpaqueFile emits one opaque byte-buffer alias per builtin, sized to the
// engine-reported size for the configuration. The aliases reserve binary
// compatible storage without exposing the engine-owned layout.
func makeOpaqueFile(api *domain.ExtensionAPI, cfg domain.BuildConfig) (GeneratedFile, error) {
	var b strings.Builder
	constraint := "!gdext32bit"
	if !cfg.Is64Bit() {
		constraint = "gdext32bit"
	}
	writeFileHeader(&b, ffiPackageName, constraint, nil)

	fmt.Fprintf(&b, "// Opaque storage for builtin types under the %s build configuration.\n\n", cfg.Name())
	fmt.Fprintf(&b, "// PointerWidthBits is the target pointer width of this build.\nconst PointerWidthBits = %d\n\n", cfg.PointerBits)

	count := 0
	for _, size := range api.BuiltinSizes {
		if size.Config != cfg {
			continue
		}
		fmt.Fprintf(&b, "type Opaque%s [%d]byte\n", conv.ToPascalCase(size.GodotName), size.Size)
		count++
	}
	if count == 0 {
		return GeneratedFile{}, errors.Errorf("API description has no builtin sizes for build configuration %s", cfg.Name())
	}

	name := "opaque_types_64bit.gen.go"
	if !cfg.Is64Bit() {
		name = "opaque_types_32bit.gen.go"
	}
	return GeneratedFile{RelPath: ffiPackageName + "/" + name, Contents: b.String()}, nil
}

// makeFFICentralFile emits the build descriptor and the authoritative
// variant-type enum definition, including its deprecated alias shims and the
// raw C-tag conversions. Helpers for the enum live in the core output; see
// MakeCoreCentralFile.
func makeFFICentralFile(api *domain.ExtensionAPI, precision domain.Precision) GeneratedFile {
	variantType := api.VariantTypeEnum()

	var b strings.Builder
	writeFileHeader(&b, ffiPackageName, "", nil)

	b.WriteString("// Build configuration the bindings were generated for.\nconst (\n")
	fmt.Fprintf(&b, "\tEngineVersionMajor = %d\n", api.Version.Major)
	fmt.Fprintf(&b, "\tEngineVersionMinor = %d\n", api.Version.Minor)
	fmt.Fprintf(&b, "\tEngineVersionPatch = %d\n", api.Version.Patch)
	fmt.Fprintf(&b, "\tEngineVersionString = %q\n", api.Version.FullName)
	fmt.Fprintf(&b, "\tPrecisionDouble = %t\n", precision == domain.PrecisionDouble)
	b.WriteString(")\n\n")

	b.WriteString(MakeEnumDefinitionWith(variantType, "", true, false))
	b.WriteString(MakeDeprecatedEnumerators(variantType))

	// Raw C-tag conversions; the C enum is 32-bit unsigned on the wire.
	fmt.Fprintf(&b, "// VariantTypeFromSys converts the C-level variant type tag.\nfunc VariantTypeFromSys(v uint32) VariantType {\n\treturn VariantType(v)\n}\n\n")
	fmt.Fprintf(&b, "// Sys returns the C-level variant type tag.\nfunc (t VariantType) Sys() uint32 {\n\treturn uint32(t)\n}\n")

	return GeneratedFile{RelPath: ffiPackageName + "/central.gen.go", Contents: b.String()}
}

// MakeCoreCentralFiles renders the core-side central files: the variant-type
// helpers and dispatch type, plus the partitioned global enum files.
func MakeCoreCentralFiles(api *domain.ExtensionAPI, ctx *Context, ffiImportPath string) []GeneratedFile {
	return []GeneratedFile{
		makeCoreCentralFile(api, ctx, ffiImportPath),
		makeGlobalEnumsFile(api, false, "global_enums.gen.go",
			"Global engine enums and constants."),
		makeGlobalEnumsFile(api, true, "global_enums_private.gen.go",
			"Global enums reserved for internal use by the bindings."),
	}
}

func makeCoreCentralFile(api *domain.ExtensionAPI, ctx *Context, ffiImportPath string) GeneratedFile {
	variantType := api.VariantTypeEnum()

	var b strings.Builder
	writeFileHeader(&b, corePackageName, "", []string{ffiImportPath})

	// Remaining helper surface for the ffi-defined variant-type enum. The
	// type itself lives in the ffi package to break the module cycle, so
	// these are package-level functions rather than methods.
	b.WriteString(MakeEnumDefinitionWith(variantType, ffiPackageName+".", false, true))

	writeVariantDispatch(&b, api, ctx)

	return GeneratedFile{RelPath: corePackageName + "/central.gen.go", Contents: b.String()}
}

// writeVariantDispatch emits the closed dispatch type: one arm per builtin
// value type plus the synthesized Nil arm (Nil is not a builtin in the API
// description).
func writeVariantDispatch(b *strings.Builder, api *domain.ExtensionAPI, ctx *Context) {
	b.WriteString("// VariantDispatch mirrors a Variant's concrete type, for pattern matching\n// on dynamic values.\ntype VariantDispatch interface {\n\tfmt.Stringer\n\tvariantDispatch()\n}\n\n")

	b.WriteString("// NilVariant is the dispatch arm for empty variants.\ntype NilVariant struct{}\n\nfunc (NilVariant) variantDispatch() {}\n\nfunc (NilVariant) String() string { return \"null\" }\n\n")

	for _, builtin := range api.Builtins {
		arm := conv.ToPascalCase(builtin.GodotName) + "Variant"
		payload := ctx.GoType(builtin.GodotName)
		fmt.Fprintf(b, "// %s is the dispatch arm for %s values.\ntype %s struct{ Value %s }\n\n", arm, builtin.GoName, arm, payload)
		fmt.Fprintf(b, "func (%s) variantDispatch() {}\n\n", arm)
		fmt.Fprintf(b, "func (v %s) String() string { return fmt.Sprintf(\"%%v\", v.Value) }\n\n", arm)
	}

	b.WriteString("// VariantDispatchOf inspects the variant's runtime type tag.\n//\n// It panics for tags unknown to these bindings. This is a temporary\n// limitation until the variant-type enum becomes extensible.\n")
	b.WriteString("func VariantDispatchOf(v *Variant) VariantDispatch {\n\tswitch v.Type() {\n")
	fmt.Fprintf(b, "\tcase %s.VariantTypeNil:\n\t\treturn NilVariant{}\n", ffiPackageName)
	for _, builtin := range api.Builtins {
		arm := conv.ToPascalCase(builtin.GodotName) + "Variant"
		fmt.Fprintf(b, "\tcase %s.%s:\n\t\treturn %s{Value: v.To%s()}\n",
			ffiPackageName, builtin.VariantTypeConstant(), arm, conv.ToPascalCase(builtin.GodotName))
	}
	b.WriteString("\tdefault:\n\t\tpanic(fmt.Sprintf(\"variant type not supported: %s(%d)\", VariantTypeName(v.Type()), int32(v.Type())))\n\t}\n}\n")
}

// makeGlobalEnumsFile routes global enums into the public or the internal
// file based on their privacy flag. The variant-type enum is excluded: it is
// handled by the dedicated central path to avoid a double definition.
func makeGlobalEnumsFile(api *domain.ExtensionAPI, private bool, name, doc string) GeneratedFile {
	var b strings.Builder
	writeFileHeader(&b, corePackageName, "", nil)
	fmt.Fprintf(&b, "// %s\n\n", doc)

	for i := range api.GlobalEnums {
		e := &api.GlobalEnums[i]
		if e.GodotName == domain.VariantTypeEnumName {
			continue
		}
		if e.IsPrivate != private {
			continue
		}
		b.WriteString(MakeEnumDefinition(e))
	}

	return GeneratedFile{RelPath: corePackageName + "/" + name, Contents: b.String()}
}

package codegen

import (
	"fmt"
	"strings"

	"github.com/gogdext/gdext/internal/codegen/domain"
)

// MakeNativeStructuresFile emits one Go struct per engine native structure,
// with fields mapped from the C layout description. The structs are plain
// data mirrors; binary compatibility is the engine's contract, so field
// order follows the format string exactly.
func MakeNativeStructuresFile(api *domain.ExtensionAPI, ctx *Context, precision domain.Precision) GeneratedFile {
	var b strings.Builder
	writeFileHeader(&b, corePackageName, "", nil)

	for _, ns := range api.NativeStructures {
		fmt.Fprintf(&b, "// %s mirrors the engine's %s layout (%q).\n", ns.GoName, ns.GodotName, ns.Format)
		fmt.Fprintf(&b, "type %s struct {\n", ns.GoName)
		for _, f := range ns.Fields {
			fmt.Fprintf(&b, "\t%s %s", f.GoName, cTypeToGo(f, ctx, precision))
			if f.Default != "" {
				fmt.Fprintf(&b, " // engine default: %s", f.Default)
			}
			b.WriteString("\n")
		}
		b.WriteString("}\n\n")
	}

	return GeneratedFile{RelPath: corePackageName + "/native_structures.gen.go", Contents: b.String()}
}

// cTypes maps the C scalar types appearing in native structure format
// strings onto Go types of identical size.
var cTypes = map[string]string{
	"bool":     "bool",
	"char":     "byte",
	"float":    "float32",
	"double":   "float64",
	"int":      "int32",
	"int8_t":   "int8",
	"uint8_t":  "uint8",
	"int16_t":  "int16",
	"uint16_t": "uint16",
	"int32_t":  "int32",
	"uint32_t": "uint32",
	"int64_t":  "int64",
	"uint64_t": "uint64",
}

func cTypeToGo(f domain.NativeField, ctx *Context, precision domain.Precision) string {
	if f.Pointer {
		// Pointers cross the boundary opaquely; dereferencing is up to the
		// hand-written wrapper that knows the pointee's lifetime.
		return "unsafe.Pointer"
	}
	if f.CType == "real_t" {
		if precision == domain.PrecisionDouble {
			return "float64"
		}
		return "float32"
	}
	if goType, ok := cTypes[f.CType]; ok {
		return goType
	}
	// Engine value types (Rect2, StringName, ObjectID...) by Go name.
	return ctx.GoType(f.CType)
}

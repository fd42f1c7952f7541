package codegen

import (
	"fmt"
	"strings"

	"github.com/gogdext/gdext/internal/codegen/domain"
)

// MakeUtilityFunctionsFile emits the registry of engine utility functions:
// name constants plus the call hashes the runtime needs to resolve each
// function pointer against the loaded engine.
func MakeUtilityFunctionsFile(api *domain.ExtensionAPI) GeneratedFile {
	var b strings.Builder
	writeFileHeader(&b, corePackageName, "", nil)

	if len(api.UtilityFunctions) > 0 {
		b.WriteString("// Engine utility function names.\nconst (\n")
		for _, u := range api.UtilityFunctions {
			fmt.Fprintf(&b, "\tUtility%s = %q\n", u.GoName, u.GodotName)
		}
		b.WriteString(")\n\n")
	}

	b.WriteString("// UtilityFunctionHashes maps each utility function to the call hash it\n// was generated against; a hash mismatch at load time means the engine's\n// signature changed incompatibly.\nvar UtilityFunctionHashes = map[string]int64{\n")
	for _, u := range api.UtilityFunctions {
		fmt.Fprintf(&b, "\t%q: %d,\n", u.GodotName, u.Hash)
	}
	b.WriteString("}\n")

	return GeneratedFile{RelPath: corePackageName + "/utility_functions.gen.go", Contents: b.String()}
}

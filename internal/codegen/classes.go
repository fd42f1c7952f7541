package codegen

import (
	"fmt"
	"strings"

	"github.com/gogdext/gdext/internal/codegen/domain"
)

// MakeClassesFile emits the class registry: one name constant per class,
// grouped by codegen level, plus the level routing and singleton tables the
// per-class generators and the runtime loader consult.
func MakeClassesFile(api *domain.ExtensionAPI, ctx *Context) GeneratedFile {
	var b strings.Builder
	writeFileHeader(&b, corePackageName, "", nil)

	for _, level := range []domain.ClassCodegenLevel{domain.LevelCore, domain.LevelServers, domain.LevelScene, domain.LevelEditor} {
		var names []string
		for _, c := range api.Classes {
			if l, ok := ctx.ClassLevel(c.GodotName); ok && l == level {
				names = append(names, c.GodotName)
			}
		}
		if len(names) == 0 {
			continue
		}
		fmt.Fprintf(&b, "// Classes generated at the %s level.\nconst (\n", level)
		for _, name := range names {
			fmt.Fprintf(&b, "\tClass%s = %q\n", ctx.GoType(name), name)
		}
		b.WriteString(")\n\n")
	}

	b.WriteString("// ClassCodegenLevels routes each engine class to the layer its bindings\n// are generated for.\nvar ClassCodegenLevels = map[string]string{\n")
	for _, c := range api.Classes {
		if level, ok := ctx.ClassLevel(c.GodotName); ok {
			fmt.Fprintf(&b, "\t%q: %q,\n", c.GodotName, level.String())
		}
	}
	b.WriteString("}\n\n")

	b.WriteString("// EngineSingletons lists the classes the engine exposes as singletons.\nvar EngineSingletons = map[string]bool{\n")
	for _, s := range api.Singletons {
		fmt.Fprintf(&b, "\t%q: true,\n", s)
	}
	b.WriteString("}\n\n")

	// Class-scoped enums ride along with the class registry.
	for i := range api.Classes {
		for j := range api.Classes[i].Enums {
			b.WriteString(MakeEnumDefinition(&api.Classes[i].Enums[j]))
		}
	}

	return GeneratedFile{RelPath: corePackageName + "/classes.gen.go", Contents: b.String()}
}

// Package domain holds the immutable in-memory model of the engine API that
// all generators consume. It is built once from the raw JSON model and never
// mutated afterwards.
package domain

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/gogdext/gdext/internal/codegen/api"
	"github.com/gogdext/gdext/internal/codegen/conv"
	"github.com/gogdext/gdext/internal/codegen/specialcases"
)

// VariantTypeEnumName is the engine name of the dynamic value tag enum. Its
// absence from the API description is process-fatal.
const VariantTypeEnumName = "Variant.Type"

// ExtensionAPI is the root domain object aggregating everything the
// generators need.
type ExtensionAPI struct {
	Version          GodotVersion
	GlobalEnums      []Enum
	Builtins         []Builtin
	BuiltinSizes     []BuiltinSize
	Classes          []Class
	NativeStructures []NativeStructure
	UtilityFunctions []UtilityFunction
	Singletons       []string
}

// VariantTypeEnum returns the dynamic value tag enum.
func (a *ExtensionAPI) VariantTypeEnum() *Enum {
	for i := range a.GlobalEnums {
		if a.GlobalEnums[i].GodotName == VariantTypeEnumName {
			return &a.GlobalEnums[i]
		}
	}
	// FromJSON guarantees presence; reaching this is a generator bug.
	panic("extension API lost its " + VariantTypeEnumName + " enum")
}

// Builtin is one engine builtin value type (Vector2, String, ...). Nil is
// not modeled as a builtin; the dispatch generator synthesizes it.
type Builtin struct {
	GodotName string
	GoName    string
}

// VariantTypeConstant returns the Go constant of the variant-type enum that
// tags this builtin ("Vector2" -> "VariantTypeVector2").
func (b Builtin) VariantTypeConstant() string {
	return "VariantType" + conv.ToPascalCase(b.GodotName)
}

// BuiltinSize is one builtin's opaque storage size under one build
// configuration.
type BuiltinSize struct {
	Config    BuildConfig
	GodotName string
	Size      int
}

// ClassCodegenLevel routes a class into the layer its bindings are generated
// for; levels compile in the order they are declared here.
type ClassCodegenLevel int

const (
	LevelCore ClassCodegenLevel = iota
	LevelServers
	LevelScene
	LevelEditor
)

func (l ClassCodegenLevel) String() string {
	switch l {
	case LevelCore:
		return "core"
	case LevelServers:
		return "servers"
	case LevelScene:
		return "scene"
	case LevelEditor:
		return "editor"
	default:
		return "unknown"
	}
}

// Class is one engine class with the fields the codegen core consumes.
type Class struct {
	GodotName string
	GoName    string
	APIType   string
	Inherits  string
	Enums     []Enum
}

// NativeStructure is a C-layout structure crossing the extension boundary.
type NativeStructure struct {
	GodotName string
	GoName    string
	Format    string
	Fields    []NativeField
}

// NativeField is one parsed field of a native structure's format string.
type NativeField struct {
	GodotName string
	GoName    string
	CType     string
	Pointer   bool
	Default   string // textual default from the format string, if any
}

// UtilityFunction is one engine-global utility function.
type UtilityFunction struct {
	GodotName  string
	GoName     string
	Category   string
	Hash       int64
	IsVararg   bool
	ReturnType string
}

// FromJSON builds the domain model from the raw JSON model.
//
// This resolves names, applies the special-case registry, flattens the
// per-configuration builtin sizes and parses native structure layouts. A
// missing dynamic-value-tag enum is an error: the description is malformed
// or incompatible and generation cannot proceed.
func FromJSON(root *api.ExtensionAPI) (*ExtensionAPI, error) {
	out := &ExtensionAPI{
		Version: GodotVersion{
			Major:    root.Header.VersionMajor,
			Minor:    root.Header.VersionMinor,
			Patch:    root.Header.VersionPatch,
			Status:   root.Header.VersionStatus,
			FullName: root.Header.VersionFullName,
		},
	}

	hasVariantType := false
	for _, j := range root.GlobalEnums {
		e, err := enumFromJSON(j)
		if err != nil {
			return nil, err
		}
		if j.Name == VariantTypeEnumName {
			hasVariantType = true
		}
		out.GlobalEnums = append(out.GlobalEnums, e)
	}
	if !hasVariantType {
		return nil, errors.Errorf("missing %s enum in extension API description", VariantTypeEnumName)
	}

	for _, j := range root.BuiltinClasses {
		if j.Name == "Nil" {
			continue
		}
		goName, ok := specialcases.GoTypeOverride(j.Name)
		if !ok {
			goName = conv.ToPascalCase(j.Name)
		}
		out.Builtins = append(out.Builtins, Builtin{GodotName: j.Name, GoName: goName})
	}

	for _, sizes := range root.BuiltinClassSizes {
		cfg, err := ParseBuildConfiguration(sizes.BuildConfiguration)
		if err != nil {
			return nil, err
		}
		for _, ts := range sizes.Sizes {
			out.BuiltinSizes = append(out.BuiltinSizes, BuiltinSize{
				Config:    cfg,
				GodotName: ts.Name,
				Size:      ts.Size,
			})
		}
	}

	for _, j := range root.Classes {
		if specialcases.IsClassDeleted(j.Name) {
			continue
		}
		c := Class{
			GodotName: j.Name,
			GoName:    conv.ToPascalCase(j.Name),
			APIType:   j.APIType,
			Inherits:  j.Inherits,
		}
		for _, je := range j.Enums {
			// Class-scoped enums get the class name prepended so they stay
			// unique within one generated package.
			scoped := je
			scoped.Name = j.Name + "." + je.Name
			e, err := enumFromJSON(scoped)
			if err != nil {
				return nil, err
			}
			c.Enums = append(c.Enums, e)
		}
		out.Classes = append(out.Classes, c)
	}

	for _, j := range root.NativeStructures {
		fields, err := parseNativeFormat(j.Format)
		if err != nil {
			return nil, errors.Wrapf(err, "native structure %s", j.Name)
		}
		out.NativeStructures = append(out.NativeStructures, NativeStructure{
			GodotName: j.Name,
			GoName:    conv.ToPascalCase(j.Name),
			Format:    j.Format,
			Fields:    fields,
		})
	}

	for _, j := range root.UtilityFunctions {
		out.UtilityFunctions = append(out.UtilityFunctions, UtilityFunction{
			GodotName:  j.Name,
			GoName:     conv.ToPascalCase(j.Name),
			Category:   j.Category,
			Hash:       j.Hash,
			IsVararg:   j.IsVararg,
			ReturnType: j.ReturnType,
		})
	}

	for _, s := range root.Singletons {
		out.Singletons = append(out.Singletons, s.Name)
	}

	return out, nil
}

// parseNativeFormat parses a C-ish layout string like
// "float left;float right" or "int start = -1;Rect2 *rect".
func parseNativeFormat(format string) ([]NativeField, error) {
	var fields []NativeField
	for _, segment := range strings.Split(format, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		decl, def, _ := strings.Cut(segment, "=")
		parts := strings.Fields(strings.TrimSpace(decl))
		if len(parts) != 2 {
			return nil, errors.Errorf("cannot parse field declaration %q", segment)
		}
		cType, name := parts[0], parts[1]
		pointer := false
		if strings.HasPrefix(name, "*") {
			pointer = true
			name = strings.TrimPrefix(name, "*")
		}
		if strings.Contains(name, "[") {
			return nil, errors.Errorf("array fields are not supported: %q", segment)
		}
		fields = append(fields, NativeField{
			GodotName: name,
			GoName:    conv.ToPascalCase(name),
			CType:     cType,
			Pointer:   pointer,
			Default:   strings.TrimSpace(def),
		})
	}
	return fields, nil
}

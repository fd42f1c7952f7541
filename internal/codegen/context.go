package codegen

import (
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gogdext/gdext/internal/codegen/api"
	"github.com/gogdext/gdext/internal/codegen/conv"
	"github.com/gogdext/gdext/internal/codegen/domain"
	"github.com/gogdext/gdext/internal/codegen/specialcases"
)

// Context holds the lookup tables generators need: engine type name to Go
// type, class to codegen level, singleton detection and builtin sizes.
//
// Built once per generation run, before any generator executes, and treated
// as read-only afterwards.
type Context struct {
	goTypes      map[string]string
	classLevels  map[string]domain.ClassCodegenLevel
	singletons   map[string]bool
	builtinSizes map[domain.BuildConfig]map[string]int
}

// BuildContext derives the context from the raw JSON model.
func BuildContext(root *api.ExtensionAPI) (*Context, error) {
	ctx := &Context{
		goTypes:      make(map[string]string),
		classLevels:  make(map[string]domain.ClassCodegenLevel),
		singletons:   make(map[string]bool),
		builtinSizes: make(map[domain.BuildConfig]map[string]int),
	}

	for _, b := range root.BuiltinClasses {
		ctx.goTypes[b.Name] = goTypeFor(b.Name)
	}
	for _, c := range root.Classes {
		ctx.goTypes[c.Name] = goTypeFor(c.Name)
		level, err := classLevel(&c, root.Header.VersionMajor, root.Header.VersionMinor)
		if err != nil {
			return nil, err
		}
		ctx.classLevels[c.Name] = level
	}
	for _, s := range root.Singletons {
		ctx.singletons[s.Type] = true
	}
	for _, sizes := range root.BuiltinClassSizes {
		cfg, err := domain.ParseBuildConfiguration(sizes.BuildConfiguration)
		if err != nil {
			return nil, err
		}
		perType := make(map[string]int, len(sizes.Sizes))
		for _, ts := range sizes.Sizes {
			perType[ts.Name] = ts.Size
		}
		ctx.builtinSizes[cfg] = perType
	}

	klog.V(1).Infof("Context: %d types, %d classes, %d singletons", len(ctx.goTypes), len(ctx.classLevels), len(ctx.singletons))
	return ctx, nil
}

// GoType maps an engine type name to its Go-side type name.
func (c *Context) GoType(godotName string) string {
	if t, ok := c.goTypes[godotName]; ok {
		return t
	}
	return goTypeFor(godotName)
}

// ClassLevel returns the codegen level the class was routed to.
func (c *Context) ClassLevel(godotClass string) (domain.ClassCodegenLevel, bool) {
	level, ok := c.classLevels[godotClass]
	return level, ok
}

// IsSingleton reports whether the class is an engine singleton.
func (c *Context) IsSingleton(godotClass string) bool {
	return c.singletons[godotClass]
}

// BuiltinSize returns the opaque storage size of a builtin under the given
// build configuration.
func (c *Context) BuiltinSize(cfg domain.BuildConfig, godotName string) (int, bool) {
	perType, ok := c.builtinSizes[cfg]
	if !ok {
		return 0, false
	}
	size, ok := perType[godotName]
	return size, ok
}

func goTypeFor(godotName string) string {
	if t, ok := specialcases.GoTypeOverride(godotName); ok {
		return t
	}
	return conv.ToPascalCase(godotName)
}

// classLevel implements the routing of classes into codegen levels. The
// engine's own "core" API type maps to the scene level; true core types are
// hand-written in this binding.
func classLevel(c *api.Class, major, minor int) (domain.ClassCodegenLevel, error) {
	isServer := strings.HasSuffix(c.Name, "Server") || specialcases.IsClassLevelServer(c.Name)
	switch {
	case c.APIType != "editor" && isServer:
		return domain.LevelServers, nil
	case c.APIType == "editor" || specialcases.OverrideEditorLevel(c.Name, major, minor):
		return domain.LevelEditor, nil
	case c.APIType == "core":
		return domain.LevelScene, nil
	default:
		return 0, errors.Errorf("class %s has unknown API type %q", c.Name, c.APIType)
	}
}

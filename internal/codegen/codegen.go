// Package codegen generates the Go binding sources for the engine's
// extension API.
//
// The pipeline is strictly sequential: load the JSON API description, build
// the read-only Context, map the domain model, run each file generator, then
// format and write the output tree. Generators are pure transformations over
// the shared immutable model; the same description and configuration always
// produce byte-identical source.
package codegen

import (
	"path/filepath"

	"k8s.io/klog/v2"

	"github.com/gogdext/gdext/internal/codegen/api"
	"github.com/gogdext/gdext/internal/codegen/domain"
)

// DefaultFFIImportPath is where generated core files expect the generated
// ffi package, matching the conventional output layout inside this module.
const DefaultFFIImportPath = "github.com/gogdext/gdext/gdffi"

// Config selects the input description and output layout of one run.
type Config struct {
	// APIPath locates the engine's extension_api.json.
	APIPath string
	// OutDir is the root of the generated tree; the gdffi and gdcore
	// package directories are created beneath it.
	OutDir string
	// Precision selects the engine float build the bindings target.
	Precision domain.Precision
	// FFIImportPath is the import path generated core files use to reach
	// the generated ffi package. Defaults to DefaultFFIImportPath.
	FFIImportPath string
	// StatsFileName overrides the timing report name; empty means
	// "codegen-stats.txt".
	StatsFileName string
}

// Generate runs the full pipeline.
func Generate(cfg Config) error {
	if cfg.FFIImportPath == "" {
		cfg.FFIImportPath = DefaultFFIImportPath
	}
	if cfg.StatsFileName == "" {
		cfg.StatsFileName = "codegen-stats.txt"
	}

	watch := StartStopWatch()

	root, err := api.Load(cfg.APIPath)
	if err != nil {
		return err
	}
	watch.Record("load_extension_api")

	ctx, err := BuildContext(root)
	if err != nil {
		return err
	}
	watch.Record("build_context")

	model, err := domain.FromJSON(root)
	if err != nil {
		return err
	}
	watch.Record("map_domain_models")

	files, err := MakeFFICentralFiles(model, ctx, cfg.Precision)
	if err != nil {
		return err
	}
	watch.Record("generate_ffi_central_files")

	files = append(files, MakeCoreCentralFiles(model, ctx, cfg.FFIImportPath)...)
	watch.Record("generate_core_central_files")

	files = append(files,
		MakeClassesFile(model, ctx),
		MakeNativeStructuresFile(model, ctx, cfg.Precision),
		MakeUtilityFunctionsFile(model),
	)
	watch.Record("generate_support_files")

	if err := WriteFiles(cfg.OutDir, files); err != nil {
		return err
	}
	watch.Record("write_files")

	if err := watch.WriteReport(filepath.Join(cfg.OutDir, cfg.StatsFileName)); err != nil {
		return err
	}

	klog.V(1).Infof("Generated %d files for Godot %s (%s precision) into %s",
		len(files), model.Version.Triplet(), cfg.Precision, cfg.OutDir)
	return nil
}

// gdext_codegen reads the engine's extension API description
// (extension_api.json) and generates the Go binding sources: opaque storage
// types, engine enums, the variant dispatch surface and the class/native
// structure/utility registries.
package main

import (
	"flag"

	"github.com/janpfeifer/gonb/common"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"

	"github.com/gogdext/gdext/internal/codegen"
	"github.com/gogdext/gdext/internal/codegen/domain"
)

var (
	flagAPI = flag.String("api", "extension_api.json",
		"Path to the engine's extension API description.")
	flagOut = flag.String("out", "gen",
		"Output directory; the gdffi and gdcore packages are created beneath it.")
	flagPrecision = flag.String("precision", "float",
		"Engine float precision the bindings target: \"float\" or \"double\".")
	flagFFIImport = flag.String("ffi_import", codegen.DefaultFFIImportPath,
		"Import path generated core files use for the generated ffi package.")
	flagStats = flag.String("stats", "codegen-stats.txt",
		"Name of the timing report written into the output directory.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	precision := must.M1(domain.ParsePrecision(*flagPrecision))
	cfg := codegen.Config{
		APIPath:       common.ReplaceTildeInDir(*flagAPI),
		OutDir:        common.ReplaceTildeInDir(*flagOut),
		Precision:     precision,
		FFIImportPath: *flagFFIImport,
		StatsFileName: *flagStats,
	}
	if err := codegen.Generate(cfg); err != nil {
		klog.Exitf("code generation failed: %+v", err)
	}
}

package codegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/tools/imports"
	"k8s.io/klog/v2"
)

// GeneratedFile is one output artifact: a path relative to the output
// directory and its (unformatted) source text.
type GeneratedFile struct {
	RelPath  string
	Contents string
}

// generatedHeader marks files as machine-written, following the convention
// tooling recognizes.
const generatedHeader = "// Code generated by gdext_codegen. DO NOT EDIT.\n"

// writeFileHeader emits the generated-code marker, an optional build
// constraint, the package clause and an optional import block.
func writeFileHeader(b *strings.Builder, pkg, buildConstraint string, importPaths []string) {
	b.WriteString(generatedHeader)
	b.WriteString("\n")
	if buildConstraint != "" {
		fmt.Fprintf(b, "//go:build %s\n\n", buildConstraint)
	}
	fmt.Fprintf(b, "package %s\n\n", pkg)
	if len(importPaths) > 0 {
		b.WriteString("import (\n")
		for _, path := range importPaths {
			fmt.Fprintf(b, "\t%q\n", path)
		}
		b.WriteString(")\n\n")
	}
}

// WriteFiles formats each generated file and writes it under outDir,
// creating directories as needed. Formatting also prunes unused imports and
// adds missing standard-library ones, so generators only declare imports
// goimports cannot infer. Any failure is fatal to the run: partially
// generated bindings would fail to compile in confusing ways downstream.
func WriteFiles(outDir string, files []GeneratedFile) error {
	for _, f := range files {
		path := filepath.Join(outDir, filepath.FromSlash(f.RelPath))
		formatted, err := imports.Process(path, []byte(f.Contents), nil)
		if err != nil {
			return errors.Wrapf(err, "formatting generated file %s", f.RelPath)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return errors.Wrapf(err, "creating output directory for %s", f.RelPath)
		}
		if err := os.WriteFile(path, formatted, 0644); err != nil {
			return errors.Wrapf(err, "writing generated file %s", f.RelPath)
		}
		klog.V(2).Infof("Wrote %s (%d bytes)", path, len(formatted))
	}
	return nil
}

package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

// GodotVersion identifies the engine version an API description was
// generated from.
type GodotVersion struct {
	Major    int
	Minor    int
	Patch    int
	Status   string
	FullName string
}

// Triplet returns the "major.minor.patch" form used in generated headers.
func (v GodotVersion) Triplet() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Precision is the engine's floating-point build axis: `real_t` is float32
// on single-precision builds and float64 on double-precision builds.
type Precision int

const (
	PrecisionSingle Precision = iota
	PrecisionDouble
)

func (p Precision) String() string {
	if p == PrecisionDouble {
		return "double"
	}
	return "float"
}

// ParsePrecision parses the -precision flag value.
func ParsePrecision(s string) (Precision, error) {
	switch s {
	case "float":
		return PrecisionSingle, nil
	case "double":
		return PrecisionDouble, nil
	default:
		return 0, errors.Errorf("unknown precision %q (want \"float\" or \"double\")", s)
	}
}

// BuildConfig is one of the engine's four build configurations: a precision
// combined with a pointer width.
type BuildConfig struct {
	Precision   Precision
	PointerBits int
}

// ParseBuildConfiguration parses names like "float_32" or "double_64".
func ParseBuildConfiguration(name string) (BuildConfig, error) {
	switch name {
	case "float_32":
		return BuildConfig{PrecisionSingle, 32}, nil
	case "float_64":
		return BuildConfig{PrecisionSingle, 64}, nil
	case "double_32":
		return BuildConfig{PrecisionDouble, 32}, nil
	case "double_64":
		return BuildConfig{PrecisionDouble, 64}, nil
	default:
		return BuildConfig{}, errors.Errorf("unknown build configuration %q", name)
	}
}

// Name returns the engine-side configuration name.
func (c BuildConfig) Name() string {
	return fmt.Sprintf("%s_%d", c.Precision, c.PointerBits)
}

// Is64Bit reports whether the configuration targets 64-bit pointers.
func (c BuildConfig) Is64Bit() bool {
	return c.PointerBits == 64
}

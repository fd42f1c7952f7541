package gdenum_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogdext/gdext/gdenum"
)

// The fixtures below are written in exactly the shape the generator emits,
// so the behavioral contracts (fallible conversion, OR lifting, first-wins
// alias lookup) are exercised as compiled code rather than as text.

// Orientation is an exhaustive enum fixture.
type Orientation int32

const (
	OrientationVertical   Orientation = 0
	OrientationHorizontal Orientation = 1
)

func OrientationFromOrd(ord int32) (Orientation, bool) {
	switch ord {
	case 0:
		return OrientationVertical, true
	case 1:
		return OrientationHorizontal, true
	default:
		return 0, false
	}
}

func (e Orientation) Ord() int32 { return int32(e) }

func (e Orientation) Name() string {
	switch e {
	case OrientationVertical:
		return "OrientationVertical"
	case OrientationHorizontal:
		return "OrientationHorizontal"
	default:
		return ""
	}
}

func (e Orientation) GodotName() string {
	switch e {
	case OrientationVertical:
		return "VERTICAL"
	case OrientationHorizontal:
		return "HORIZONTAL"
	default:
		return e.Name()
	}
}

// MethodFlags is a bitfield fixture with an ordinal alias (Default == Normal).
type MethodFlags uint64

const (
	MethodFlagsNormal  MethodFlags = 1
	MethodFlagsConst   MethodFlags = 2
	MethodFlagsDefault MethodFlags = 1
)

func MethodFlagsFromOrd(ord uint64) (MethodFlags, bool) { return MethodFlags(ord), true }

func (e MethodFlags) Ord() uint64 { return uint64(e) }

func (e MethodFlags) BitOr(rhs MethodFlags) MethodFlags { return e | rhs }

// DupEnum is a non-exhaustive enum fixture with two enumerators sharing an
// ordinal; lookups must deterministically pick the first-declared one.
type DupEnum int32

const (
	DupEnumFoo DupEnum = 5
	DupEnumBar DupEnum = 5
)

func (e DupEnum) Ord() int32 { return int32(e) }

func (e DupEnum) Name() string {
	switch e {
	case DupEnumFoo:
		return "DupEnumFoo"
	default:
		return ""
	}
}

func (e DupEnum) GodotName() string {
	switch e {
	case DupEnumFoo:
		return "FOO"
	default:
		return e.Name()
	}
}

var (
	_ gdenum.EngineEnum     = Orientation(0)
	_ gdenum.EngineEnum     = DupEnum(0)
	_ gdenum.EngineBitfield = MethodFlags(0)
)

func TestExhaustiveEnumRoundTrip(t *testing.T) {
	for _, ord := range []int32{0, 1} {
		v, ok := OrientationFromOrd(ord)
		require.True(t, ok)
		require.Equal(t, ord, v.Ord())
	}

	v, ok := OrientationFromOrd(0)
	require.True(t, ok)
	require.Equal(t, OrientationVertical, v)

	_, ok = OrientationFromOrd(2)
	require.False(t, ok)
}

func TestBitfieldConversionIsTotal(t *testing.T) {
	// 3 is A|B even though no single enumerator equals 3.
	v, ok := MethodFlagsFromOrd(3)
	require.True(t, ok)
	require.Equal(t, uint64(3), v.Ord())

	// Round trip in the other direction: construction always succeeds.
	back, ok := MethodFlagsFromOrd(v.Ord())
	require.True(t, ok)
	require.Equal(t, v, back)
}

func TestBitfieldOrLiftsOrdinalOr(t *testing.T) {
	a, b := MethodFlagsNormal, MethodFlagsConst
	require.Equal(t, a.Ord()|b.Ord(), a.BitOr(b).Ord())
	require.Equal(t, a.BitOr(b), b.BitOr(a))
}

func TestDuplicateOrdinalLookupIsStable(t *testing.T) {
	require.Equal(t, DupEnumFoo, DupEnumBar)
	for i := 0; i < 3; i++ {
		require.Equal(t, "DupEnumFoo", DupEnumBar.Name())
		require.Equal(t, "FOO", DupEnumBar.GodotName())
	}

	// Unknown ordinals resolve to the empty string, never an error.
	require.Equal(t, "", DupEnum(99).Name())
}

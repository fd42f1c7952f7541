// Package gdenum defines the common surface of generated engine enums and
// bitfields.
//
// Generated enum types are named 32-bit signed integer types; generated
// bitfields are named 64-bit unsigned integer types. Conversion from a raw
// ordinal is a package-level generated function (`XxxFromOrd`) because Go
// has no static methods; it is fallible for enums, since a newer engine may
// report ordinals unknown to the generated code, and total for bitfields,
// where every bit pattern is a valid combination of flags.
package gdenum

// EngineEnum is implemented by every generated engine enum.
//
// Name returns the Go constant name of the enumerator, or "" when the
// ordinal has no known enumerator; GodotName returns the engine-side
// enumerator name. When several enumerators alias the same ordinal, both
// lookups consistently return the first-declared one.
type EngineEnum interface {
	Ord() int32
	Name() string
	GodotName() string
}

// EngineBitfield is implemented by every generated engine bitfield.
//
// Bitfields carry no name tables: a value is generally an OR-combination of
// flags rather than a single enumerator.
type EngineBitfield interface {
	Ord() uint64
}

// Index-style enums (those with a trailing *_MAX sentinel) additionally get
// a generated `XxxEnumeratorCount` constant, letting consumers size dense
// arrays exactly. There is no interface for it: constants cannot appear in
// interfaces.

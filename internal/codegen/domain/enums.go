package domain

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/gogdext/gdext/internal/codegen/api"
	"github.com/gogdext/gdext/internal/codegen/conv"
	"github.com/gogdext/gdext/internal/codegen/specialcases"
)

// Enum is one engine-defined enumeration or bitfield.
//
// Immutable after construction; IsBitfield and IsExhaustive are mutually
// exclusive (a bitfield is open-ended by definition).
type Enum struct {
	Name         string // Go-side type name
	GodotName    string
	IsBitfield   bool
	IsExhaustive bool
	IsPrivate    bool
	Enumerators  []Enumerator
}

// Enumerator is one member of an Enum.
type Enumerator struct {
	Name      string // Go-side constant name
	GodotName string
	Value     EnumeratorValue
}

// EnumeratorValue tags an ordinal as either a plain enum ordinal (int32) or
// a bitfield value (uint64).
type EnumeratorValue struct {
	Ord      int64
	Bitfield bool
}

// Literal renders the ordinal as a Go literal of the enum's ordinal type.
func (v EnumeratorValue) Literal() string {
	if v.Bitfield {
		return strconv.FormatUint(uint64(v.Ord), 10)
	}
	return strconv.FormatInt(v.Ord, 10)
}

// OrdType is the Go ordinal type backing the enum: int32 for enums, uint64
// for bitfields (flag sets can exceed 32 bits).
func (e *Enum) OrdType() string {
	if e.IsBitfield {
		return "uint64"
	}
	return "int32"
}

// UniqueOrds returns the sorted, deduplicated ordinals of all enumerators.
// Duplicates are legal for non-exhaustive enums (aliases).
func (e *Enum) UniqueOrds() []int64 {
	seen := make(map[int64]bool, len(e.Enumerators))
	ords := make([]int64, 0, len(e.Enumerators))
	for _, en := range e.Enumerators {
		if !seen[en.Value.Ord] {
			seen[en.Value.Ord] = true
			ords = append(ords, en.Value.Ord)
		}
	}
	sort.Slice(ords, func(i, j int) bool { return ords[i] < ords[j] })
	return ords
}

// IndexEnumMax detects index-style enums: a trailing *_MAX sentinel whose
// value is the number of valid enumerators, letting consumers size dense
// arrays. Bitfields never qualify.
func (e *Enum) IndexEnumMax() (int64, bool) {
	if e.IsBitfield || len(e.Enumerators) == 0 {
		return 0, false
	}
	last := e.Enumerators[len(e.Enumerators)-1]
	if !strings.HasSuffix(last.GodotName, "_MAX") {
		return 0, false
	}
	return last.Value.Ord, true
}

// enumFromJSON maps one raw enum into the domain model, applying renames,
// privacy routing and exhaustiveness marking from the special-case registry.
func enumFromJSON(j api.Enum) (Enum, error) {
	goName, renamed := specialcases.RenameEnum(j.Name)
	if !renamed {
		goName = conv.ToPascalCase(j.Name)
	}

	e := Enum{
		Name:         goName,
		GodotName:    j.Name,
		IsBitfield:   j.IsBitfield,
		IsExhaustive: specialcases.IsEnumExhaustive(j.Name),
		IsPrivate:    specialcases.IsEnumPrivate(j.Name),
	}

	seenNames := make(map[string]bool, len(j.Values))
	seenOrds := make(map[int64]string, len(j.Values))
	for _, v := range j.Values {
		name := conv.MakeEnumeratorName(j.Name, goName, v.Name)
		if seenNames[name] {
			return Enum{}, errors.Errorf("enum %s: duplicate enumerator name %s", j.Name, name)
		}
		seenNames[name] = true

		if e.IsExhaustive {
			// Exhaustive enums become closed types; ordinal aliases would
			// make conversion ambiguous and are rejected here.
			if prev, dup := seenOrds[v.Value]; dup {
				return Enum{}, errors.Errorf(
					"exhaustive enum %s: enumerators %s and %s share ordinal %d",
					j.Name, prev, v.Name, v.Value)
			}
			seenOrds[v.Value] = v.Name
		}

		e.Enumerators = append(e.Enumerators, Enumerator{
			Name:      name,
			GodotName: v.Name,
			Value:     EnumeratorValue{Ord: v.Value, Bitfield: j.IsBitfield},
		})
	}
	return e, nil
}

package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testAPIPath = "../testdata/extension_api_test.json"

func TestLoad(t *testing.T) {
	root, err := Load(testAPIPath)
	require.NoError(t, err)

	require.Equal(t, 4, root.Header.VersionMajor)
	require.Equal(t, 3, root.Header.VersionMinor)
	require.Equal(t, 0, root.Header.VersionPatch)
	require.Equal(t, "stable", root.Header.VersionStatus)

	require.Len(t, root.BuiltinClassSizes, 4)
	require.Len(t, root.GlobalEnums, 6)
	require.Len(t, root.BuiltinClasses, 9)
	require.Len(t, root.Classes, 4)
	require.Len(t, root.Singletons, 2)
	require.Len(t, root.NativeStructures, 2)
	require.Len(t, root.UtilityFunctions, 2)

	lerpf := root.UtilityFunctions[0]
	require.Equal(t, "lerpf", lerpf.Name)
	require.Equal(t, "float", lerpf.ReturnType)
	require.Equal(t, int64(4250554102), lerpf.Hash)
	require.Len(t, lerpf.Arguments, 3)
	require.Equal(t, "weight", lerpf.Arguments[2].Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does_not_exist.json")
	require.Error(t, err)
	require.Contains(t, err.Error(), "does_not_exist.json")
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	_, err := Parse([]byte("{ not json"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "decoding JSON")
}

func TestParseRejectsIncompleteDocuments(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{
			name:     "missing header",
			contents: `{"global_enums": [{"name": "X"}], "builtin_class_sizes": [{"build_configuration": "float_64"}]}`,
			wantErr:  "header",
		},
		{
			name:     "missing global enums",
			contents: `{"header": {"version_major": 4}, "builtin_class_sizes": [{"build_configuration": "float_64"}]}`,
			wantErr:  "global_enums",
		},
		{
			name:     "missing builtin sizes",
			contents: `{"header": {"version_major": 4}, "global_enums": [{"name": "X"}]}`,
			wantErr:  "builtin_class_sizes",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.contents))
			require.Error(t, err)
			require.Contains(t, err.Error(), test.wantErr)
		})
	}
}

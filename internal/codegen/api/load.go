package api

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Load reads and parses an extension API description from disk.
func Load(path string) (*ExtensionAPI, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading extension API description %q", path)
	}
	root, err := Parse(contents)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing extension API description %q", path)
	}
	return root, nil
}

// Parse decodes an extension API description and checks that the top-level
// sections the pipeline cannot work without are present.
func Parse(contents []byte) (*ExtensionAPI, error) {
	root := &ExtensionAPI{}
	if err := json.Unmarshal(contents, root); err != nil {
		return nil, errors.Wrap(err, "decoding JSON")
	}
	if root.Header.VersionMajor == 0 {
		return nil, errors.New("missing or empty header section")
	}
	if len(root.GlobalEnums) == 0 {
		return nil, errors.New("missing global_enums section")
	}
	if len(root.BuiltinClassSizes) == 0 {
		return nil, errors.New("missing builtin_class_sizes section")
	}
	klog.V(1).Infof("Parsed extension API for %s: %d global enums, %d builtin classes, %d classes",
		root.Header.VersionFullName, len(root.GlobalEnums), len(root.BuiltinClasses), len(root.Classes))
	return root, nil
}

package section

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFromFile loads a section definition from a JSON, YAML or TOML file.
// The format is chosen by extension.
func LoadFromFile(path string) (*Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var section Section
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &section)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &section)
	case ".toml":
		err = toml.Unmarshal(data, &section)
	default:
		return nil, fmt.Errorf("unsupported section file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := section.Validate(); err != nil {
		return nil, err
	}

	return &section, nil
}

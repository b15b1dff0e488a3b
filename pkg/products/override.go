package products

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadAliasOverrides reads an optional YAML file of extra alias -> product
// id mappings, letting operators register new phrasings without a deploy.
// A missing file is not an error; a malformed one is.
//
// File shape:
//
//	aliases:
//	  godown insurance: 5
//	  wca: 19
func LoadAliasOverrides(path string) (map[string]int, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read alias overrides: %w", err)
	}

	var doc struct {
		Aliases map[string]int `yaml:"aliases"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse alias overrides: %w", err)
	}
	return doc.Aliases, nil
}

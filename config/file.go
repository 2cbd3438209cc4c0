package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadFile decodes a .toml or .yaml/.yml file into dst.  Both formats go through the yaml
// tags of dst, toml is re-serialized as yaml first.
func LoadFile(path string, dst interface{}) error {
	bz, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		asMap := map[string]interface{}{}
		if err = toml.Unmarshal(bz, &asMap); err != nil {
			break
		}
		bz, err = yaml.Marshal(asMap)
		if err != nil {
			return err
		}
		err = yaml.Unmarshal(bz, dst)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bz, dst)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("could not decode %s: %w", path, err)
	}
	return nil
}

// WriteFile encodes src in the format selected by the extension.
func WriteFile(path string, src interface{}) error {
	bz, err := yaml.Marshal(src)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		asMap := map[string]interface{}{}
		if err := yaml.Unmarshal(bz, &asMap); err != nil {
			return err
		}
		bz, err = toml.Marshal(asMap)
		if err != nil {
			return err
		}
	case ".yaml", ".yml":
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
	return os.WriteFile(path, bz, 0o600)
}

package schema

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// ClassFile is the layout of a class declaration file:
//
//	classes:
//	- name: unit
//	- name: archer
//	  parent: unit
type ClassFile struct {
	Classes []ClassSpec `json:"classes" yaml:"classes" toml:"classes"`
}

// LoadFile registers the classes declared in a YAML (.yaml, .yml,
// .json) or TOML (.toml) file.
func (r *ClassRegistry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch filepath.Ext(path) {
	case ".toml":
		err = r.LoadTOML(data)
	case ".yaml", ".yml", ".json":
		err = r.LoadYAML(data)
	default:
		return fmt.Errorf("%s: unknown class file format", path)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (r *ClassRegistry) LoadYAML(data []byte) error {
	var f ClassFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing class file: %w", err)
	}
	return r.Load(f.Classes)
}

func (r *ClassRegistry) LoadTOML(data []byte) error {
	var f ClassFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing class file: %w", err)
	}
	return r.Load(f.Classes)
}

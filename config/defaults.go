package config

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

// overrides replace defaults except for empty lists and nested zero values
func overrides(v interface{}) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Map:
		return false
	case reflect.Array, reflect.Slice:
		return reflect.ValueOf(v).Len() > 0
	case reflect.Int, reflect.Bool, reflect.String:
		// config structs must use "omitempty" for this to be safe
		return true
	}
	return !reflect.ValueOf(v).IsZero()
}

func mergeInto(defaults map[string]interface{}, values map[string]interface{}) error {
	for key, val := range values {
		existing, ok := defaults[key]
		if !ok {
			defaults[key] = val
			continue
		}
		existingMap, existingIsMap := existing.(map[string]interface{})
		valMap, valIsMap := val.(map[string]interface{})
		switch {
		case existingIsMap && valIsMap:
			if err := mergeInto(existingMap, valMap); err != nil {
				return err
			}
		case valIsMap:
			return fmt.Errorf("cannot merge %T into %T for %q", val, existing, key)
		case overrides(val):
			defaults[key] = val
		}
	}
	return nil
}

func toMap(cfg interface{}) (map[string]interface{}, error) {
	bz, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	asMap := map[string]interface{}{}
	if err := yaml.Unmarshal(bz, &asMap); err != nil {
		return nil, err
	}
	return asMap, nil
}

// ApplyDefaults merges overrideCfg on top of defaultCfg and decodes the result into newCfg.
func ApplyDefaults(defaultCfg interface{}, overrideCfg interface{}, newCfg interface{}) error {
	defaults, err := toMap(defaultCfg)
	if err != nil {
		return err
	}
	values, err := toMap(overrideCfg)
	if err != nil {
		return err
	}
	if err := mergeInto(defaults, values); err != nil {
		return err
	}
	bz, err := yaml.Marshal(defaults)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(bz, newCfg)
}

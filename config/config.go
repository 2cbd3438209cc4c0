package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/portasui/porta/config/constants"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func getViper() *viper.Viper {
	v := viper.New()
	// config file is config.yaml
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// If the config location env is set, use that.
	v.SetConfigFile(os.Getenv(constants.ConfigEnv))

	// otherwise, prioritize current path or parent
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	// Lastly, check home dir
	v.AddConfigPath(constants.DefaultHome)

	// PORTA_NETWORK overrides "network" and so on
	v.SetEnvPrefix("porta")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// RequireConfig decodes the given section of config.yaml into unmarshalDst, layered over the
// defaults.  With defaults, a missing config file is not an error and the defaults are used as is.
func RequireConfig(section string, unmarshalDst interface{}, defaults interface{}) error {
	v := getViper()
	if err := v.ReadInConfig(); err != nil {
		if defaults != nil && isNotFound(err) {
			bz, err := yaml.Marshal(defaults)
			if err != nil {
				return err
			}
			return yaml.Unmarshal(bz, unmarshalDst)
		}
		return fmt.Errorf("fatal error reading config file: %w", err)
	}
	return decodeSection(v, section, unmarshalDst, defaults)
}

// viper reports a missing searched file and a missing PORTA_CONFIG file differently
func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// RequireConfigFile is RequireConfig for an explicit file.  The extension selects the format.
func RequireConfigFile(path string, section string, unmarshalDst interface{}, defaults interface{}) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}
	return decodeSection(v, section, unmarshalDst, defaults)
}

func decodeSection(v *viper.Viper, section string, unmarshalDst interface{}, defaults interface{}) error {
	var asMap map[string]interface{}
	if section != "" {
		asMap = v.GetStringMap(section)
	} else {
		asMap = v.AllSettings()
	}
	// round trip through yaml so the yaml tags of unmarshalDst apply
	bz, err := yaml.Marshal(asMap)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(bz, unmarshalDst); err != nil {
		return err
	}
	if defaults != nil {
		return ApplyDefaults(defaults, unmarshalDst, unmarshalDst)
	}
	return nil
}

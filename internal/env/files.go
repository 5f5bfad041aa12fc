package env

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/magiconair/properties"
)

// LoadPropertiesFiles reads Java style .properties files into a Map; later
// files override earlier ones. Missing files are skipped when optional is
// true. ${key} references are kept literally.
func LoadPropertiesFiles(paths []string, optional bool) (*Map, error) {
	merged := NewMap(nil)
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	for _, path := range paths {
		path = strings.TrimSpace(path)
		ok, err := present(path, optional)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		props, err := loader.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read properties file %q: %w", path, err)
		}
		for _, key := range props.Keys() {
			value, _ := props.Get(key)
			merged.SetProperty(key, value)
		}
	}
	return merged, nil
}

// LoadEnvFiles reads dotenv files into an environment layer that answers
// dotted keys through their UPPER_SNAKE names.
func LoadEnvFiles(paths []string, optional bool) (*System, error) {
	values := map[string]string{}
	for _, path := range paths {
		path = strings.TrimSpace(path)
		ok, err := present(path, optional)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		read, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("read env file %q: %w", path, err)
		}
		for key, value := range read {
			values[key] = value
		}
	}
	return NewEnvironment(values), nil
}

func present(path string, optional bool) (bool, error) {
	if path == "" {
		return false, nil
	}
	if _, err := os.Stat(path); err != nil {
		if optional && os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat %q: %w", path, err)
	}
	return true, nil
}

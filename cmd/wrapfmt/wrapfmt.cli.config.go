package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// fileConfig is the --config file layout. Command-line flags override it.
type fileConfig struct {
	Wrappers []string       `yaml:"wrappers" toml:"wrappers" json:"wrappers"`
	OnError  string         `yaml:"on_error" toml:"on_error" json:"on_error"`
	Env      bool           `yaml:"env" toml:"env" json:"env"`
	Comments bool           `yaml:"comments" toml:"comments" json:"comments"`
	Data     []string       `yaml:"data" toml:"data" json:"data"`
	Values   map[string]any `yaml:"values" toml:"values" json:"values"`
	SQL      sqlFileConfig  `yaml:"sql" toml:"sql" json:"sql"`
}

// sqlFileConfig configures the optional SQL resolver
type sqlFileConfig struct {
	Driver      string `yaml:"driver" toml:"driver" json:"driver"`
	DSN         string `yaml:"dsn" toml:"dsn" json:"dsn"`
	Table       string `yaml:"table" toml:"table" json:"table"`
	KeyColumn   string `yaml:"key_column" toml:"key_column" json:"key_column"`
	ValueColumn string `yaml:"value_column" toml:"value_column" json:"value_column"`
}

// loadConfig reads path, or returns an empty config when path is empty.
// Relative data paths are resolved against the config file's directory.
func loadConfig(path string) (*fileConfig, error) {
	config := &fileConfig{}
	if path == "" {
		return config, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := decodeByExtension(path, content, config); err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	for i, p := range config.Data {
		if p != InputSourceStdin && !filepath.IsAbs(p) {
			config.Data[i] = filepath.Join(dir, p)
		}
	}
	return config, nil
}

// decodeByExtension decodes content as JSON, YAML or TOML based on path
func decodeByExtension(path string, content []byte, out any) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ExtJSON:
		return json.Unmarshal(content, out)
	case ExtYAML, ExtYML:
		err := yaml.NewDecoder(bytes.NewReader(content)).Decode(out)
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	case ExtTOML:
		_, err := toml.Decode(string(content), out)
		return err
	default:
		return fmt.Errorf("%s: %q", ErrMsgUnsupportedDataExt, ext)
	}
}

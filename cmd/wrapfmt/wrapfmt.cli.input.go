package main

import (
	"errors"
	"io"
	"maps"
	"os"
	"strings"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// loadDataFile decodes a JSON, YAML or TOML object
func loadDataFile(path string) (map[string]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	data := map[string]any{}
	if err := decodeByExtension(path, content, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// mergeValues overlays data files in order, then key=value pairs. Later
// sources replace top-level keys of earlier ones.
func mergeValues(base map[string]any, paths, sets []string) (map[string]any, error) {
	values := make(map[string]any, len(base))
	maps.Copy(values, base)

	for _, path := range paths {
		data, err := loadDataFile(path)
		if err != nil {
			return nil, err
		}
		maps.Copy(values, data)
	}

	for _, set := range sets {
		key, value, ok := strings.Cut(set, SetSeparator)
		if !ok || key == "" {
			return nil, errors.New(ErrMsgInvalidSet)
		}
		values[key] = value
	}
	return values, nil
}

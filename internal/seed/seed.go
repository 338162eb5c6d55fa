// Package seed provides the catalog and accounts the service starts with.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"bookcatalog/internal/book"
	"bookcatalog/internal/user"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Data is the startup content of the book and user stores.
type Data struct {
	Books []book.Book `yaml:"books"`
	Users []user.User `yaml:"users"`
}

// Default returns the built-in seed.
func Default() (Data, error) {
	return Parse(defaultSeed)
}

// Load reads a seed file, or the built-in seed when path is empty.
func Load(path string) (Data, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read seed file: %w", err)
	}
	data, err := Parse(raw)
	if err != nil {
		return Data{}, fmt.Errorf("seed file %s: %w", path, err)
	}
	return data, nil
}

// Parse decodes a YAML seed document. Unknown keys are rejected so typos in
// hand-written seed files surface at startup.
func Parse(raw []byte) (Data, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var data Data
	if err := dec.Decode(&data); err != nil {
		return Data{}, fmt.Errorf("decode seed: %w", err)
	}
	for i, u := range data.Users {
		if u.Username == "" || u.Password == "" {
			return Data{}, fmt.Errorf("decode seed: user %d: username and password are required", i)
		}
	}
	return data, nil
}

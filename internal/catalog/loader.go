package catalog

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed data/whitelist.vocab.json
var defaultWhitelist []byte

// LoadDefault loads the whitelist bundled with the binary.
func LoadDefault() (*Catalog, error) {
	return Load(defaultWhitelist)
}

// LoadFile loads a whitelist document from disk, for overriding the
// bundled vocabulary.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Err: fmt.Errorf("read %s: %w", path, err)}
	}
	return Load(raw)
}

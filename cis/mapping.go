package cis

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LoadMapping reads a mapping file (a JSON object of block name to numeric
// id, conventionally global_ids.json) and inverts it into a Resolver.
func LoadMapping(path string) (MapResolver, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cis: opening mapping %s: %w", path, err)
	}
	defer f.Close()
	m, err := ParseMapping(f)
	if err != nil {
		return nil, fmt.Errorf("cis: parsing mapping %s: %w", path, err)
	}
	return m, nil
}

// ParseMapping decodes a name-to-id JSON object from r and inverts it to
// id-to-name. The input may be plain UTF-8 or carry a UTF-8/UTF-16 byte
// order mark; both are normalized before JSON decoding.
func ParseMapping(r io.Reader) (MapResolver, error) {
	data, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return nil, err
	}

	var byName map[string]uint32
	if err := json.Unmarshal(data, &byName); err != nil {
		return nil, err
	}

	m := make(MapResolver, len(byName))
	for name, id := range byName {
		if id > 0xFFFF {
			return nil, fmt.Errorf("mapping id %d for %q exceeds 16 bits", id, name)
		}
		m[uint16(id)] = name
	}
	return m, nil
}

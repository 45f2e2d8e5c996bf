package ledger

// File loading for the ledger and alias tables. Both files are mappings from
// organization name to a string array; YAML is a superset of JSON, so either
// serialization loads through the same path. Decoding goes through yaml.Node
// rather than straight into a map so that duplicate keys in the file itself
// are detected instead of silently last-wins merged.

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadLedger reads and validates a partnership ledger file.
func LoadLedger(path string) (*Ledger, error) {
	raw, err := loadStringListMap(path)
	if err != nil {
		return nil, err
	}
	l, err := NewLedger(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// LoadAliases reads and validates an alias file.
func LoadAliases(path string) (*AliasTable, error) {
	raw, err := loadStringListMap(path)
	if err != nil {
		return nil, err
	}
	t, err := NewAliasTable(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// loadStringListMap decodes a file containing a single mapping of string to
// string-list, failing on duplicate keys.
func loadStringListMap(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("parse %s: empty document", path)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse %s: top level must be a mapping", path)
	}

	out := make(map[string][]string, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode := root.Content[i]
		valNode := root.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return nil, fmt.Errorf("parse %s: line %d: bad key: %w", path, keyNode.Line, err)
		}
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("parse %s: line %d: duplicate key %q", path, keyNode.Line, key)
		}

		var values []string
		if err := valNode.Decode(&values); err != nil {
			return nil, fmt.Errorf("parse %s: line %d: %q: expected a string list: %w", path, valNode.Line, key, err)
		}
		out[key] = values
	}
	return out, nil
}

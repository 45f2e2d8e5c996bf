package record

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads one record file. A file may hold a single record document
// or a list of records (the combined-export form), distinguished by the top
// node kind. YAML is a superset of JSON, so .json exports load unchanged.
func LoadFile(path string) ([]CareerRecord, error) {
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

	switch root.Kind {
	case yaml.SequenceNode:
		var records []CareerRecord
		if err := root.Decode(&records); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return records, nil
	case yaml.MappingNode:
		var rec CareerRecord
		if err := root.Decode(&rec); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return []CareerRecord{rec}, nil
	default:
		return nil, fmt.Errorf("parse %s: expected a record or list of records", path)
	}
}

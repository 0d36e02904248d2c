package seedweaver

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Record pairs a user-chosen label with the value decoded under it.
type Record[T any] struct {
	Label string
	Value T
}

// DecodeFunc turns substituted fixture text into labeled records, preserving
// the order in which the labels appear in the document. Labels must be unique
// within one file; the decoder decides how duplicates are handled.
type DecodeFunc[T any] func(text string) ([]Record[T], error)

// YAMLRecords decodes a YAML document whose top level is a mapping from
// labels to records. It is the default decoder; any other structured format
// can be plugged in through a custom DecodeFunc.
func YAMLRecords[T any](text string) ([]Record[T], error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		// empty document, nothing to seed
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping of labels to records at the top level (line %d)", root.Line)
	}

	records := make([]Record[T], 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		var value T
		if err := root.Content[i+1].Decode(&value); err != nil {
			return nil, err
		}
		records = append(records, Record[T]{Label: root.Content[i].Value, Value: value})
	}
	return records, nil
}

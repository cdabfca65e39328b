package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixtures are the records to POST, by collection. They are sent as-is, so
// rooms and bookings name their accommodation with parentId.
type Fixtures struct {
	Users          []map[string]any `yaml:"users"`
	Accommodations []map[string]any `yaml:"accommodations"`
	Rooms          []map[string]any `yaml:"rooms"`
	Bookings       []map[string]any `yaml:"bookings"`
}

func (f Fixtures) Len() int {
	return len(f.Users) + len(f.Accommodations) + len(f.Rooms) + len(f.Bookings)
}

func loadFixtures(path string) (Fixtures, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, err
	}
	return parseFixtures(b)
}

// parseFixtures accepts either a mapping of collections or a bare list,
// which is read as accommodations.
func parseFixtures(b []byte) (Fixtures, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(b, &node); err != nil {
		return Fixtures{}, err
	}
	if len(node.Content) == 0 {
		return Fixtures{}, nil
	}

	var f Fixtures
	switch root := node.Content[0]; root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&f.Accommodations); err != nil {
			return Fixtures{}, err
		}
	case yaml.MappingNode:
		if err := root.Decode(&f); err != nil {
			return Fixtures{}, err
		}
	default:
		return Fixtures{}, fmt.Errorf("fixtures: expected a list or a mapping, got %s", root.Tag)
	}
	return f, nil
}

package metadata

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// itemFile is the on-disk YAML shape of an item description used by the
// CLI. Metadata entries use composite field keys so files stay close to
// the dotted names used in repository configuration.
type itemFile struct {
	Handle           string          `yaml:"handle"`
	OwningCollection containerFile   `yaml:"owning_collection"`
	Communities      []containerFile `yaml:"communities"`
	Metadata         []valueFile     `yaml:"metadata"`
}

type containerFile struct {
	Handle string `yaml:"handle"`
	Name   string `yaml:"name"`
}

type valueFile struct {
	Field    string `yaml:"field"`
	Value    string `yaml:"value"`
	Language string `yaml:"language,omitempty"`
}

// ReadItem parses an item description from YAML.
func ReadItem(r io.Reader) (*Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading item description: %w", err)
	}

	var f itemFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing item description: %w", err)
	}

	item := &Item{
		Handle: f.Handle,
		OwningCollection: Container{
			Handle: f.OwningCollection.Handle,
			Name:   f.OwningCollection.Name,
		},
	}
	for _, c := range f.Communities {
		item.Communities = append(item.Communities, Container{Handle: c.Handle, Name: c.Name})
	}

	for i, v := range f.Metadata {
		schema, element, qualifier, err := ParseFieldName(v.Field)
		if err != nil {
			return nil, fmt.Errorf("metadata entry %d: %w", i, err)
		}
		item.Values = append(item.Values, Tuple{
			Schema:    schema,
			Element:   element,
			Qualifier: qualifier,
			Language:  v.Language,
			Value:     v.Value,
		})
	}

	return item, nil
}

// LoadItem reads an item description from a file path.
func LoadItem(path string) (*Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening item file: %w", err)
	}
	defer f.Close()

	item, err := ReadItem(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return item, nil
}

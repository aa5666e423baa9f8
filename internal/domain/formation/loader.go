package formation

import (
	"fmt"
	"os"
	"strings"

	"github.com/okian/lineup/internal/domain/rating"
	"gopkg.in/yaml.v3"
)

// fileDocument is the on-disk shape of a custom formations file:
//
//	formations:
//	  - name: 3-5-2
//	    slots:
//	      - {slot: GK, role: GK, row: 23, col: 36}
type fileDocument struct {
	Formations []Schema `yaml:"formations"`
}

// ParseYAML decodes and validates formations from YAML.
func ParseYAML(data []byte) ([]Schema, error) {
	var doc fileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	for i := range doc.Formations {
		for j, sl := range doc.Formations[i].Slots {
			doc.Formations[i].Slots[j].Role = rating.Role(strings.ToUpper(strings.TrimSpace(string(sl.Role))))
		}
		if err := doc.Formations[i].Validate(); err != nil {
			return nil, err
		}
	}
	return doc.Formations, nil
}

// LoadFile registers every formation in the YAML file at path. Nothing is
// registered unless the whole file is valid. It returns the number loaded.
func (c *Catalog) LoadFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read formations file: %w", err)
	}
	schemas, err := ParseYAML(data)
	if err != nil {
		return 0, err
	}
	for _, s := range schemas {
		if err := c.Register(s); err != nil {
			return 0, err
		}
	}
	return len(schemas), nil
}

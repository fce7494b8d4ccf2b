package servicetype

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/movecrm/backoffice/internal/domain/model"
)

type fileEntry struct {
	ID    int64  `yaml:"id"`
	Label string `yaml:"label"`
}

type fileFormat struct {
	ServiceTypes []fileEntry `yaml:"service_types"`
}

// LoadFile reads a service enumeration from a YAML file. Used when the
// backend enumeration endpoint is unavailable at deploy time.
func LoadFile(path string) ([]model.ServiceType, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read service types file: %w", err)
	}

	var parsed fileFormat
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse service types file: %w", err)
	}
	if len(parsed.ServiceTypes) == 0 {
		return nil, fmt.Errorf("service types file %s lists no entries", path)
	}

	types := make([]model.ServiceType, 0, len(parsed.ServiceTypes))
	for _, e := range parsed.ServiceTypes {
		types = append(types, model.ServiceType{ID: e.ID, Label: e.Label})
	}
	return types, nil
}

package servicetype

import (
	"fmt"
	"sort"

	domainErrors "github.com/movecrm/backoffice/internal/domain/errors"
	"github.com/movecrm/backoffice/internal/domain/model"
)

// Codec translates between human-readable service labels and the numeric
// identifiers the backend schema uses. The mapping is configured from the
// backend enumeration; an unrecognized label or identifier is an explicit
// error, never a silently missing value.
type Codec struct {
	byID    map[int64]string
	byLabel map[string]int64
}

// NewCodec builds a codec from the service enumeration.
func NewCodec(types []model.ServiceType) (*Codec, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("service enumeration is empty")
	}

	codec := &Codec{
		byID:    make(map[int64]string, len(types)),
		byLabel: make(map[string]int64, len(types)),
	}
	for _, t := range types {
		if t.Label == "" {
			return nil, fmt.Errorf("service %d has empty label", t.ID)
		}
		if _, ok := codec.byID[t.ID]; ok {
			return nil, fmt.Errorf("duplicate service id %d", t.ID)
		}
		if _, ok := codec.byLabel[t.Label]; ok {
			return nil, fmt.Errorf("duplicate service label %q", t.Label)
		}
		codec.byID[t.ID] = t.Label
		codec.byLabel[t.Label] = t.ID
	}
	return codec, nil
}

// ToLabel resolves a numeric identifier to its label.
func (c *Codec) ToLabel(id int64) (string, error) {
	label, ok := c.byID[id]
	if !ok {
		return "", fmt.Errorf("service id %d: %w", id, domainErrors.ErrUnknownServiceType)
	}
	return label, nil
}

// ToID resolves a label to its numeric identifier.
func (c *Codec) ToID(label string) (int64, error) {
	id, ok := c.byLabel[label]
	if !ok {
		return 0, fmt.Errorf("service label %q: %w", label, domainErrors.ErrUnknownServiceType)
	}
	return id, nil
}

// Types returns the configured enumeration sorted by identifier.
func (c *Codec) Types() []model.ServiceType {
	types := make([]model.ServiceType, 0, len(c.byID))
	for id, label := range c.byID {
		types = append(types, model.ServiceType{ID: id, Label: label})
	}
	sort.Slice(types, func(i, j int) bool { return types[i].ID < types[j].ID })
	return types
}

package editor

import (
	"fmt"
	"time"

	domainErrors "github.com/movecrm/backoffice/internal/domain/errors"
	"github.com/movecrm/backoffice/internal/domain/model"
)

// Session is the transient editing context for a single order. Begin seeds
// the draft as a full copy of the record so unedited fields are still
// present when the whole-record replace is transmitted.
type Session struct {
	active bool
	target int64
	draft  model.OrderRecord
}

// Begin opens the session targeting the given record.
func (s *Session) Begin(record model.OrderRecord) {
	s.active = true
	s.target = record.OrderID
	s.draft = record
}

// SetField overwrites one draft field. Values arrive as decoded JSON, so
// numbers are float64 and everything else is a string.
func (s *Session) SetField(field string, value any) error {
	if !s.active {
		return domainErrors.ErrNoActiveEdit
	}

	switch field {
	case "note":
		return s.setString(&s.draft.Note, value)
	case "serviceType":
		return s.setString(&s.draft.ServiceType, value)
	case "fromAddress":
		return s.setString(&s.draft.FromAddress, value)
	case "toAddress":
		return s.setString(&s.draft.ToAddress, value)
	case "scheduleDate":
		text, ok := value.(string)
		if !ok {
			return fmt.Errorf("scheduleDate must be a string: %w", domainErrors.ErrInvalidFieldValue)
		}
		if _, err := time.Parse(time.DateOnly, text); err != nil {
			return fmt.Errorf("scheduleDate %q: %w", text, domainErrors.ErrInvalidFieldValue)
		}
		s.draft.ScheduleDate = text
		return nil
	case "price":
		number, ok := value.(float64)
		if !ok {
			return fmt.Errorf("price must be a number: %w", domainErrors.ErrInvalidFieldValue)
		}
		if number < 0 {
			return fmt.Errorf("price must be non-negative: %w", domainErrors.ErrInvalidFieldValue)
		}
		s.draft.Price = number
		return nil
	case "orderId", "customerName", "consultantName":
		return fmt.Errorf("%s: %w", field, domainErrors.ErrFieldNotEditable)
	default:
		return fmt.Errorf("%s: %w", field, domainErrors.ErrUnknownField)
	}
}

func (s *Session) setString(dst *string, value any) error {
	text, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string value: %w", domainErrors.ErrInvalidFieldValue)
	}
	*dst = text
	return nil
}

// Discard clears the session without side effects.
func (s *Session) Discard() {
	*s = Session{}
}

// IsEditing reports whether the session targets the given order.
func (s *Session) IsEditing(orderID int64) bool {
	return s.active && s.target == orderID
}

// Active reports whether a session is open.
func (s *Session) Active() bool {
	return s.active
}

// Draft returns the current pending state of the edited record.
func (s *Session) Draft() (model.OrderRecord, bool) {
	return s.draft, s.active
}

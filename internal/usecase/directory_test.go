package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/movecrm/backoffice/internal/domain/errors"
	"github.com/movecrm/backoffice/internal/domain/model"
)

func TestDirectoryListings(t *testing.T) {
	store := &clientStub{
		CustomersFn: func(ctx context.Context) ([]model.Customer, error) {
			return []model.Customer{{CustomerID: 1, CustomerName: "Ola Nordmann"}}, nil
		},
		ConsultantsFn: func(ctx context.Context) ([]model.Consultant, error) {
			return []model.Consultant{{ConsultantID: 2, ConsultantName: "Kari Hansen"}}, nil
		},
	}
	uc := NewDirectoryUseCase(store, testCodec(t))

	customers, err := uc.Customers(context.Background())
	if err != nil || len(customers) != 1 || customers[0].CustomerName != "Ola Nordmann" {
		t.Fatalf("unexpected customers: %+v, err=%v", customers, err)
	}

	consultants, err := uc.Consultants(context.Background())
	if err != nil || len(consultants) != 1 || consultants[0].ConsultantName != "Kari Hansen" {
		t.Fatalf("unexpected consultants: %+v, err=%v", consultants, err)
	}
}

func TestSearchCustomersRejectsBlankTerm(t *testing.T) {
	uc := NewDirectoryUseCase(&clientStub{}, testCodec(t))

	for _, term := range []string{"", "   "} {
		if _, err := uc.SearchCustomers(context.Background(), term); !errors.Is(err, domainErrors.ErrMissingField) {
			t.Fatalf("expected ErrMissingField for %q, got %v", term, err)
		}
	}
}

func TestSearchCustomersPassesTermThrough(t *testing.T) {
	var gotName string
	store := &clientStub{
		SearchCustomersFn: func(ctx context.Context, name string) ([]model.Customer, error) {
			gotName = name
			return []model.Customer{{CustomerID: 4, CustomerName: name}}, nil
		},
	}
	uc := NewDirectoryUseCase(store, testCodec(t))

	got, err := uc.SearchCustomers(context.Background(), "  Berg ")
	if err != nil {
		t.Fatalf("search customers: %v", err)
	}
	if gotName != "Berg" {
		t.Fatalf("expected trimmed term, got %q", gotName)
	}
	if len(got) != 1 || got[0].CustomerID != 4 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestDirectoryServiceTypesFromCodec(t *testing.T) {
	uc := NewDirectoryUseCase(&clientStub{}, testCodec(t))

	types := uc.ServiceTypes()
	if len(types) != 3 {
		t.Fatalf("expected 3 service types, got %d", len(types))
	}
	if types[0].ID != 1 || types[2].Label != "CLEANING_DELUXE" {
		t.Fatalf("unexpected enumeration: %+v", types)
	}
}

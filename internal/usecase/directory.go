package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/movecrm/backoffice/internal/adapter/orderstore"
	domainErrors "github.com/movecrm/backoffice/internal/domain/errors"
	"github.com/movecrm/backoffice/internal/domain/model"
	"github.com/movecrm/backoffice/internal/servicetype"
)

// DirectoryUseCase exposes the reference listings backing the order
// forms.
type DirectoryUseCase struct {
	store orderstore.Client
	codec *servicetype.Codec
}

// NewDirectoryUseCase constructs DirectoryUseCase.
func NewDirectoryUseCase(store orderstore.Client, codec *servicetype.Codec) *DirectoryUseCase {
	return &DirectoryUseCase{store: store, codec: codec}
}

// Customers returns the customer directory.
func (u *DirectoryUseCase) Customers(ctx context.Context) ([]model.Customer, error) {
	return u.store.Customers(ctx)
}

// SearchCustomers queries the customer register by name.
func (u *DirectoryUseCase) SearchCustomers(ctx context.Context, name string) ([]model.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name", domainErrors.ErrMissingField)
	}
	return u.store.SearchCustomers(ctx, name)
}

// Consultants returns the consultant directory.
func (u *DirectoryUseCase) Consultants(ctx context.Context) ([]model.Consultant, error) {
	return u.store.Consultants(ctx)
}

// ServiceTypes returns the configured service enumeration.
func (u *DirectoryUseCase) ServiceTypes() []model.ServiceType {
	return u.codec.Types()
}

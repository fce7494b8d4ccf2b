package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/movecrm/backoffice/internal/adapter/orderstore"
	domainErrors "github.com/movecrm/backoffice/internal/domain/errors"
	"github.com/movecrm/backoffice/internal/server/http/dto"
)

// statusForError maps domain sentinels to HTTP statuses. Workflow
// conflicts are 409, validation failures 422, upstream failures 502.
func statusForError(err error) int {
	var statusErr orderstore.StatusError
	if errors.As(err, &statusErr) {
		return http.StatusBadGateway
	}

	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrUnknownServiceType),
		errors.Is(err, domainErrors.ErrInvalidFieldValue),
		errors.Is(err, domainErrors.ErrMissingField),
		errors.Is(err, domainErrors.ErrFieldNotEditable),
		errors.Is(err, domainErrors.ErrUnknownField):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainErrors.ErrEditInProgress),
		errors.Is(err, domainErrors.ErrNoActiveEdit),
		errors.Is(err, domainErrors.ErrActionInFlight),
		errors.Is(err, domainErrors.ErrConfirmationPending),
		errors.Is(err, domainErrors.ErrNoPendingAction):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, err error) {
	c.JSON(statusForError(err), dto.ErrorResponse{Error: err.Error()})
}

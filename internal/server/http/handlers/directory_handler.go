package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/movecrm/backoffice/internal/server/http/dto"
)

// DirectoryHandler serves the customer, consultant and service listings.
type DirectoryHandler struct {
	facade DirectoryFacade
}

// NewDirectoryHandler constructs DirectoryHandler.
func NewDirectoryHandler(facade DirectoryFacade) *DirectoryHandler {
	return &DirectoryHandler{facade: facade}
}

// Customers handles GET /api/customers.
func (h *DirectoryHandler) Customers(c *gin.Context) {
	customers, err := h.facade.Customers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCustomers(customers))
}

// SearchCustomers handles GET /api/customers/search?name=.
func (h *DirectoryHandler) SearchCustomers(c *gin.Context) {
	customers, err := h.facade.SearchCustomers(c.Request.Context(), c.Query("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCustomers(customers))
}

// Consultants handles GET /api/consultants.
func (h *DirectoryHandler) Consultants(c *gin.Context) {
	consultants, err := h.facade.Consultants(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromConsultants(consultants))
}

// ServiceTypes handles GET /api/service-types.
func (h *DirectoryHandler) ServiceTypes(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FromServiceTypes(h.facade.ServiceTypes()))
}

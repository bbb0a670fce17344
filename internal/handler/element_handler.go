package handler

import (
	"fmt"
	"net/http"

	"github.com/Darshan-Yash/Periodic-table/internal/catalog"
	"github.com/Darshan-Yash/Periodic-table/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// ElementHandler serves the static periodic-table data.
type ElementHandler struct {
	catalog *catalog.Catalog
}

func NewElementHandler(cat *catalog.Catalog) *ElementHandler {
	return &ElementHandler{catalog: cat}
}

// List handles GET /api/elements.
func (h *ElementHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.All())
}

// Get handles GET /api/elements/:identifier. The identifier is matched
// case-insensitively against symbols first, then names.
func (h *ElementHandler) Get(c *gin.Context) {
	identifier := c.Param("identifier")

	el, ok := h.catalog.Lookup(identifier)
	if !ok {
		c.JSON(http.StatusNotFound, httpdto.NewErrorResponse(fmt.Sprintf("Element '%s' not found", identifier)))
		return
	}

	c.JSON(http.StatusOK, el)
}

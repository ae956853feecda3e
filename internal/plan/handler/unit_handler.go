package handler

import (
	"github.com/gin-gonic/gin"
)

// UnitHandler serves the read-only unit directory used to pre-fill the
// unit-leader field.
type UnitHandler struct {
	units UnitDirectory
}

func NewUnitHandler(units UnitDirectory) *UnitHandler {
	return &UnitHandler{units: units}
}

// List handles GET /api/v1/units.
func (h *UnitHandler) List(c *gin.Context) {
	entries, err := h.units.List(c.Request.Context())
	if err != nil {
		InternalError(c, "Không thể tải danh sách đơn vị.")
		return
	}
	Success(c, gin.H{"items": entries})
}

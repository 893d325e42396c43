package audit

import (
	"net/http"

	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetAll lists audit entries newest first.
func (h *Handler) GetAll(c *gin.Context) {
	resp := h.service.List(c.Request.Context())
	meta := response.ListMeta{Total: len(resp)}
	response.Success(c, http.StatusOK, resp, &meta)
}

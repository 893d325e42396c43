package report

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

func (h *Handler) PayrollSummary(c *gin.Context) {
	resp := h.service.PayrollSummary(
		c.Request.Context(),
		c.Query("period"),
		c.Query("department"),
	)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) EmployeeReport(c *gin.Context) {
	resp := h.service.EmployeeReport(c.Request.Context(), c.Query("department"))
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AllowanceReport(c *gin.Context) {
	resp := h.service.AllowanceReport(c.Request.Context())
	response.Success(c, http.StatusOK, resp, nil)
}

package report

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	reports := r.Group("/reports")
	{
		reports.GET("/payroll-summary", handler.PayrollSummary)
		reports.GET("/employees", handler.EmployeeReport)
		reports.GET("/allowances", handler.AllowanceReport)
	}
}

package app

import (
	"go-payroll/internal/allowance"
	"go-payroll/internal/allowancetype"
	"go-payroll/internal/audit"
	"go-payroll/internal/department"
	"go-payroll/internal/employee"
	"go-payroll/internal/middleware"
	"go-payroll/internal/payslip"
	"go-payroll/internal/remote"
	"go-payroll/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
)

func registerModules(
	router *gin.Engine,
	cols collections,
	client *remote.Client,
	rdb *redis.Client,
	kafkaWriter *kafkago.Writer,
	actor string,
) audit.Recorder {
	// --- Remotes ---
	auditRemote := audit.NewRemote(client)
	departmentRemote := department.NewRemote(client)
	allowanceTypeRemote := allowancetype.NewRemote(client)
	employeeRemote := employee.NewRemote(client)
	payslipRemote := payslip.NewRemote(client)
	allowanceRemote := allowance.NewRemote(client)

	// --- Services ---
	auditService := audit.NewService(cols.auditLogs, auditRemote)
	departmentService := department.NewService(departmentRemote, rdb)
	allowanceTypeService := allowancetype.NewService(
		cols.allowanceTypes, allowanceTypeRemote, auditService, actor)

	var publisher employee.EventPublisher
	if kafkaWriter != nil {
		publisher = employee.NewKafkaEventPublisher(kafkaWriter)
	}
	employeeService := employee.NewService(
		cols.employees, employeeRemote, departmentService, auditService, publisher, actor)

	payslipService := payslip.NewService(
		cols.payslips, cols.employees, payslipRemote, auditService, actor)
	allowanceService := allowance.NewService(
		cols.allowances, cols.employees, cols.allowanceTypes,
		allowanceRemote, auditService, actor)
	reportService := report.NewService(cols.employees, cols.payslips, cols.allowances)

	// --- Routes ---
	router.Use(middleware.RequestID())

	v1 := router.Group("/api/v1")
	allowancetype.RegisterRoutes(v1, allowancetype.NewHandler(allowanceTypeService))
	employee.RegisterRoutes(v1, employee.NewHandler(employeeService))
	if rdb != nil {
		payslip.RegisterRoutes(v1, payslip.NewHandlerWithRedis(payslipService, rdb), rdb)
	} else {
		payslip.RegisterRoutes(v1, payslip.NewHandler(payslipService))
	}
	allowance.RegisterRoutes(v1, allowance.NewHandler(allowanceService))
	department.RegisterRoutes(v1, department.NewHandler(departmentService))
	audit.RegisterRoutes(v1, audit.NewHandler(auditService))
	report.RegisterRoutes(v1, report.NewHandler(reportService))

	return auditService
}

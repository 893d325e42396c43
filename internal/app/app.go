package app

import (
	"context"
	"os"
	"strconv"
	"time"

	"go-payroll/internal/allowance"
	"go-payroll/internal/allowancetype"
	"go-payroll/internal/audit"
	"go-payroll/internal/employee"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payslip"
	"go-payroll/internal/remote"
	"go-payroll/internal/shared/connection"
	"go-payroll/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultRemoteTimeout = 10 * time.Second

type Config struct {
	Port          string
	RemoteBaseURL string
	RemoteTimeout time.Duration
	RedisAddr     string
	KafkaBrokers  string
	Actor         string
}

func LoadConfig() Config {
	cfg := Config{
		Port:          os.Getenv("PORT"),
		RemoteBaseURL: os.Getenv("PAYROLL_API_BASE_URL"),
		RemoteTimeout: defaultRemoteTimeout,
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		KafkaBrokers:  os.Getenv("KAFKA_BROKERS"),
		Actor:         os.Getenv("AUDIT_ACTOR"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.RemoteBaseURL == "" {
		cfg.RemoteBaseURL = "http://localhost:8000/api"
	}
	if cfg.Actor == "" {
		cfg.Actor = "Admin"
	}
	if raw := os.Getenv("PAYROLL_API_TIMEOUT"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cfg.RemoteTimeout = time.Duration(secs) * time.Second
		}
	}
	return cfg
}

// collections groups the five entity collections sharing one store lock.
type collections struct {
	allowanceTypes *store.Collection[allowancetype.AllowanceType]
	employees      *store.Collection[employee.Employee]
	payslips       *store.Collection[payslip.Payslip]
	allowances     *store.Collection[allowance.Allowance]
	auditLogs      *store.Collection[audit.AuditLog]
}

func newCollections(st *store.Store) collections {
	return collections{
		allowanceTypes: store.NewCollection(st,
			func(at allowancetype.AllowanceType) int { return at.ID },
			func(at *allowancetype.AllowanceType, id int) { at.ID = id },
		),
		employees: store.NewCollection(st,
			func(e employee.Employee) int { return e.ID },
			func(e *employee.Employee, id int) { e.ID = id },
		),
		payslips: store.NewCollection(st,
			func(p payslip.Payslip) int { return p.ID },
			func(p *payslip.Payslip, id int) { p.ID = id },
		),
		allowances: store.NewCollection(st,
			func(a allowance.Allowance) int { return a.ID },
			func(a *allowance.Allowance, id int) { a.ID = id },
		),
		auditLogs: store.NewCollection(st,
			func(l audit.AuditLog) int { return l.ID },
			func(l *audit.AuditLog, id int) { l.ID = id },
		),
	}
}

// BuildApp wires infrastructure, hydrates the store from the remote and
// registers all routes. The returned recorder is handed to the server
// bootstrap so shutdown lands in the audit trail.
func BuildApp(router *gin.Engine, cfg Config) (audit.Recorder, error) {
	logger := zap.L().Named("app")

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		var err error
		redisClient, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			return nil, err
		}
		logger.Info("redis connection established", zap.String("addr", cfg.RedisAddr))
	}

	kafkaWriter := kafka.NewWriter(cfg.KafkaBrokers)
	if kafkaWriter != nil {
		logger.Info("kafka writer configured", zap.String("brokers", cfg.KafkaBrokers))
	}

	client := remote.NewClient(cfg.RemoteBaseURL, cfg.RemoteTimeout)

	st := store.New()
	cols := newCollections(st)

	recorder := registerModules(router, cols, client, redisClient, kafkaWriter, cfg.Actor)

	hydrate(context.Background(), cols, client, logger)

	return recorder, nil
}

// hydrate seeds the collections from the remote. Each fetch is
// best-effort; a failed one leaves its collection empty and the server
// starts anyway.
func hydrate(ctx context.Context, cols collections, client *remote.Client, logger *zap.Logger) {
	if types, err := allowancetype.NewRemote(client).List(ctx); err != nil {
		logger.Warn("hydrate allowance types failed", zap.Error(err))
	} else {
		cols.allowanceTypes.SetAll(types)
	}

	if employees, err := employee.NewRemote(client).List(ctx); err != nil {
		logger.Warn("hydrate employees failed", zap.Error(err))
	} else {
		cols.employees.SetAll(employees)
	}

	if payslips, err := payslip.NewRemote(client).List(ctx); err != nil {
		logger.Warn("hydrate payslips failed", zap.Error(err))
	} else {
		// The wire shape carries employee ids only; the name snapshot is
		// reconstructed from whoever is present right now.
		for i := range payslips {
			if e, ok := cols.employees.Get(payslips[i].EmployeeID); ok {
				payslips[i].EmployeeName = e.FullName()
			}
		}
		cols.payslips.SetAll(payslips)
	}

	if allowances, err := allowance.NewRemote(client).List(ctx); err != nil {
		logger.Warn("hydrate allowances failed", zap.Error(err))
	} else {
		for i := range allowances {
			if at, ok := cols.allowanceTypes.Get(allowances[i].AllowanceTypeID); ok {
				allowances[i].AllowanceTypeName = at.Name
			}
		}
		cols.allowances.SetAll(allowances)
	}

	logger.Info("store hydrated",
		zap.Int("allowance_types", cols.allowanceTypes.Len()),
		zap.Int("employees", cols.employees.Len()),
		zap.Int("payslips", cols.payslips.Len()),
		zap.Int("allowances", cols.allowances.Len()),
	)
}

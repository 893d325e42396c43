package payslip

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	payslips := r.Group("/payslips")
	{
		payslips.GET("", handler.GetAll)
		payslips.GET("/:id", handler.GetById)
		if redisClient != nil {
			payslips.POST("", middleware.Idempotency(redisClient), handler.Create)
		} else {
			payslips.POST("", handler.Create)
		}
		payslips.PATCH("/:id", handler.Update)
		payslips.DELETE("/:id", handler.Delete)
	}
}

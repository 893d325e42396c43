package allowance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	allowances := r.Group("/allowances")
	{
		allowances.GET("", handler.GetAll)
		allowances.GET("/:id", handler.GetById)
		allowances.POST("", handler.Create)
		allowances.PATCH("/:id", handler.Update)
		allowances.DELETE("/:id", handler.Delete)
	}
}

package allowancetype

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	types := r.Group("/allowance-types")
	{
		types.GET("", handler.GetAll)
		types.GET("/:id", handler.GetById)
		types.POST("", handler.Create)
		types.PATCH("/:id", handler.Update)
		types.DELETE("/:id", handler.Delete)
	}
}

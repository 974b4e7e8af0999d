package library

import (
	"folioBackend/auth"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(route *gin.Engine, handler Handler, authManager auth.AuthManager) {
	routes := route.Group("/libraries", authManager.AuthenticatorMiddleware())
	{
		routes.GET("", handler.Get)
		routes.GET("/:libraryId", handler.GetByUuid)
		routes.POST("", handler.Create)
		routes.PUT("/:libraryId", handler.Update)
		routes.DELETE("/:libraryId", handler.Delete)
		routes.DELETE("/:libraryId/literatures/:literatureId", handler.RemoveLiterature)
	}
}

package literature

import (
	"folioBackend/auth"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(route *gin.Engine, handler Handler, authManager auth.AuthManager) {
	// Directory and detail are readable by guests; the detail payload only
	// personalizes when a session is present.
	public := route.Group("/literatures", authManager.OptionalAuthenticatorMiddleware())
	{
		public.GET("", handler.Get)
		public.GET("/:literatureId", handler.GetByUuid)
	}

	authed := route.Group("/literatures", authManager.AuthenticatorMiddleware())
	{
		authed.POST("", handler.Create)
		authed.PUT("/:literatureId", handler.Update)
		authed.DELETE("/:literatureId", handler.Delete)
		authed.POST("/:literatureId/add-library/:libraryId", handler.AddToLibrary)
		authed.POST("/:literatureId/remove-library/:libraryId", handler.RemoveFromLibrary)
	}
}

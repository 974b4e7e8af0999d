package user

import (
	"folioBackend/auth"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(route *gin.Engine, handler Handler, authManager auth.AuthManager) {
	routes := route.Group("/users")
	{
		routes.POST("/register", handler.Register)
		routes.POST("/login", handler.Login)
		routes.POST("/logout", handler.Logout)
		routes.GET("/login/openid", handler.LoginOpenId)
		routes.GET("/login/success", handler.LoginOpenIdSuccess)
		routes.GET("/login/refresh", handler.RefreshToken)
		routes.GET("/verify", authManager.AuthenticatorMiddleware(), handler.Verify)
	}
}

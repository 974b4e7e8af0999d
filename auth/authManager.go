package auth

import (
	"context"
	"crypto/rand"
	"os"
	"slices"
	"time"

	"folioBackend/config"
	"folioBackend/utils"

	"github.com/charmbracelet/log"
	"github.com/coreos/go-oidc"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

type (
	AuthManager interface {
		Init(config *config.FolioConfig)
		CreateAuthToken(userId string) (string, error)
		CreateAccessToken(authUser AuthenticatedUser) (string, error)
		AuthenticateUser(tokenString string) (*AuthenticatedUser, error)
		RefreshAccessToken(authToken string) (string, error)
		GetAuthCodeURL(stateToken string) (string, error)
		AuthenticateWithCode(authCode string, userSubToIdMapper func(userSub string, userName string) (string, error)) (*AuthenticatedUser, error)
		AuthenticatorMiddleware() gin.HandlerFunc
		OptionalAuthenticatorMiddleware() gin.HandlerFunc
	}

	authManager struct {
		config        *config.FolioConfig
		oauth2Config  oauth2.Config
		provider      *oidc.Provider
		oidcSecret    string
		jwtSecret     []byte
		adminGroups   []string
		isOpenIdReady bool
	}

	// AuthenticatedUser is the acting principal carried through every
	// request. It is derived from the access token claims and holds no
	// database state of its own.
	AuthenticatedUser struct {
		// The UUID of the user
		UserId   string
		Username string
		IsAdmin  bool
	}
)

const authUserKey = "authUser"

func CreateAuthManager(config *config.FolioConfig) AuthManager {
	authManager := &authManager{
		config:      config,
		adminGroups: config.Auth.OpenIdAdminGroups,
		jwtSecret:   ([]byte)(rand.Text()),
		oidcSecret:  os.Getenv("FOLIO_OIDC_SECRET"),
	}

	authManager.Init(config)

	return authManager
}

func (m *authManager) Init(config *config.FolioConfig) {
	if !config.Auth.EnableOpenId {
		return
	}

	provider, err := oidc.NewProvider(context.TODO(), config.Auth.OpenIdIssuer)
	if err != nil {
		log.Fatalf("Failed to connect to OpenID provider: %s", err.Error())
		os.Exit(1)
	}

	m.provider = provider
	m.oauth2Config = oauth2.Config{
		ClientID:     config.Auth.OpenIdClientId,
		ClientSecret: m.oidcSecret,
		RedirectURL:  config.Auth.OpenIdRedirectHost + "/users/login/success",
		Endpoint:     provider.Endpoint(),
		Scopes:       []string{oidc.ScopeOpenID},
	}
	m.isOpenIdReady = true
}

// AuthenticatorMiddleware rejects requests without a valid access token.
// Used for every route that mutates data or reads user-owned libraries.
func (m *authManager) AuthenticatorMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		accessToken, err := ctx.Cookie("accessToken")
		if err != nil {
			ctx.JSON(utils.CreateErrorResponse(utils.ErrorUnauthorized))
			ctx.Abort()
			return
		}

		if user, err := m.AuthenticateUser(accessToken); err != nil {
			ctx.JSON(utils.CreateErrorResponse(utils.ErrorTokenInvalid))
			ctx.Abort()
			return
		} else {
			ctx.Set(authUserKey, *user)
			ctx.Next()
		}
	}
}

// OptionalAuthenticatorMiddleware attaches the session user when a valid
// token is present but lets guests through. The literature directory and
// detail views are readable by anyone; only the library partitions in the
// detail payload depend on who is asking.
func (m *authManager) OptionalAuthenticatorMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if accessToken, err := ctx.Cookie("accessToken"); err == nil {
			if user, err := m.AuthenticateUser(accessToken); err == nil {
				ctx.Set(authUserKey, *user)
			}
		}
		ctx.Next()
	}
}

// UserFromContext returns the session user set by one of the authenticator
// middlewares, or nil for guest requests.
func UserFromContext(ctx *gin.Context) *AuthenticatedUser {
	if value, ok := ctx.Get(authUserKey); ok {
		if authUser, ok := value.(AuthenticatedUser); ok {
			return &authUser
		}
	}

	return nil
}

func (m *authManager) RefreshAccessToken(authToken string) (string, error) {
	if authUser, err := m.AuthenticateUser(authToken); err != nil {
		return "", err
	} else if newAccessToken, err := m.CreateAccessToken(*authUser); err != nil {
		return "", err
	} else {
		return newAccessToken, nil
	}
}

func (m *authManager) GetAuthCodeURL(stateToken string) (string, error) {
	if !m.isOpenIdReady {
		return "", utils.ErrorOpenIDAuthDisabled
	}

	return m.oauth2Config.AuthCodeURL(stateToken), nil
}

func (m *authManager) AuthenticateWithCode(authCode string, userSubToIdMapper func(userSub string, userName string) (string, error)) (*AuthenticatedUser, error) {
	if !m.isOpenIdReady {
		return nil, utils.ErrorOpenIDAuthDisabled
	}

	ctx := context.TODO()
	token, err := m.oauth2Config.Exchange(ctx, authCode)
	if err != nil {
		log.Errorf("[AUTH] OAuth token exchange failed: %s", err.Error())
		return nil, utils.ErrorOpenIDError
	}

	info, err := m.provider.UserInfo(ctx, m.oauth2Config.TokenSource(ctx, token))
	if err != nil {
		log.Errorf("[AUTH] Failed to get oauth userinfo: %s", err.Error())
		return nil, utils.ErrorOpenIDError
	}

	var claims struct {
		Sub    string   `json:"sub"`
		Groups []string `json:"groups"`
		Name   string   `json:"preferred_username"`
	}

	if err := info.Claims(&claims); err != nil {
		log.Warnf("[AUTH] Failed to parse claims from userinfo: %s", err.Error())
		return nil, utils.ErrorOpenIDError
	}

	isAdmin := false
	for _, group := range m.adminGroups {
		if slices.Contains(claims.Groups, group) {
			isAdmin = true
			break
		}
	}

	userId, err := userSubToIdMapper(claims.Sub, claims.Name)
	if err != nil {
		return nil, err
	}

	return &AuthenticatedUser{
		UserId:   userId,
		Username: claims.Name,
		IsAdmin:  isAdmin,
	}, nil
}

func (m *authManager) AuthenticateUser(tokenString string) (*AuthenticatedUser, error) {
	token, err := jwt.Parse(tokenString, m.tokenParser)
	if err != nil {
		return nil, utils.ErrorTokenInvalid
	}

	tokenClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, utils.ErrorTokenInvalid
	}

	userId, ok := tokenClaims["id"].(string)
	if !ok {
		return nil, utils.ErrorTokenInvalid
	}

	username, _ := tokenClaims["username"].(string)
	isAdmin, _ := tokenClaims["isAdmin"].(bool)

	return &AuthenticatedUser{
		UserId:   userId,
		Username: username,
		IsAdmin:  isAdmin,
	}, nil
}

func (m *authManager) CreateAuthToken(userId string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userId,
		"nbf": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour * 720).Unix(),
	})

	return token.SignedString(m.jwtSecret)
}

func (m *authManager) CreateAccessToken(authUser AuthenticatedUser) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       authUser.UserId,
		"username": authUser.Username,
		"isAdmin":  authUser.IsAdmin,
		"nbf":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour * 12).Unix(),
	})

	return token.SignedString(m.jwtSecret)
}

func (m *authManager) tokenParser(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, utils.ErrorTokenInvalid
	}

	return m.jwtSecret, nil
}

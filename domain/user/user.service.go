package user

import (
	"context"

	"folioBackend/auth"
	"folioBackend/utils"

	"github.com/gin-gonic/gin"
)

type (
	Service interface {
		Register(ctx context.Context, req CredentialsIn) (string, string, error)
		LoginNative(ctx context.Context, req CredentialsIn) (string, string, error)
		Verify(ctx context.Context, authUser auth.AuthenticatedUser) (UserOut, error)
		RefreshAccessToken(ctx context.Context, authToken string) (string, error)
		GetAuthCodeURL(stateToken string) (string, error)
		AuthenticateWithCode(ctx *gin.Context, authCode string) (string, string, error)
	}

	userService struct {
		userRepo    Repository
		authManager auth.AuthManager
	}
)

func CreateService(userRepo Repository, authManager auth.AuthManager) Service {
	return &userService{
		userRepo:    userRepo,
		authManager: authManager,
	}
}

func (s *userService) Register(ctx context.Context, req CredentialsIn) (string, string, error) {
	if _, exists, err := s.userRepo.GetByUsername(ctx, req.Username); err != nil {
		return "", "", err
	} else if exists {
		return "", "", utils.ErrorUsernameTaken
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", "", err
	}

	newUser := &User{
		UUID:         utils.GenerateUuid(),
		Username:     req.Username,
		PasswordHash: passwordHash,
	}
	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return "", "", err
	}

	return s.issueTokens(newUser)
}

func (s *userService) LoginNative(ctx context.Context, req CredentialsIn) (string, string, error) {
	existingUser, exists, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return "", "", err
	}
	if !exists {
		return "", "", utils.ErrorInvalidCredentials
	}

	if err := auth.VerifyPassword(existingUser.PasswordHash, req.Password); err != nil {
		return "", "", err
	}

	return s.issueTokens(existingUser)
}

func (s *userService) Verify(ctx context.Context, authUser auth.AuthenticatedUser) (UserOut, error) {
	existingUser, err := s.userRepo.GetByUuid(ctx, authUser.UserId)
	if err != nil {
		return UserOut{}, err
	}

	return UserOut{
		ID:       existingUser.UUID,
		Username: existingUser.Username,
	}, nil
}

func (s *userService) RefreshAccessToken(ctx context.Context, authToken string) (string, error) {
	authUser, err := s.authManager.AuthenticateUser(authToken)
	if err != nil {
		return "", err
	}

	existingUser, err := s.userRepo.GetByUuid(ctx, authUser.UserId)
	if err != nil {
		return "", utils.ErrorTokenInvalid
	}

	return s.authManager.CreateAccessToken(auth.AuthenticatedUser{
		UserId:   existingUser.UUID,
		Username: existingUser.Username,
		IsAdmin:  authUser.IsAdmin,
	})
}

func (s *userService) GetAuthCodeURL(stateToken string) (string, error) {
	return s.authManager.GetAuthCodeURL(stateToken)
}

func (s *userService) AuthenticateWithCode(ctx *gin.Context, authCode string) (string, string, error) {
	authUser, err := s.authManager.AuthenticateWithCode(authCode, func(userSub string, userName string) (string, error) {
		existingUser, exists, err := s.userRepo.GetBySub(ctx, userSub)
		if err != nil {
			return "", err
		}

		if !exists {
			// Register federated users on first login
			existingUser = &User{
				UUID:     utils.GenerateUuid(),
				Username: userName,
				Sub:      userSub,
			}
			return existingUser.UUID, s.userRepo.Create(ctx, existingUser)
		}

		// Keep the username aligned with the provider in case it changed
		existingUser.Username = userName
		return existingUser.UUID, s.userRepo.Update(ctx, existingUser)
	})
	if err != nil {
		return "", "", err
	}

	if authToken, err := s.authManager.CreateAuthToken(authUser.UserId); err != nil {
		return "", "", err
	} else if accessToken, err := s.authManager.CreateAccessToken(*authUser); err != nil {
		return "", "", err
	} else {
		return authToken, accessToken, nil
	}
}

func (s *userService) issueTokens(forUser *User) (string, string, error) {
	authUser := auth.AuthenticatedUser{
		UserId:   forUser.UUID,
		Username: forUser.Username,
	}

	if authToken, err := s.authManager.CreateAuthToken(forUser.UUID); err != nil {
		return "", "", err
	} else if accessToken, err := s.authManager.CreateAccessToken(authUser); err != nil {
		return "", "", err
	} else {
		return authToken, accessToken, nil
	}
}

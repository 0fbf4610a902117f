package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/apierror"
)

type UserRepository interface {
	FindActiveByID(id int64) (*entity.User, error)
}

type AuthMiddlewareConfig struct {
	UserRepo UserRepository
}

// NewAuthMiddleware resolves the bearer of the Token header to an
// active user and stashes it on the request context.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, apierr := resolveUser(cfg.UserRepo, c)
			if apierr != nil {
				return c.JSON(apierr.Code(), apierr)
			}

			c.Set("user", user)
			return next(c)
		}
	}
}

// NewAdminMiddleware is the auth gate for admin-only routes. Normal
// users get a 401 even with a valid token.
func NewAdminMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, apierr := resolveUser(cfg.UserRepo, c)
			if apierr != nil {
				return c.JSON(apierr.Code(), apierr)
			}

			if !user.IsAdmin() {
				return c.JSON(http.StatusUnauthorized, apierror.NoPermissionError)
			}

			c.Set("user", user)
			return next(c)
		}
	}
}

func resolveUser(repo UserRepository, c echo.Context) (*entity.User, apierror.ErrorResponse) {
	tokenData, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		if errors.Is(err, utils.ErrNoToken) {
			return nil, apierror.NoTokenError
		}
		return nil, apierror.InvalidTokenError
	}

	user, err := repo.FindActiveByID(tokenData.UserID)
	if err != nil {
		return nil, apierror.InternalServerError
	}

	if user == nil {
		// Token outlived the account.
		return nil, apierror.InvalidTokenError
	}
	return user, nil
}

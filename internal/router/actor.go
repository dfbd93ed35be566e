package router

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"resourcehub/internal/auth"
	"resourcehub/internal/errors"
	"resourcehub/internal/handler"
	"resourcehub/internal/model"
	"resourcehub/internal/repository"
)

// ActorLoader resolves the bearer token to a full user record so handlers
// and services receive the actor explicitly instead of reading ambient
// claims.
type ActorLoader struct {
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	userRepo   repository.UserRepository
}

// NewActorLoader builds an ActorLoader.
func NewActorLoader(jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, userRepo repository.UserRepository) *ActorLoader {
	return &ActorLoader{
		jwtService: jwtService,
		tokenStore: tokenStore,
		userRepo:   userRepo,
	}
}

// Required returns middleware that rejects requests without a valid access
// token bound to an active, non-blacklisted user.
func (l *ActorLoader) Required() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := l.resolve(c)
			if err != nil {
				return err
			}
			c.Set(handler.ActorContextKey, actor)
			return next(c)
		}
	}
}

// Optional returns middleware that loads the actor when a valid token is
// present and proceeds unauthenticated otherwise.
func (l *ActorLoader) Optional() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if actor, err := l.resolve(c); err == nil {
				c.Set(handler.ActorContextKey, actor)
			}
			return next(c)
		}
	}
}

func (l *ActorLoader) resolve(c echo.Context) (*model.User, error) {
	raw := bearerFromHeader(c)
	if raw == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing or malformed token")
	}

	claims, err := l.jwtService.ValidateToken(raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	}

	if blacklisted, _ := l.tokenStore.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID); blacklisted {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "token has been revoked")
	}

	user, err := l.userRepo.FindByID(c.Request().Context(), claims.UserID)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	if !user.IsActive() {
		httpErr := errors.MapErrorToHTTP(errors.ErrAccountNotActive)
		return nil, echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return user, nil
}

func bearerFromHeader(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"resourcehub/internal/auth"
	"resourcehub/internal/config"
	"resourcehub/internal/handler"
	"resourcehub/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	profileHandler *handler.ProfileHandler,
	resourceHandler *handler.ResourceHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	loadActor := NewActorLoader(jwtService, tokenStore, userRepo)

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/reset-password", authHandler.RequestPasswordReset)
	api.POST("/auth/reset-password/:token", authHandler.ResetPassword)

	// Public resource directory. The optional actor lets owners and admins
	// see their unapproved resources on the detail route.
	api.GET("/resources", resourceHandler.ListResources)
	api.GET("/resources/:id", resourceHandler.GetResource, loadActor.Optional())

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}), loadActor.Required())

	secured.GET("/auth/me", authHandler.Me)
	secured.POST("/auth/logout", authHandler.Logout)
	secured.POST("/auth/change-password", authHandler.ChangePassword)

	// User management
	secured.GET("/users", userHandler.ListUsers)
	secured.GET("/users/:id", userHandler.GetUser)
	secured.PUT("/users/:id", userHandler.UpdateUser)
	secured.DELETE("/users/:id", userHandler.DeleteUser)

	// Profiles
	secured.GET("/profiles", profileHandler.ListProfiles)
	secured.GET("/profiles/:user_id", profileHandler.GetProfile)
	secured.PUT("/profiles/:user_id", profileHandler.UpdateProfile)

	// Resources
	secured.GET("/resources/all", resourceHandler.ListAllResources)
	secured.GET("/resources/my", resourceHandler.ListMyResources)
	secured.POST("/resources", resourceHandler.CreateResource)
	secured.PUT("/resources/:id", resourceHandler.UpdateResource)
	secured.DELETE("/resources/:id", resourceHandler.DeleteResource)
	secured.POST("/resources/:id/approval", resourceHandler.ApproveOrReject)
	secured.POST("/resources/:id/archive", resourceHandler.ArchiveResource)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

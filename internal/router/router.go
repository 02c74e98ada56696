package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	"gestionusuarios/docs"
	"gestionusuarios/internal/auth"
	"gestionusuarios/internal/cache"
	"gestionusuarios/internal/config"
	apperrors "gestionusuarios/internal/errors"
	"gestionusuarios/internal/handler"
	"gestionusuarios/internal/repository"
	"gestionusuarios/internal/service"
)

// ContextKeyClaims is where the JWT middleware stores the operator's *auth.Claims.
const ContextKeyClaims = "user"

// New assembles repositories, services and handlers on top of an open database
// and cache, and returns a ready Echo instance.
func New(cfg *config.Config, gdb *gorm.DB, cacheClient *cache.Client) (*echo.Echo, error) {
	passwordHash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	usuarioRepo := repository.NewUsuarioRepository(gdb)
	cargoRepo := repository.NewCargoRepository(gdb)
	asistenciaRepo := repository.NewAsistenciaRepository(gdb)
	consultaRepo := repository.NewConsultaRepository(gdb)

	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	authService := service.NewAuthService(service.Operator{
		Email:        strings.ToLower(cfg.AdminEmail),
		PasswordHash: passwordHash,
	}, jwtService, tokenStore)
	usuarioService := service.NewUsuarioService(usuarioRepo, cargoRepo)
	cargoService := service.NewCargoService(cargoRepo, cacheClient, cfg.CargoCacheTTL)
	asistenciaService := service.NewAsistenciaService(asistenciaRepo, usuarioRepo)
	consultaService := service.NewConsultaService(consultaRepo)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	Register(
		e,
		cfg,
		jwtService,
		handler.Health(gdb, cacheClient),
		handler.NewAuthHandler(authService),
		handler.NewUsuarioHandler(usuarioService),
		handler.NewCargoHandler(cargoService),
		handler.NewAsistenciaHandler(asistenciaService),
		handler.NewConsultaHandler(consultaService),
	)
	return e, nil
}

// Register wires routes and middleware. Reads are public; writes require a
// bearer token issued by /api/auth/login.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	health echo.HandlerFunc,
	authHandler *handler.AuthHandler,
	usuarioHandler *handler.UsuarioHandler,
	cargoHandler *handler.CargoHandler,
	asistenciaHandler *handler.AsistenciaHandler,
	consultaHandler *handler.ConsultaHandler,
) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger())
	e.Use(middleware.Recover())

	e.Validator = handler.NewValidator()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}

	e.GET("/healthz", health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/usuarios", usuarioHandler.ListUsuarios)
	api.GET("/usuarios/:id", usuarioHandler.GetUsuario)
	api.GET("/cargos", cargoHandler.ListCargos)

	consultas := api.Group("/consultas")
	consultas.GET("/sueldo-mayor", consultaHandler.SueldoMayor)
	consultas.GET("/sueldo-entre", consultaHandler.SueldoEntre)
	consultas.GET("/llegaron-tarde", consultaHandler.LlegaronTarde)
	consultas.GET("/salieron-temprano", consultaHandler.SalieronTemprano)

	// Secured routes (require JWT authentication)
	secured := api.Group("", jwtMiddleware(jwtService))

	secured.POST("/usuarios", usuarioHandler.CreateUsuario)
	secured.PUT("/usuarios/:id", usuarioHandler.UpdateUsuario)
	secured.DELETE("/usuarios/:id", usuarioHandler.DeleteUsuario)
	secured.POST("/cargos", cargoHandler.CreateCargo)
	secured.POST("/asistencias", asistenciaHandler.CreateAsistencia)
}

func jwtMiddleware(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ContextKey:  ContextKeyClaims,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				return nil, err
			}
			// refresh tokens carry an id and must not authorize writes
			if claims.ID != "" {
				return nil, fmt.Errorf("refresh token used as access token")
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "missing or invalid token",
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Status >= http.StatusInternalServerError {
				event = log.Error().Err(v.Error)
			}
			event.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}

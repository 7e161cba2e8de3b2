package server

import (
	"net/http"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"storefront-gateway/internal/handler"
	"storefront-gateway/internal/middleware"
	"storefront-gateway/internal/service"
	"storefront-gateway/internal/session"
)

type Server struct {
	echo            *echo.Echo
	checkoutHandler *handler.CheckoutHandler
	authHandler     *handler.AuthHandler
	profileHandler  *handler.ProfileHandler
	catalogHandler  *handler.CatalogHandler
}

func NewServer(
	checkoutService service.CheckoutService,
	authService service.AuthService,
	profileService service.ProfileService,
	catalogService service.CatalogService,
	registry *session.Registry,
	cookies *session.Cookies,
	v *validatorv10.Validate,
	log *zap.SugaredLogger,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Infow("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"err", v.Error,
			)
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.SessionToken(cookies))

	s := &Server{
		echo:            e,
		checkoutHandler: handler.NewCheckoutHandler(checkoutService, authService, registry, v, log),
		authHandler:     handler.NewAuthHandler(authService, cookies, v, log),
		profileHandler:  handler.NewProfileHandler(profileService, log),
		catalogHandler:  handler.NewCatalogHandler(catalogService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api.GET("/product", s.catalogHandler.ProductPanel)

	// -------- session / account --------
	api.POST("/login", s.authHandler.Login)
	api.POST("/logout", s.authHandler.Logout)
	api.GET("/me", s.authHandler.Me)
	api.POST("/register", s.authHandler.Register)
	api.POST("/register/confirm", s.authHandler.ConfirmAccount)
	api.POST("/password-reset", s.authHandler.RequestPasswordReset)
	api.POST("/password-reset/confirm", s.authHandler.ConfirmPasswordReset)

	api.GET("/profile", s.profileHandler.Get)
	api.POST("/profile", s.profileHandler.Update)

	// -------- checkout --------
	checkout := api.Group("/checkout")
	checkout.POST("", s.checkoutHandler.Create)
	checkout.GET("/:id", s.checkoutHandler.Get)
	checkout.POST("/:id/address", s.checkoutHandler.SetAddress)
	checkout.POST("/:id/delivery", s.checkoutHandler.SetDelivery)
	checkout.POST("/:id/attach", s.checkoutHandler.Attach)
	checkout.POST("/:id/payment-intent", s.checkoutHandler.PaymentIntent)
	checkout.POST("/:id/payment", s.checkoutHandler.Pay)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}

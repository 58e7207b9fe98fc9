// Package api provides the HTTP API for the Vocdoni Personnummer service
//
//	@title						Vocdoni Personnummer API
//	@version					1.0
//	@description				API for validating and normalizing Swedish personal identity numbers
//	@termsOfService				http://swagger.io/terms/
//
//	@contact.name				API Support
//	@contact.url				https://vocdoni.io
//	@contact.email				info@vocdoni.io
//
//	@license.name				Apache 2.0
//	@license.url				http://www.apache.org/licenses/LICENSE-2.0.html
//
//	@host						localhost:8080
//	@BasePath					/
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT token.
//
//	@tag.name					auth
//	@tag.description			Authentication operations
//
//	@tag.name					personnummer
//	@tag.description			Personal number validation and normalization operations
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vocdoni/personnummer/api/apicommon"
	"github.com/vocdoni/personnummer/metrics"
	"github.com/vocdoni/personnummer/validator"
	"go.vocdoni.io/dvote/log"
)

const jwtExpiration = 360 * time.Hour // 15 days

// Config holds the configuration of the API HTTP server.
type Config struct {
	Host   string
	Port   int
	Secret string
}

// API type represents the API HTTP server with JWT authentication capabilities.
type API struct {
	auth      *jwtauth.JWTAuth
	host      string
	port      int
	router    *chi.Mux
	secret    string
	validator *validator.Validator
	metrics   *metrics.Metrics
}

// New creates a new API HTTP server. It does not start the server. Use Start() for that.
func New(conf *Config) *API {
	if conf == nil {
		return nil
	}
	return &API{
		auth:      jwtauth.New("HS256", []byte(conf.Secret), nil),
		host:      conf.Host,
		port:      conf.Port,
		secret:    conf.Secret,
		validator: validator.New(),
		metrics:   metrics.New(),
	}
}

// Start starts the API HTTP server (non blocking).
func (a *API) Start() {
	go func() {
		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", a.host, a.port), a.initRouter()); err != nil {
			log.Fatalf("failed to start the API server: %v", err)
		}
	}()
}

// initRouter creates the router with all the routes and middleware.
func (a *API) initRouter() http.Handler {
	// Create the router with a basic middleware stack
	r := chi.NewRouter()
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}).Handler)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Throttle(100))
	r.Use(middleware.ThrottleBacklog(5000, 40000, 60*time.Second))
	r.Use(middleware.Timeout(45 * time.Second))

	// protected routes
	r.Group(func(r chi.Router) {
		// seek, verify and validate JWT tokens
		r.Use(jwtauth.Verifier(a.auth))
		// handle valid JWT tokens
		r.Use(a.authenticator)
		// refresh the token
		log.Infow("new route", "method", "POST", "path", authRefreshTokenEndpoint)
		r.Post(authRefreshTokenEndpoint, a.refreshTokenHandler)
		// check a personal number
		log.Infow("new route", "method", "POST", "path", personnummerCheckEndpoint)
		r.With(a.validateInputModel(apicommon.CheckRequest{}), a.InputValidator).
			Post(personnummerCheckEndpoint, a.checkPersonnummerHandler)
		// validate a personal number
		log.Infow("new route", "method", "POST", "path", personnummerValidateEndpoint)
		r.With(a.validateInputModel(apicommon.ValidateRequest{}), a.InputValidator).
			Post(personnummerValidateEndpoint, a.validatePersonnummerHandler)
		// normalize a personal number
		log.Infow("new route", "method", "POST", "path", personnummerNormalizeEndpoint)
		r.With(a.validateInputModel(apicommon.NormalizeRequest{}), a.InputValidator).
			Post(personnummerNormalizeEndpoint, a.normalizePersonnummerHandler)
	})

	// Public routes
	r.Group(func(r chi.Router) {
		r.Get(pingEndpoint, func(w http.ResponseWriter, _ *http.Request) {
			if _, err := w.Write([]byte(".")); err != nil {
				log.Warnw("failed to write ping response", "error", err)
			}
		})
		// get a token
		log.Infow("new route", "method", "POST", "path", authTokenEndpoint)
		r.With(a.validateInputModel(apicommon.TokenRequest{}), a.InputValidator).
			Post(authTokenEndpoint, a.authTokenHandler)
		// expose the prometheus metrics
		log.Infow("new route", "method", "GET", "path", metricsEndpoint)
		r.Get(metricsEndpoint, promhttp.Handler().ServeHTTP)
	})
	a.router = r
	return r
}

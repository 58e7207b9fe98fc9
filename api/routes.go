package api

const (
	// auth routes

	// POST /auth/token to authenticate a client and get a JWT token
	authTokenEndpoint = "/auth/token"
	// POST /auth/refresh to refresh the JWT token
	authRefreshTokenEndpoint = "/auth/refresh"

	// personal number routes

	// POST /personnummer/check to check whether a personal number is valid
	personnummerCheckEndpoint = "/personnummer/check"
	// POST /personnummer/validate to validate a personal number
	personnummerValidateEndpoint = "/personnummer/validate"
	// POST /personnummer/normalize to normalize a personal number
	personnummerNormalizeEndpoint = "/personnummer/normalize"

	// service routes

	// GET /ping to check the service is up
	pingEndpoint = "/ping"
	// GET /metrics to scrape the prometheus metrics
	metricsEndpoint = "/metrics"
)

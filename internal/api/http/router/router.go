package router

import (
	"net/http"

	"github.com/avolkov/tokengate/internal/api/http/handler"
	"github.com/avolkov/tokengate/internal/api/http/middleware"
	"github.com/avolkov/tokengate/internal/logger"
	"github.com/avolkov/tokengate/internal/model"
	"github.com/avolkov/tokengate/internal/service"
)

// Router wires HTTP handlers and middleware for the login API.
type Router struct {
	authService    *service.Auth
	tokenService   *service.TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new Router instance.
func New(
	authService *service.Auth,
	tokenService *service.TokenService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		tokenService:   tokenService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the HTTP handler tree. The login endpoint is public;
// everything else sits behind the bearer-token middleware.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	mux := http.NewServeMux()

	authHandler := handler.NewAuth(r.authService, r.logger)
	mux.HandleFunc("POST /api/v1/login", authHandler.Login)

	accountHandler := handler.NewAccount(r.authService, r.tokenService, r.contextManager, r.logger)
	mux.Handle("GET /api/v1/me", authenticate.Handle(http.HandlerFunc(accountHandler.Me)))
	mux.Handle("GET /api/v1/tokens", authenticate.Handle(http.HandlerFunc(accountHandler.IssuedTokens)))

	return logging.Handle(mux)
}

package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/service"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
	"github.com/aussiebroadwan/clubhouse/pkg/slogx"

	_ "github.com/aussiebroadwan/clubhouse/api/clubhouse" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	pages        *Pages

	store               store.Store
	RegistrationService *service.RegistrationService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	cors httpx.CORSConfig,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		pages:        MustLoadPages(),
		store:        st,
	}

	// Logging first so preflight responses are logged too.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(cors),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerPages()
	r.registerRegistrations()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Clubhouse Registration API
//	@version		0.1.0
//	@description	Member registration backend. Accepts sign-ups from the landing form and the join API and lists stored members.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/clubhouse
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerPages() {
	// {$} pins the landing page to "/" only; everything else 404s.
	r.Mux.Handle("GET /{$}", r.pages.Landing())
	r.Mux.Handle("GET /thank-you", r.pages.ThankYou())
}

func (r *Router) registerRegistrations() {
	r.Mux.Handle("POST /{$}", &RegisterHandler{RegistrationService: r.RegistrationService})
	r.Mux.Handle("POST /api/join", &JoinHandler{RegistrationService: r.RegistrationService})
	r.Mux.Handle("POST /join", &SignUpHandler{RegistrationService: r.RegistrationService})

	members := &MembersHandler{RegistrationService: r.RegistrationService}
	r.Mux.HandleFunc("GET /api/join-requests", members.HandleJoinRequests)
	r.Mux.HandleFunc("GET /api/users", members.HandleUsers)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /health", HealthHandler(r.store))
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}

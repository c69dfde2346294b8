package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/invyte/internal/invyte/service"
	"github.com/aussiebroadwan/invyte/internal/invyte/store"
	"github.com/aussiebroadwan/invyte/pkg/httpx"
	"github.com/aussiebroadwan/invyte/pkg/jwtx"
	"github.com/aussiebroadwan/invyte/pkg/slogx"

	_ "github.com/aussiebroadwan/invyte/api/invyte" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	EventService    *service.EventService
	RSVPService     *service.RSVPService
	WishlistService *service.WishlistService
	UserService     *service.UserService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerEvents()
	r.registerRSVP()
	r.registerWishlist()
	r.registerMe()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Invyte API
//	@version		0.1.0
//	@description	Event invitations with guest rosters, RSVPs and gift claims against event wishlists.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/invyte
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				HS256 identity token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured authenticates the caller and rate limits per user.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerEvents() {
	h := &EventsHandler{
		EventService:    r.EventService,
		WishlistService: r.WishlistService,
	}

	r.Mux.Handle("POST /v1/events", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/events", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/events/{id}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/events/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/invites/{token}", r.secured(h.HandleResolveInvite, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/events/{id}/guests", r.secured(h.HandleReplaceGuests, httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/events/{id}/wishlist", r.secured(h.HandleReplaceWishlist, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/events/{id}/wishlist/share", r.secured(h.HandleShareWishlist, httpx.ModerateLimit))
}

func (r *Router) registerRSVP() {
	h := &RSVPHandler{RSVPService: r.RSVPService}

	// Responding claims gifts; keep it tight.
	r.Mux.Handle("POST /v1/events/{id}/respond", r.secured(h.HandleRespond, httpx.StrictLimit))
	r.Mux.Handle("GET /v1/events/{id}/rsvp", r.secured(h.HandleStatus, httpx.LenientLimit))
}

func (r *Router) registerWishlist() {
	h := &WishlistHandler{WishlistService: r.WishlistService}

	r.Mux.Handle("GET /v1/wishlist", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/wishlist", r.secured(h.HandleAdd, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/wishlist/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/wishlist/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerMe() {
	h := &MeHandler{UserService: r.UserService}

	r.Mux.Handle("GET /v1/me", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/me", r.secured(h.HandleUpdate, httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

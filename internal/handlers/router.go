package handlers

import (
	"time"

	"github.com/Blac-guru/lenoxhill-healthcare/internal/auth"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the full middleware chain and the /api surface. Kept out
// of main so tests can mount the exact routes the binary serves.
func NewRouter(s *Server, jwtManager *auth.Manager) chi.Router {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(s.Log))
	r.Use(middleware.CORS(s.Cfg.FrontendOrigin))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	window := time.Duration(s.Cfg.RateLimitWindowSec) * time.Second
	appointmentsLimiter := middleware.NewRateLimiter(s.Cfg.RateLimitAppointments, window)
	contactLimiter := middleware.NewRateLimiter(s.Cfg.RateLimitContact, window)
	ordersLimiter := middleware.NewRateLimiter(s.Cfg.RateLimitOrders, window)

	r.Route("/api", func(api chi.Router) {
		api.Get("/services", s.GetServices)
		api.Get("/services/{id}", s.GetService)

		api.Get("/products", s.GetProducts)
		api.Get("/products/{id}", s.GetProduct)

		api.With(appointmentsLimiter.Middleware).Post("/appointments", s.CreateAppointment)
		api.Get("/appointments", s.GetAppointments)

		api.With(contactLimiter.Middleware).Post("/contact", s.CreateContact)

		api.Get("/cart/{sessionId}", s.GetCartItems)
		api.Post("/cart", s.AddToCart)
		api.Delete("/cart/{sessionId}/{productId}", s.RemoveFromCart)
		api.Delete("/cart/{sessionId}", s.ClearCart)

		api.With(ordersLimiter.Middleware).Post("/orders", s.CreateOrder)

		api.Route("/admin", func(admin chi.Router) {
			admin.Post("/register", s.AdminRegister)
			admin.Post("/login", s.AdminLogin)
			admin.Post("/refresh", s.AdminRefresh)
			admin.Post("/logout", s.AdminLogout)

			// chi requires middlewares before routes; auth-protected admin
			// routes live on a sub-router.
			admin.Group(func(protected chi.Router) {
				protected.Use(middleware.AdminAuth(s.Cfg.AdminAPIKey, jwtManager))
				protected.Get("/appointments", s.AdminListAppointments)
				protected.Patch("/appointments/{id}/status", s.AdminUpdateAppointmentStatus)
				protected.Get("/contacts", s.AdminListContacts)
				protected.Patch("/contacts/{id}/status", s.AdminUpdateContactStatus)
				protected.Get("/orders", s.AdminListOrders)
				protected.Patch("/orders/{id}/status", s.AdminUpdateOrderStatus)
				protected.Post("/services", s.AdminCreateService)
				protected.Post("/products", s.AdminCreateProduct)
				protected.Post("/users", s.AdminCreateUser)
			})
		})
	})

	return r
}

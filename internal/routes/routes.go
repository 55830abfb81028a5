package routes

import (
	"time"

	"agendly-backend/internal/config"
	"agendly-backend/internal/handlers"
	"agendly-backend/internal/metrics"
	"agendly-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	planHandler *handlers.PlanHandler,
	tenantHandler *handlers.TenantHandler,
	ownerHandler *handlers.OwnerHandler,
	staffHandler *handlers.StaffHandler,
	serviceHandler *handlers.ServiceHandler,
	appointmentHandler *handlers.AppointmentHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	app.Get("/metrics", metrics.Handler())

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth endpoints are public and carry a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	jwt := middleware.JWTProtected(cfg)
	resolveTenant := middleware.TenantResolver(db)
	adminOnly := middleware.AdminRequired(cfg)
	managerOrAdmin := middleware.ManagerRequired()

	api.Post("/auth/logout", jwt, authHandler.Logout)

	// Plans: anyone authenticated may read, only admins mutate.
	api.Get("/plan", jwt, planHandler.List)
	api.Get("/plan/:id", jwt, planHandler.Get)
	api.Post("/plan", jwt, adminOnly, planHandler.Create)
	api.Patch("/plan/:id", jwt, adminOnly, planHandler.Update)
	api.Delete("/plan/:id", jwt, adminOnly, planHandler.Delete)

	// Tenants: browsable by all roles (booking wizard), admin-managed.
	api.Get("/tenant", jwt, tenantHandler.List)
	api.Get("/tenant/:id", jwt, tenantHandler.Get)
	api.Post("/tenant", jwt, adminOnly, tenantHandler.Create)
	api.Patch("/tenant/:id", jwt, adminOnly, tenantHandler.Update)
	api.Delete("/tenant/:id", jwt, adminOnly, tenantHandler.Delete)

	// Owner lookup: logged-in manager -> tenant resolution.
	api.Get("/owner/by-email/:email", jwt, ownerHandler.ByEmail)

	// Staff: reads open to any authenticated role (the wizard lists a
	// tenant's staff); writes restricted to admins and the owning manager.
	api.Get("/staff", jwt, resolveTenant, staffHandler.List)
	api.Get("/staff/:id", jwt, resolveTenant, staffHandler.Get)
	api.Post("/staff", jwt, resolveTenant, managerOrAdmin, staffHandler.Create)
	api.Patch("/staff/:id", jwt, resolveTenant, managerOrAdmin, staffHandler.Update)
	api.Delete("/staff/:id", jwt, resolveTenant, managerOrAdmin, staffHandler.Delete)

	// Services: same gating as staff.
	api.Get("/service", jwt, resolveTenant, serviceHandler.List)
	api.Get("/service/:id", jwt, resolveTenant, serviceHandler.Get)
	api.Post("/service", jwt, resolveTenant, managerOrAdmin, serviceHandler.Create)
	api.Patch("/service/:id", jwt, resolveTenant, managerOrAdmin, serviceHandler.Update)
	api.Delete("/service/:id", jwt, resolveTenant, managerOrAdmin, serviceHandler.Delete)

	// Appointments: any authenticated role; per-record authorization in
	// the handler (users their own, managers their tenant).
	api.Get("/appointment", jwt, resolveTenant, appointmentHandler.List)
	api.Get("/appointment/:id", jwt, resolveTenant, appointmentHandler.Get)
	api.Post("/appointment", jwt, resolveTenant, appointmentHandler.Create)
	api.Patch("/appointment/:id", jwt, resolveTenant, appointmentHandler.Update)
	api.Delete("/appointment/:id", jwt, resolveTenant, appointmentHandler.Delete)

	// Admin dashboard counters.
	api.Get("/dashboard/stats", jwt, adminOnly, dashboardHandler.Stats)
}

package routes

import (
	"time"

	"github.com/zhaygo/backend/app/controllers"
	"github.com/zhaygo/backend/pkg/metrics"
	"github.com/zhaygo/backend/pkg/middleware"
	"github.com/zhaygo/backend/pkg/router"
)

// Controllers bundles everything Register needs. Construction happens once
// at startup in internal/server.
type Controllers struct {
	Auth    *controllers.AuthController
	Profile *controllers.ProfileController
	Orders  *controllers.OrderController
	Pages   *controllers.PagesController
}

// pages maps each site URL to its HTML file in the template directory.
var pages = map[string]string{
	"/":                  "index.html",
	"/home":              "zhay-go-home-page.html",
	"/potato":            "Potato.html",
	"/emadatsi":          "emadatsi.html",
	"/asparagus":         "Asparagus.html",
	"/spinach":           "Spinach.html",
	"/signup":            "signup.html",
	"/payment":           "payment.html",
	"/aboutus":           "zhay-go-about-us-page.html",
	"/cart":              "cart.html",
	"/menu":              "our-menu.html",
	"/mountaincafe":      "mountain-cafe.html",
	"/villagerestaurant": "village-restaurant.html",
	"/profile":           "profile.html",
	"/order":             "order.html",
}

// Register wires every route of the backend.
func Register(r *router.Router, c Controllers) {
	limitAuth := middleware.RateLimit(20, time.Minute)

	// Auth
	r.Post("/signup", "auth.signup", c.Auth.Signup, limitAuth)
	r.Post("/login", "auth.login", c.Auth.Login, limitAuth)

	// Profile (the update endpoint predates the /api prefix; kept for the
	// site's client scripts)
	r.Post("/profile/update", "profile.update", c.Profile.Update, middleware.Auth)

	api := r.Group("/api", middleware.Auth)
	api.Get("/profile/image", "profile.image", c.Profile.Image)
	api.Post("/orders", "orders.create", c.Orders.Create)
	api.Get("/orders", "orders.list", c.Orders.List)

	// Static site
	for path, file := range pages {
		r.Get(path, "pages"+path, c.Pages.Page(file))
	}
	for _, subdir := range []string{"css", "js", "images", "video"} {
		r.Get("/"+subdir+"/{file}", "assets."+subdir, c.Pages.Asset(subdir))
	}
	r.Get("/uploads/{file}", "uploads.show", c.Pages.Upload)

	// Operational
	r.Get("/healthz", "healthz", c.Pages.Health)
	r.Get("/metrics", "metrics", metrics.Handler())
}

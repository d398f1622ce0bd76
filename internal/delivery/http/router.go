package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"munsociety/internal/delivery/http/controllers"
	"munsociety/internal/delivery/http/middleware"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Events       *controllers.EventController
	Publications *controllers.PublicationController
	Gallery      *controllers.GalleryController
	Team         *controllers.TeamController
	Timeline     *controllers.TimelineController
	Categories   *controllers.CategoryController
	Settings     *controllers.SettingsController
	Auth         *controllers.AuthController
	Contact      *controllers.ContactController
}

// NewRouter initializes the HTTP router with all application routes.
// Routes under /admin require the admin session cookie.
func NewRouter(c Controllers) *http.ServeMux {
	mux := http.NewServeMux()
	admin := middleware.RequireAdmin()

	// Public content
	mux.HandleFunc("GET /events", c.Events.List)
	mux.HandleFunc("GET /events/{id}", c.Events.Get)
	mux.HandleFunc("GET /publications", c.Publications.List)
	mux.HandleFunc("GET /publications/{id}", c.Publications.Get)
	mux.HandleFunc("GET /gallery", c.Gallery.List)
	mux.HandleFunc("GET /team", c.Team.List)
	mux.HandleFunc("GET /timeline", c.Timeline.List)
	mux.HandleFunc("GET /categories", c.Categories.List)
	mux.HandleFunc("GET /settings", c.Settings.Get)
	mux.HandleFunc("POST /contact", c.Contact.Submit)

	// Auth
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("POST /auth/logout", c.Auth.Logout)
	mux.HandleFunc("GET /admin/session", admin(c.Auth.Session))

	// Admin content management
	mux.HandleFunc("POST /admin/events", admin(c.Events.Save))
	mux.HandleFunc("DELETE /admin/events/{id}", admin(c.Events.Delete))
	mux.HandleFunc("POST /admin/publications", admin(c.Publications.Save))
	mux.HandleFunc("DELETE /admin/publications/{id}", admin(c.Publications.Delete))
	mux.HandleFunc("POST /admin/gallery", admin(c.Gallery.Save))
	mux.HandleFunc("DELETE /admin/gallery/{id}", admin(c.Gallery.Delete))
	mux.HandleFunc("POST /admin/team", admin(c.Team.Save))
	mux.HandleFunc("DELETE /admin/team/{id}", admin(c.Team.Delete))
	mux.HandleFunc("POST /admin/timeline", admin(c.Timeline.Save))
	mux.HandleFunc("DELETE /admin/timeline/{id}", admin(c.Timeline.Delete))
	mux.HandleFunc("POST /admin/categories", admin(c.Categories.Save))
	mux.HandleFunc("DELETE /admin/categories/{name}", admin(c.Categories.Delete))
	mux.HandleFunc("PUT /admin/settings", admin(c.Settings.Update))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

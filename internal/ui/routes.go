package ui

import (
	"github.com/go-chi/chi/v5"

	"github.com/me/jobdesk/pkg/jobportal"
)

// RegisterRoutes registers all UI routes on the given router.
func (ui *UI) RegisterRoutes(r chi.Router) {
	// Public routes.
	r.Get("/", ui.HandleHome)
	r.Get("/login", ui.HandleLogin)
	r.Post("/login", ui.HandleLoginPost)
	r.Post("/login/google", ui.HandleGoogleLoginPost)
	r.Get("/register", ui.HandleRegister)
	r.Post("/register", ui.HandleRegisterPost)
	r.Get("/jobs", ui.HandleJobList)
	r.Get("/jobs/{id}", ui.HandleJobDetail)

	// Signed-in routes.
	r.Group(func(r chi.Router) {
		r.Use(ui.RequireAuth)

		r.Get("/logout", ui.HandleLogout)
		r.Post("/jobs/{id}/apply", ui.HandleApplyPost)

		// Employer area.
		r.Route("/employer", func(r chi.Router) {
			r.Use(ui.RequireRole(jobportal.RoleEmployer))
			r.Get("/dashboard", ui.HandleEmployerDashboard)
			r.Post("/applications/{id}/status", ui.HandleApplicationStatusPost)
			r.Get("/post-job", ui.HandlePostJob)
			r.Post("/post-job", ui.HandlePostJobPost)
			r.Get("/jobs/{id}/edit", ui.HandleEditJob)
			r.Post("/jobs/{id}/edit", ui.HandleEditJobPost)
			r.Post("/jobs/{id}/delete", ui.HandleDeleteJobPost)
			r.Get("/company-profile", ui.HandleCompanyProfile)
			r.Post("/company-profile", ui.HandleCompanyProfilePost)
		})

		// Employee area.
		r.Route("/employee", func(r chi.Router) {
			r.Use(ui.RequireRole(jobportal.RoleEmployee))
			r.Get("/dashboard", ui.HandleEmployeeDashboard)
			r.Post("/applications/{id}/withdraw", ui.HandleWithdrawPost)
			r.Get("/profile", ui.HandleEmployeeProfile)
			r.Post("/profile", ui.HandleEmployeeProfilePost)
		})
	})
}

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"prodtrack/internal/auth"
	"prodtrack/internal/httpserver/handlers"
)

// NewRouter wires every route behind the shared auth guard. Admin routes
// sit in a nested group with the admin check layered on top.
func NewRouter(db *gorm.DB, lg *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)

	r.Post("/login", handlers.Login(db, lg))

	r.Group(func(protected chi.Router) {
		protected.Use(auth.Auth(db))

		// GET kept for parity with the old app's logout link.
		protected.Post("/logout", handlers.Logout(db))
		protected.Get("/logout", handlers.Logout(db))
		protected.Get("/me", handlers.Me(db, lg))
		protected.Get("/menu", handlers.Me(db, lg))
		protected.Get("/workcenters", handlers.ListWorkCenters(db, lg))
		protected.Post("/orders", handlers.SaveOrders(db, lg))
		protected.Get("/reports", handlers.Reports(db, lg))

		protected.Route("/admin", func(admin chi.Router) {
			admin.Use(auth.RequireAdmin)

			admin.Get("/dashboard", handlers.Dashboard(db, lg))
			admin.Get("/reports", handlers.Reports(db, lg))
			admin.Get("/export_excel", handlers.ExportExcel(db, lg))
			admin.Get("/logs", handlers.AuditLogs(db, lg))

			admin.Get("/users", handlers.ListUsers(db, lg))
			admin.Post("/users", handlers.CreateUser(db, lg))
			admin.Post("/users/{id}", handlers.UpdateUser(db, lg))
			admin.Post("/users/{id}/delete", handlers.DeleteUser(db, lg))

			admin.Get("/master_data", handlers.MasterData(db, lg))
			admin.Post("/workcenters", handlers.CreateWorkCenter(db, lg))
			admin.Post("/workcenters/{id}", handlers.UpdateWorkCenter(db, lg))
			admin.Post("/workcenters/{id}/delete", handlers.DeleteWorkCenter(db, lg))
			admin.Post("/departments", handlers.CreateDepartment(db, lg))
			admin.Post("/departments/{id}", handlers.UpdateDepartment(db, lg))
			admin.Post("/departments/{id}/delete", handlers.DeleteDepartment(db, lg))
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return r
}

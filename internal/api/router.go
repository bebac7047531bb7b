package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/kemasghani/beReactNative/internal/api/handlers"
	"github.com/kemasghani/beReactNative/internal/repository"
	"github.com/kemasghani/beReactNative/internal/upload"
)

type Deps struct {
	Users     repository.UserRepository
	Items     repository.ItemRepository
	Suppliers repository.SupplierRepository
	Reports   repository.ReportRepository
	Receiver  *upload.Receiver
	Log       *slog.Logger
}

// NewRouter wires every endpoint. The API is consumed by browser and mobile
// clients, so CORS allows all origins.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	auth := handlers.NewAuthHandler(d.Users, d.Log)
	items := handlers.NewItemHandler(d.Items, d.Receiver, d.Log)
	suppliers := handlers.NewSupplierHandler(d.Suppliers, d.Log)
	reports := handlers.NewReportHandler(d.Reports, d.Log)

	r.Post("/register", auth.Register)
	r.Post("/login", auth.Login)
	r.Get("/getUserId/{username}", auth.GetUserID)

	r.Post("/item", items.Create)
	r.Post("/supplier", suppliers.Create)
	r.Post("/report", reports.Create)
	r.Get("/reports", reports.GetAll)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Stored image paths point into the upload root; serve them back out.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(d.Receiver.Root())))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	return r
}

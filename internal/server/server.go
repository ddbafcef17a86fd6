package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/hirefusion/hirefusion-go/internal/crypto"
	"github.com/hirefusion/hirefusion-go/internal/handler"
	"github.com/hirefusion/hirefusion-go/internal/middleware"
	"github.com/hirefusion/hirefusion-go/internal/service"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Tokens       *crypto.TokenIssuer
	Jobs         service.JobStore
	Applications service.ApplicationStore
	CORSOrigins  []string
}

// NewRouter builds the job board route table.
func NewRouter(d Deps) http.Handler {
	authHandler := handler.NewAuthHandler(service.NewAuthService(d.Tokens))
	jobHandler := handler.NewJobHandler(service.NewJobService(d.Jobs))
	appHandler := handler.NewApplicationHandler(service.NewApplicationService(d.Applications))

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("JobBoard server is Running"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/jwt", authHandler.HandleLogin)
		r.Post("/logout", authHandler.HandleLogout)

		r.Get("/jobsdataCount", jobHandler.HandleCount)
		r.Get("/jobsdata", jobHandler.HandleList)
		r.Post("/jobsdata", jobHandler.HandleCreate)
		r.Get("/jobsdata/{id}", jobHandler.HandleGet)
		r.Put("/jobsdata/{id}", jobHandler.HandleReplace)
		r.Patch("/jobsdata/{id}", jobHandler.HandleIncrementApplied)
		r.Delete("/jobsdata/{id}", jobHandler.HandleDelete)

		r.Post("/applied", appHandler.HandleSubmit)
		r.Get("/applied/{id}", appHandler.HandleGet)

		r.Group(func(r chi.Router) {
			r.Use(middleware.CookieAuth(d.Tokens))
			r.Get("/jobsdata/myJobs", jobHandler.HandleListMine)
			r.Get("/applied", appHandler.HandleListMine)
		})
	})

	return r
}

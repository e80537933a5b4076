package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hatchdotlol/geosignup/pkg/flow"
	"github.com/hatchdotlol/geosignup/pkg/geo"
	"github.com/hatchdotlol/geosignup/pkg/util"
	"github.com/rs/cors"
)

type Server struct {
	App      *flow.App
	Sessions *flow.Sessions
	Events   *Hub

	// Locate picks the location provider for a login request that did not
	// carry a device fix.
	Locate func(r *http.Request) geo.Provider
}

// NewServer wires a session registry whose transitions are published on a
// fresh event hub.
func NewServer(app *flow.App, locate func(r *http.Request) geo.Provider) *Server {
	hub := NewHub()
	return &Server{
		App:      app,
		Sessions: flow.NewSessions(hub.Publish),
		Events:   hub,
		Locate:   locate,
	}
}

func Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"startTime": "%d", "version": "%s"}`, util.Config.StartTime, util.Config.Version)
}

func Router(s *Server) *chi.Mux {
	r := chi.NewRouter()

	origins := util.Config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	cors := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	r.Use(cors.Handler)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)

	r.Options("/*", func(w http.ResponseWriter, r *http.Request) {})
	r.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {})
	r.Get("/", Root)

	r.Mount("/sessions", s.SessionRouter())

	return r
}

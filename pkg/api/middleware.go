package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hatchdotlol/geosignup/pkg/flow"
)

type sessionKey struct{}

var SessionKey = sessionKey{}

func (s *Server) EnsureSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.Sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			SendError(w, NotFound)
			return
		}

		ctx := context.WithValue(r.Context(), SessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func session(r *http.Request) *flow.Session {
	return r.Context().Value(SessionKey).(*flow.Session)
}

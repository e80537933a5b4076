package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
	"github.com/hatchdotlol/geosignup/pkg/flow"
	"github.com/hatchdotlol/geosignup/pkg/geo"
	"github.com/hatchdotlol/geosignup/pkg/models"
	"github.com/hatchdotlol/geosignup/pkg/util"
	"github.com/hatchdotlol/geosignup/pkg/validate"
)

func (s *Server) SessionRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Post("/", s.newSession)

	r.Route("/{id}", func(r chi.Router) {
		r.Use(s.EnsureSession)
		r.Get("/", s.getSession)
		r.Delete("/", s.removeSession)
		r.Patch("/form", s.updateForm)
		r.Post("/signup", s.signup)
		r.Post("/login", s.login)
		r.Get("/profile", s.profile)
		r.Get("/events", s.events)
	})

	return r
}

func (s *Server) newSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.Sessions.New()
	if err != nil {
		sentry.CaptureException(err)
		SendError(w, InternalServerError)
		return
	}

	sendJSON(w, http.StatusCreated, models.SessionResp{
		Id:     sess.Id,
		Screen: string(sess.Screen()),
	})
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	in := sess.Input()

	sendJSON(w, http.StatusOK, models.SessionResp{
		Id:     sess.Id,
		Screen: string(sess.Screen()),
		Form: &models.FormResp{
			Username: in.Username,
			Email:    in.Email,
			Phone:    in.Phone,
		},
	})
}

func (s *Server) removeSession(w http.ResponseWriter, r *http.Request) {
	s.Sessions.Remove(session(r).Id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) updateForm(w http.ResponseWriter, r *http.Request) {
	var form models.FieldUpdate

	body := util.HttpBody(r)
	if body == nil {
		SendError(w, BadRequest)
		return
	}
	if err := json.Unmarshal(body, &form); err != nil {
		SendError(w, BadRequest)
		return
	}

	sess := session(r)
	sess.Update(form)

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	s.sendResult(w, s.App.Signup(r.Context(), session(r)))
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var provider geo.Provider

	if body := util.HttpBody(r); len(body) > 0 {
		var report models.ReportedLocation
		if err := json.Unmarshal(body, &report); err != nil {
			SendError(w, BadRequest)
			return
		}
		if p, ok := geo.FromReport(report); ok {
			provider = p
		}
	}

	if provider == nil {
		provider = s.Locate(r)
	}

	s.sendResult(w, s.App.Login(r.Context(), session(r), provider))
}

func (s *Server) profile(w http.ResponseWriter, r *http.Request) {
	view, err := s.App.Profile(r.Context(), session(r))
	if errors.Is(err, flow.ErrWrongScreen) {
		SendError(w, Conflict)
		return
	}
	if err != nil {
		sentry.CaptureException(err)
		SendError(w, InternalServerError)
		return
	}

	sendJSON(w, http.StatusOK, models.ProfileResp{
		Welcome:  view.Welcome,
		Location: view.Location,
		Text:     view.Text(),
	})
}

func (s *Server) sendResult(w http.ResponseWriter, res flow.Result) {
	resp := models.ResultResp{
		Ok:      res.Ok(),
		Message: res.Message,
		Screen:  string(res.Screen),
		Kind:    flow.Kind(res.Err),
	}

	code := http.StatusOK
	switch resp.Kind {
	case "":
	case "validation":
		code = http.StatusUnprocessableEntity
		var verr *validate.ValidationError
		if errors.As(res.Err, &verr) {
			resp.Rule = string(verr.Rule)
		}
	case "remote_write":
		code = http.StatusBadGateway
		sentry.CaptureException(res.Err)
	case "location":
		code = http.StatusBadGateway
		slog.Info("Location fix failed", "err", res.Err)
	case "navigation":
		code = http.StatusConflict
	default:
		code = http.StatusInternalServerError
		sentry.CaptureException(res.Err)
	}

	sendJSON(w, code, resp)
}

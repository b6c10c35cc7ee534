// Package httpapi wires HTTP handlers to the underlying services.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog/log"

	"blocktix/internal/app/users"
	"blocktix/internal/auth"
	"blocktix/internal/catalog"
	"blocktix/internal/store"
)

// EventService exposes catalog reads to the handlers.
type EventService interface {
	List(ctx context.Context) ([]catalog.Event, error)
	Get(ctx context.Context, id string) (catalog.Event, error)
}

// UserService exposes account workflows to the handlers.
type UserService interface {
	Signup(ctx context.Context, name, email, password string) (users.Session, error)
	Login(ctx context.Context, email, password string) (users.Session, error)
	Profile(ctx context.Context, token string) (store.User, error)
}

// ContactService accepts contact-form submissions.
type ContactService interface {
	Submit(ctx context.Context, name, email, subject, message string) (store.ContactSubmission, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	events  EventService
	users   UserService
	contact ContactService

	// development controls whether error bodies carry a stack trace.
	development bool
}

// New configures a Server with the given services.
func New(events EventService, users UserService, contact ContactService, development bool) *Server {
	return &Server{
		events:      events,
		users:       users,
		contact:     contact,
		development: development,
	}
}

// Routes exposes the HTTP handlers.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /events", s.handleListEvents)
	mux.HandleFunc("GET /events/{id}", s.handleGetEvent)
	mux.HandleFunc("POST /signup", s.handleSignup)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /contact", s.handleContact)
	mux.HandleFunc("GET /profile", s.handleProfile)

	return mux
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// errorResponse is the normalized error body. Stack is only populated in
// development mode.
type errorResponse struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.events.List(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if events == nil {
		events = []catalog.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := s.events.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrEventNotFound) {
			s.writeMessage(w, http.StatusNotFound, "Event not found")
			return
		}
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	session, err := s.users.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrMissingFields):
			s.writeMessage(w, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, store.ErrUserExists):
			s.writeMessage(w, http.StatusConflict, "Email already registered")
		default:
			s.writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		Message string     `json:"message"`
		Token   string     `json:"token"`
		User    store.User `json:"user"`
	}{Message: "User created successfully", Token: session.Token, User: session.User})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	session, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			s.writeMessage(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Token string     `json:"token"`
		User  store.User `json:"user"`
	}{Token: session.Token, User: session.User})
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if _, err := s.contact.Submit(r.Context(), req.Name, req.Email, req.Subject, req.Message); err != nil {
		if errors.Is(err, store.ErrMissingFields) {
			s.writeMessage(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		Message string `json:"message"`
	}{Message: "Form submitted successfully"})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	token := parseBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		s.writeMessage(w, http.StatusUnauthorized, "No token provided")
		return
	}

	user, err := s.users.Profile(r.Context(), token)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, store.ErrUserNotFound) {
			s.writeMessage(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		User store.User `json:"user"`
	}{User: user})
}

func (s *Server) writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	log.Error().Err(err).Int("status", status).Msg("request failed")

	body := errorResponse{Message: err.Error()}
	if s.development {
		body.Stack = string(debug.Stack())
	}
	writeJSON(w, status, body)
}

func parseBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"TechModa/pkg/kit"
)

// Server mounts the five catalog operations. Each handler is a straight-line
// parse, validate, one service call, respond.
type Server struct {
	Svc *Service
	Log *zap.Logger
}

type listEnvelope struct {
	Products []Product `json:"products"`
}

type deleteConfirmation struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if err := s.Svc.Store.Ping(ctx); err != nil {
			if s.Log != nil {
				s.Log.Warn("readyz failed", zap.Error(err))
			}
			kit.WriteError(w, http.StatusServiceUnavailable, "not ready", "")
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/products", s.list)
	r.Post("/products", s.create)
	r.Get("/products/{id}", s.get)
	r.Put("/products/{id}", s.update)
	r.Delete("/products/{id}", s.del)

	return r
}

// writeOpError is the single place error kinds become HTTP statuses.
func writeOpError(w http.ResponseWriter, e *Error) {
	status := http.StatusInternalServerError
	switch e.Kind {
	case KindValidation:
		status = http.StatusBadRequest
	case KindNotFound:
		status = http.StatusNotFound
	}
	kit.WriteError(w, status, e.Message, e.Detail)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	products, opErr := s.Svc.List(r.Context())
	if opErr != nil {
		writeOpError(w, opErr)
		return
	}
	kit.WriteJSON(w, http.StatusOK, listEnvelope{Products: products})
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	p, opErr := s.Svc.Get(r.Context(), chi.URLParam(r, "id"))
	if opErr != nil {
		writeOpError(w, opErr)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var in ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeOpError(w, validationErr("Cuerpo de la petición inválido"))
		return
	}

	p, opErr := s.Svc.Create(r.Context(), in)
	if opErr != nil {
		writeOpError(w, opErr)
		return
	}
	kit.WriteJSON(w, http.StatusCreated, p)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	var patch ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeOpError(w, validationErr("Cuerpo de la petición inválido"))
		return
	}

	p, opErr := s.Svc.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if opErr != nil {
		writeOpError(w, opErr)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) del(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if opErr := s.Svc.Delete(r.Context(), id); opErr != nil {
		writeOpError(w, opErr)
		return
	}
	kit.WriteJSON(w, http.StatusOK, deleteConfirmation{Message: "Producto eliminado", ID: id})
}

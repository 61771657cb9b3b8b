package server

import (
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"

	"potluck/domain"
	"potluck/errors"
	"potluck/services"
)

type ItemServer struct {
	signupService services.ISignupService
	log           *slog.Logger
}

func NewItemServer(log *slog.Logger, signupService services.ISignupService) *ItemServer {
	return &ItemServer{signupService: signupService, log: log}
}

// Router builds the API surface. Every response is JSON: items on success,
// an {"error": ...} envelope on failure.
func (s *ItemServer) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			m := httpsnoop.CaptureMetrics(handler, writer, request)
			s.log.Info("handled", "method", request.Method, "url", request.URL, "duration", m.Duration, "status", m.Code)
		})
	})
	r.Methods(http.MethodGet).Path("/api/items").HandlerFunc(s.listItems)
	r.Methods(http.MethodPost).Path("/api/items").HandlerFunc(s.createItem)
	r.Methods(http.MethodPut).Path("/api/items/{id}").HandlerFunc(s.updateItem)
	r.Methods(http.MethodDelete).Path("/api/items/{id}").HandlerFunc(s.deleteItem)
	return r
}

func (s *ItemServer) listItems(writer http.ResponseWriter, _ *http.Request) {
	s.writeJSON(writer, http.StatusOK, s.signupService.List())
}

func (s *ItemServer) createItem(writer http.ResponseWriter, request *http.Request) {
	fields, ok := s.decodeFields(writer, request)
	if !ok {
		return
	}
	item, err := s.signupService.Create(request.Context(), fields)
	if err != nil {
		s.writeError(writer, err)
		return
	}
	s.writeJSON(writer, http.StatusCreated, item)
}

func (s *ItemServer) updateItem(writer http.ResponseWriter, request *http.Request) {
	fields, ok := s.decodeFields(writer, request)
	if !ok {
		return
	}
	item, err := s.signupService.Update(request.Context(), mux.Vars(request)["id"], fields)
	if err != nil {
		s.writeError(writer, err)
		return
	}
	s.writeJSON(writer, http.StatusOK, item)
}

func (s *ItemServer) deleteItem(writer http.ResponseWriter, request *http.Request) {
	if err := s.signupService.Delete(request.Context(), mux.Vars(request)["id"]); err != nil {
		s.writeError(writer, err)
		return
	}
	writer.WriteHeader(http.StatusNoContent)
}

// decodeFields parses and validates the request body. On failure it writes
// the 400 response itself and reports ok=false.
func (s *ItemServer) decodeFields(writer http.ResponseWriter, request *http.Request) (domain.Fields, bool) {
	var payload domain.Payload
	if err := json.NewDecoder(request.Body).Decode(&payload); err != nil {
		s.writeEnvelope(writer, http.StatusBadRequest, "invalid JSON body")
		return domain.Fields{}, false
	}
	fields, err := domain.ValidatePayload(payload)
	if err != nil {
		s.writeEnvelope(writer, http.StatusBadRequest, err.Error())
		return domain.Fields{}, false
	}
	return fields, true
}

// writeError translates store errors into the HTTP taxonomy. Causes stay in
// the server log; the wire only carries the generic message.
func (s *ItemServer) writeError(writer http.ResponseWriter, err error) {
	switch {
	case stderrors.Is(err, errors.ErrNotFound):
		s.writeEnvelope(writer, http.StatusNotFound, errors.ErrNotFound.Error())
	case stderrors.Is(err, errors.ErrPersistence):
		s.writeEnvelope(writer, http.StatusInternalServerError, errors.ErrPersistence.Error())
	default:
		s.log.Error("unexpected error", "error", err)
		s.writeEnvelope(writer, http.StatusInternalServerError, "internal error")
	}
}

func (s *ItemServer) writeEnvelope(writer http.ResponseWriter, status int, message string) {
	s.writeJSON(writer, status, map[string]string{"error": message})
}

func (s *ItemServer) writeJSON(writer http.ResponseWriter, status int, body any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(status)
	if err := json.NewEncoder(writer).Encode(body); err != nil {
		s.log.Error("response encoding failed", "error", err)
	}
}

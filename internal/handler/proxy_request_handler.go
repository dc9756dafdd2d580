package handler

import (
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/suar-net/suar-dash/internal/service"
)

type ProxyRequestHandler struct {
	service service.IProxyRequestService
	logger  *log.Logger
}

func NewProxyRequestHandler(s service.IProxyRequestService, l *log.Logger) *ProxyRequestHandler {
	return &ProxyRequestHandler{
		service: s,
		logger:  l,
	}
}

func (h *ProxyRequestHandler) List(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.List(r.Context())
	if err != nil {
		h.logError(r, err)
		respondWithError(w, r, http.StatusInternalServerError, "an error occured while getting proxy requests")
		return
	}
	respondWithData(w, http.StatusOK, data)
}

func (h *ProxyRequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	pr, err := h.service.Get(r.Context(), pathParam(r, "id"))
	if err != nil {
		// Bedakan error input, data tidak ditemukan, dan error server
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			respondWithError(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotFound):
			respondWithError(w, r, http.StatusNotFound, err.Error())
		default:
			// For any other error, return a generic 500
			h.logError(r, err)
			respondWithError(w, r, http.StatusInternalServerError, "an error occured while getting proxy request")
		}
		return
	}
	respondWithData(w, http.StatusOK, pr)
}

func (h *ProxyRequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(r.Context(), pathParam(r, "id"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondWithError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		h.logError(r, err)
		respondWithError(w, r, http.StatusInternalServerError, "an error occured while deleting a proxy request")
		return
	}
	respondWithData(w, http.StatusOK, nil)
}

func (h *ProxyRequestHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAll(r.Context()); err != nil {
		h.logError(r, err)
		respondWithError(w, r, http.StatusInternalServerError, "an error occured while deleting all proxy requests")
		return
	}
	respondWithData(w, http.StatusOK, nil)
}

func (h *ProxyRequestHandler) logError(r *http.Request, err error) {
	h.logger.Printf("ERROR: API request-id=%s: %v", middleware.GetReqID(r.Context()), err)
}

// pathParam returns the unescaped value of a route parameter. chi matches on
// RawPath when the request has one, so parameters holding escaped slashes
// arrive still encoded.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return raw
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

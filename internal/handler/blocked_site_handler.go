package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/suar-net/suar-dash/internal/service"
)

type BlockedSiteHandler struct {
	service service.IBlocklistService
	logger  *log.Logger
}

func NewBlockedSiteHandler(s service.IBlocklistService, l *log.Logger) *BlockedSiteHandler {
	return &BlockedSiteHandler{
		service: s,
		logger:  l,
	}
}

func (h *BlockedSiteHandler) List(w http.ResponseWriter, r *http.Request) {
	respondWithData(w, http.StatusOK, h.service.Patterns())
}

// Check reports whether the site in the path is blocked.
func (h *BlockedSiteHandler) Check(w http.ResponseWriter, r *http.Request) {
	respondWithData(w, http.StatusOK, h.service.IsBlocked(pathParam(r, "r")))
}

func (h *BlockedSiteHandler) Block(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.service.Block)
}

func (h *BlockedSiteHandler) Unblock(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.service.Unblock)
}

// Refresh reloads the blocked sites. A failed refresh is logged only.
func (h *BlockedSiteHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Refresh(r.Context()); err != nil {
		h.logger.Printf("ERROR: refresh request-id=%s: %v", middleware.GetReqID(r.Context()), err)
	}
	respondWithData(w, http.StatusOK, nil)
}

func (h *BlockedSiteHandler) mutate(w http.ResponseWriter, r *http.Request, op func(context.Context, string) error) {
	if err := op(r.Context(), pathParam(r, "r")); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondWithError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Printf("ERROR: blocked sites request-id=%s: %v", middleware.GetReqID(r.Context()), err)
		respondWithError(w, r, http.StatusInternalServerError, "an unknown error occured")
		return
	}
	respondWithData(w, http.StatusOK, nil)
}

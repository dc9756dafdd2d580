package handler

import (
	"bytes"
	"log"
	"net/http"
	"net/url"

	"github.com/suar-net/suar-dash/internal/view"
)

// visitParam carries the visit token from the delete form to the redirect.
const visitParam = "v"

// DashboardHandler serves the proxy request table and its delete action.
type DashboardHandler struct {
	visits   *view.Visits
	renderer view.Renderer
	logger   *log.Logger
}

func NewDashboardHandler(visits *view.Visits, renderer view.Renderer, l *log.Logger) *DashboardHandler {
	return &DashboardHandler{
		visits:   visits,
		renderer: renderer,
		logger:   l,
	}
}

// Index renders the table. Every visit loads the records again, except the
// redirect that follows a delete, which shows the visit's own snapshot.
func (h *DashboardHandler) Index(w http.ResponseWriter, r *http.Request) {
	// 1. Ambil view dari kunjungan sebelumnya, atau mulai kunjungan baru
	v, ok := h.visits.Resume(r.URL.Query().Get(visitParam))
	if !ok {
		v = h.visits.Start()
	}
	v.Mount(r.Context())

	// 2. Render ke buffer dulu, supaya error template tidak menghasilkan halaman setengah jadi
	var buf bytes.Buffer
	if err := v.Render(&buf, h.renderer); err != nil {
		h.logger.Printf("ERROR: rendering dashboard: %v", err)
		http.Error(w, "Template render error", http.StatusInternalServerError)
		return
	}

	// 3. Tulis halaman
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Delete removes the row right away and sends the browser back to the table.
// The backend deletion runs in the background.
func (h *DashboardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get(visitParam)
	if !h.visits.Delete(token, pathParam(r, "id")) {
		// Kunjungan sudah tidak dikenal, tampilkan data terbaru
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/?"+visitParam+"="+url.QueryEscape(token), http.StatusSeeOther)
}

package handler

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/suar-net/suar-dash/internal/model"
)

// respondWithData mengirim respons sukses dalam format envelope.
// Contoh: {"data": [...], "error": null}
func respondWithData(w http.ResponseWriter, code int, data any) {
	respondWithJson(w, code, model.Envelope[any]{Data: data})
}

// respondWithError mengirim respons error dalam format envelope.
// Contoh: {"data": null, "error": "[request-id] pesan error"}
func respondWithError(w http.ResponseWriter, r *http.Request, code int, message string) {
	msg := fmt.Sprintf("[%s] %s", middleware.GetReqID(r.Context()), message)
	respondWithJson(w, code, model.Envelope[any]{Error: &msg})
}

// respondWithJson adalah helper serbaguna untuk mengirim respons dalam format JSON.
func respondWithJson(w http.ResponseWriter, code int, payload interface{}) {
	// 1. Marshal payload ke JSON
	dat, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal JSON response: %v", payload)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// 2. Set header Content-Type
	w.Header().Set("Content-Type", "application/json")

	// 3. Tulis status code HTTP
	w.WriteHeader(code)

	// 4. Tulis body JSON
	w.Write(dat)
}

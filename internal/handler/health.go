package handler

import "net/http"

// HandleHealthz reports service liveness.
// GET /healthz
func HandleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

package handle

import (
	"encoding/json"
	"net/http"

	"defi-navigator/api/internal/tools"
)

type Handle struct {
	disp *tools.Dispatcher
}

func New(disp *tools.Dispatcher) *Handle {
	return &Handle{
		disp: disp,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handle) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "DeFi Navigator server is running",
	})
}

func (h *Handle) ListTools(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "GET only", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tools": h.disp.ListTools()})
}

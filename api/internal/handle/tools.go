package handle

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

// CallTool serves POST /tools/{toolName} with a JSON body of arguments.
// Success maps to {success:true,data}; any failure envelope maps to a
// non-2xx {success:false,error}.
func (h *Handle) CallTool(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/tools/")
	if name == "" || strings.Contains(name, "/") {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"success": false,
			"error":   "Tool not found",
		})
		return
	}

	var args map[string]any
	if err := json.NewDecoder(r.Body).Decode(&args); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "bad json: " + err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	res := h.disp.CallTool(ctx, name, args)
	if res.IsError {
		msg := ""
		if len(res.Content) > 0 {
			msg = res.Content[0].Text
		}
		code := http.StatusInternalServerError
		if strings.HasPrefix(msg, "Unknown tool:") {
			code = http.StatusNotFound
		}
		writeJSON(w, code, map[string]any{
			"success": false,
			"error":   msg,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    res,
	})
}

package api

import (
	"context"
	"net/http"
)

// SaveDependencies defines the persistence operation used by SaveHandler.
type SaveDependencies interface {
	Save(ctx context.Context) (string, error)
}

// SaveHandler persists the roster on demand.
type SaveHandler struct {
	deps SaveDependencies
}

// NewSaveHandler creates a new save handler.
func NewSaveHandler(deps SaveDependencies) *SaveHandler {
	return &SaveHandler{deps: deps}
}

type saveResponse struct {
	Status   string `json:"status"`
	Revision string `json:"revision"`
}

// HandleSave handles POST /save.
func (h *SaveHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_save"
	rev, err := h.deps.Save(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, saveResponse{Status: "saved", Revision: rev})
}

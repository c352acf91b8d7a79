package api

import (
	"net/http"

	"wealthdesk/internal/config"
	"wealthdesk/pkg/wealthdesk"
)

func (h *handler) getAISettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.core.GetAISettings()
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// setAISettings persists new advisor settings and re-arms the advisor's
// completion backend with them.
func (h *handler) setAISettings(w http.ResponseWriter, r *http.Request) {
	var payload aiSettingsPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := h.core.SetAISettings(wealthdesk.AISettings{
		Provider: payload.Provider,
		Model:    payload.Model,
	})
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	if err := h.advisor.SetCompletionConfig(config.CompletionConfig(saved)); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

package api

import (
	"net/http"
	"strings"
)

// chatCompletion runs one conversational turn: persist the user's
// message, generate a grounded reply, persist and return the assistant
// turn. Generation never fails outright; only a missing user profile
// surfaces as an error.
func (h *handler) chatCompletion(w http.ResponseWriter, r *http.Request) {
	var payload chatCompletionPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.UserID <= 0 {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if strings.TrimSpace(payload.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	if _, err := h.core.AddChatMessage(payload.UserID, true, payload.Message); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}

	reply, err := h.advisor.GenerateReply(r.Context(), payload.UserID, payload.Message)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}

	saved, err := h.core.AddChatMessage(payload.UserID, false, reply)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *handler) getChatHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(w, r, "userID")
	if !ok {
		return
	}
	limit := parseIntDefault(r.URL.Query().Get("limit"), 0)
	history, err := h.core.GetChatHistory(userID, limit)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

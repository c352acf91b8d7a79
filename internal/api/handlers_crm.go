package api

import (
	"net/http"

	"wealthdesk/pkg/wealthdesk"
)

func (h *handler) getCRMContacts(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(w, r, "userID")
	if !ok {
		return
	}
	contacts, err := h.core.GetCRMContacts(userID)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

func (h *handler) getCRMOpportunities(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(w, r, "userID")
	if !ok {
		return
	}
	opportunities, err := h.core.GetCRMOpportunities(userID)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, opportunities)
}

func (h *handler) getCRMTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(w, r, "userID")
	if !ok {
		return
	}
	tasks, err := h.core.GetCRMTasks(userID)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *handler) addCRMTask(w http.ResponseWriter, r *http.Request) {
	var payload crmTaskPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.UserID <= 0 {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	task, err := h.core.AddCRMTask(wealthdesk.CRMTaskRequest{
		UserID:        payload.UserID,
		Subject:       payload.Subject,
		RelatedTo:     payload.RelatedTo,
		RelatedToName: payload.RelatedToName,
		DueDate:       payload.DueDate,
		Priority:      payload.Priority,
		Description:   payload.Description,
	})
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

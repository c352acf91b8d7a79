package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"wealthdesk/pkg/wealthdesk"
)

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) register(w http.ResponseWriter, r *http.Request) {
	var payload registerPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.core.CreateUser(wealthdesk.CreateUserRequest{
		Username:        payload.Username,
		Password:        payload.Password,
		Email:           payload.Email,
		FullName:        payload.FullName,
		RiskProfile:     payload.RiskProfile,
		InvestmentStyle: payload.InvestmentStyle,
	})
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.core.Authenticate(payload.Username, payload.Password)
	if err != nil {
		writeErrorResponse(w, http.StatusUnauthorized, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	user, err := h.core.GetUser(id)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *handler) getPortfolio(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(w, r, "userID")
	if !ok {
		return
	}
	assets, err := h.core.GetPortfolioAssets(userID)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, assets)
}

func (h *handler) addPortfolioAsset(w http.ResponseWriter, r *http.Request) {
	var payload portfolioAssetPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	asset, err := h.core.AddPortfolioAsset(assetRequestFromPayload(payload))
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}
	h.advisor.InvalidateProfile(asset.UserID)
	writeJSON(w, http.StatusCreated, asset)
}

func (h *handler) updatePortfolioAsset(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	var payload portfolioAssetPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	asset, err := h.core.UpdatePortfolioAsset(id, assetRequestFromPayload(payload))
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}
	if asset == nil {
		writeError(w, http.StatusNotFound, "portfolio asset not found")
		return
	}
	h.advisor.InvalidateProfile(asset.UserID)
	writeJSON(w, http.StatusOK, asset)
}

func (h *handler) deletePortfolioAsset(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	asset, err := h.core.DeletePortfolioAsset(id)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	if asset == nil {
		writeError(w, http.StatusNotFound, "portfolio asset not found")
		return
	}
	h.advisor.InvalidateProfile(asset.UserID)
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *handler) getGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(w, r, "userID")
	if !ok {
		return
	}
	goals, err := h.core.GetFinancialGoals(userID)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

func (h *handler) addGoal(w http.ResponseWriter, r *http.Request) {
	var payload financialGoalPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	goal, err := h.core.AddFinancialGoal(goalRequestFromPayload(payload))
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}
	h.advisor.InvalidateProfile(goal.UserID)
	writeJSON(w, http.StatusCreated, goal)
}

func (h *handler) updateGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	var payload financialGoalPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	goal, err := h.core.UpdateFinancialGoal(id, goalRequestFromPayload(payload))
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}
	if goal == nil {
		writeError(w, http.StatusNotFound, "financial goal not found")
		return
	}
	h.advisor.InvalidateProfile(goal.UserID)
	writeJSON(w, http.StatusOK, goal)
}

func (h *handler) deleteGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	goal, err := h.core.DeleteFinancialGoal(id)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	if goal == nil {
		writeError(w, http.StatusNotFound, "financial goal not found")
		return
	}
	h.advisor.InvalidateProfile(goal.UserID)
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *handler) getMarketData(w http.ResponseWriter, r *http.Request) {
	indicators, err := h.core.GetAllMarketIndicators()
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, indicators)
}

func (h *handler) addMarketIndicator(w http.ResponseWriter, r *http.Request) {
	var payload marketIndicatorPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	indicator, err := h.core.AddMarketIndicator(wealthdesk.MarketIndicatorRequest{
		Name:          payload.Name,
		Value:         payload.Value,
		Change:        payload.Change,
		PercentChange: payload.PercentChange,
	})
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, indicator)
}

func (h *handler) updateMarketIndicator(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	var payload marketIndicatorPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	indicator, err := h.core.UpdateMarketIndicator(id, wealthdesk.MarketIndicatorRequest{
		Name:          payload.Name,
		Value:         payload.Value,
		Change:        payload.Change,
		PercentChange: payload.PercentChange,
	})
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}
	if indicator == nil {
		writeError(w, http.StatusNotFound, "market indicator not found")
		return
	}
	writeJSON(w, http.StatusOK, indicator)
}

func assetRequestFromPayload(payload portfolioAssetPayload) wealthdesk.PortfolioAssetRequest {
	return wealthdesk.PortfolioAssetRequest{
		UserID:     payload.UserID,
		AssetClass: payload.AssetClass,
		AssetName:  payload.AssetName,
		Ticker:     payload.Ticker,
		Value:      payload.Value,
		Percentage: payload.Percentage,
	}
}

func goalRequestFromPayload(payload financialGoalPayload) wealthdesk.FinancialGoalRequest {
	return wealthdesk.FinancialGoalRequest{
		UserID:        payload.UserID,
		Name:          payload.Name,
		Icon:          payload.Icon,
		TargetAmount:  payload.TargetAmount,
		CurrentAmount: payload.CurrentAmount,
		TargetDate:    payload.TargetDate,
	}
}

func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

func parseIntDefault(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return i
}

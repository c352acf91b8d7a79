package api

type registerPayload struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	Email           string `json:"email"`
	FullName        string `json:"full_name"`
	RiskProfile     string `json:"risk_profile"`
	InvestmentStyle string `json:"investment_style"`
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type portfolioAssetPayload struct {
	UserID     int64   `json:"user_id"`
	AssetClass string  `json:"asset_class"`
	AssetName  string  `json:"asset_name"`
	Ticker     *string `json:"ticker"`
	Value      string  `json:"value"`
	Percentage string  `json:"percentage"`
}

type financialGoalPayload struct {
	UserID        int64   `json:"user_id"`
	Name          string  `json:"name"`
	Icon          *string `json:"icon"`
	TargetAmount  string  `json:"target_amount"`
	CurrentAmount string  `json:"current_amount"`
	TargetDate    *string `json:"target_date"`
}

type marketIndicatorPayload struct {
	Name          string `json:"name"`
	Value         string `json:"value"`
	Change        string `json:"change"`
	PercentChange string `json:"percent_change"`
}

type chatCompletionPayload struct {
	UserID  int64  `json:"user_id"`
	Message string `json:"message"`
}

type crmTaskPayload struct {
	UserID        int64   `json:"user_id"`
	Subject       string  `json:"subject"`
	RelatedTo     string  `json:"related_to"`
	RelatedToName string  `json:"related_to_name"`
	DueDate       *string `json:"due_date"`
	Priority      string  `json:"priority"`
	Description   *string `json:"description"`
}

type aiSettingsPayload struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

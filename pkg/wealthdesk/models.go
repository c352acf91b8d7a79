package wealthdesk

// Risk profile and investment style defaults applied at registration.
const (
	DefaultRiskProfile     = "Moderate"
	DefaultInvestmentStyle = "Growth"
)

// User represents a registered dashboard user. PasswordHash never
// serializes to JSON.
type User struct {
	ID              int64   `json:"id"`
	Username        string  `json:"username"`
	PasswordHash    string  `json:"-"`
	Email           string  `json:"email"`
	FullName        string  `json:"full_name"`
	RiskProfile     string  `json:"risk_profile"`
	InvestmentStyle string  `json:"investment_style"`
	CreatedAt       *string `json:"created_at"`
}

// CreateUserRequest defines inputs to register a user.
type CreateUserRequest struct {
	Username        string
	Password        string
	Email           string
	FullName        string
	RiskProfile     string
	InvestmentStyle string
}

// PortfolioAsset represents one allocation slice of a user's portfolio.
type PortfolioAsset struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	AssetClass  string  `json:"asset_class"`
	AssetName   string  `json:"asset_name"`
	Ticker      *string `json:"ticker"`
	Value       Amount  `json:"value"`
	Percentage  Amount  `json:"percentage"`
	LastUpdated *string `json:"last_updated"`
}

// PortfolioAssetRequest defines inputs to add or update an asset.
// Numeric fields arrive as exact-decimal strings.
type PortfolioAssetRequest struct {
	UserID     int64
	AssetClass string
	AssetName  string
	Ticker     *string
	Value      string
	Percentage string
}

// FinancialGoal represents a savings goal with progress tracking.
type FinancialGoal struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	Name          string  `json:"name"`
	Icon          *string `json:"icon"`
	TargetAmount  Amount  `json:"target_amount"`
	CurrentAmount Amount  `json:"current_amount"`
	TargetDate    *string `json:"target_date"`
	CreatedAt     *string `json:"created_at"`
}

// FinancialGoalRequest defines inputs to add or update a goal.
type FinancialGoalRequest struct {
	UserID        int64
	Name          string
	Icon          *string
	TargetAmount  string
	CurrentAmount string
	TargetDate    *string
}

// MarketIndicator represents one tracked market index or rate.
type MarketIndicator struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Value         Amount  `json:"value"`
	Change        Amount  `json:"change"`
	PercentChange Amount  `json:"percent_change"`
	LastUpdated   *string `json:"last_updated"`
}

// MarketIndicatorRequest defines inputs to add or update an indicator.
type MarketIndicatorRequest struct {
	Name          string
	Value         string
	Change        string
	PercentChange string
}

// ChatMessage is one persisted conversation turn in the durable chat log.
type ChatMessage struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"user_id"`
	IsUserMessage bool   `json:"is_user_message"`
	Content       string `json:"content"`
	Timestamp     string `json:"timestamp"`
}

// CRMContact is an advisor-side client contact record.
type CRMContact struct {
	ID              string  `json:"id"`
	UserID          int64   `json:"user_id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone"`
	AccountID       string  `json:"account_id"`
	AccountName     string  `json:"account_name"`
	Status          string  `json:"status"`
	Sentiment       string  `json:"sentiment"`
	LastContactDate *string `json:"last_contact_date"`
	NextContactDate *string `json:"next_contact_date"`
	LastInteraction *string `json:"last_interaction"`
	Tags            *string `json:"tags"`
}

// CRMOpportunity is a sales opportunity tied to a client account.
type CRMOpportunity struct {
	ID          string  `json:"id"`
	UserID      int64   `json:"user_id"`
	Name        string  `json:"name"`
	AccountID   string  `json:"account_id"`
	AccountName string  `json:"account_name"`
	Stage       string  `json:"stage"`
	Amount      Amount  `json:"amount"`
	Probability int     `json:"probability"`
	CloseDate   *string `json:"close_date"`
	Type        string  `json:"type"`
	NextStep    *string `json:"next_step"`
}

// CRMTask is an advisor follow-up task.
type CRMTask struct {
	ID            string  `json:"id"`
	UserID        int64   `json:"user_id"`
	Subject       string  `json:"subject"`
	RelatedTo     string  `json:"related_to"`
	RelatedToName string  `json:"related_to_name"`
	DueDate       *string `json:"due_date"`
	Status        string  `json:"status"`
	Priority      string  `json:"priority"`
	Description   *string `json:"description"`
}

// CRMTaskRequest defines inputs to create a task.
type CRMTaskRequest struct {
	UserID        int64
	Subject       string
	RelatedTo     string
	RelatedToName string
	DueDate       *string
	Priority      string
	Description   *string
}

// AISettings holds the persisted advisor configuration. The API key is
// deliberately absent: it lives in the environment only.
type AISettings struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

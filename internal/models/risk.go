package models

// RiskLevel grades how risky acting on a prediction would be.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskAssessment is the risk assessor's verdict for one matchup.
type RiskAssessment struct {
	RiskLevel       RiskLevel `json:"risk_level"`
	ConfidenceScore float64   `json:"confidence_score"`
	ValueAvailable  bool      `json:"value_available"`
	Recommendation  string    `json:"recommendation"`
	BestBet         *ValueBet `json:"best_bet,omitempty"`
}

package coach

// InsightType classifies a coaching insight.
type InsightType string

const (
	InsightUpsell      InsightType = "Upsell"
	InsightRisk        InsightType = "Risk"
	InsightPromotion   InsightType = "Promotion"
	InsightPerformance InsightType = "Performance"
	InsightOpportunity InsightType = "Opportunity"
)

// ValidInsightType reports whether t is one of the five allowed values.
func ValidInsightType(t InsightType) bool {
	switch t {
	case InsightUpsell, InsightRisk, InsightPromotion, InsightPerformance, InsightOpportunity:
		return true
	}
	return false
}

// CoachInsight is a short actionable recommendation derived from sales data.
type CoachInsight struct {
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Prompt      string      `json:"prompt"`
}

package types

type RiskCategory string

const (
	CategoryLow    RiskCategory = "Low"
	CategoryMedium RiskCategory = "Medium"
	CategoryHigher RiskCategory = "Higher"
)

// RiskIndicator is one deterministic rule's output. Severity may be
// negative for mitigating factors.
type RiskIndicator struct {
	Tag      string `json:"tag"`
	Severity int    `json:"severity"`
	Note     string `json:"note,omitempty"`
}

type TradeOffDimension string

const (
	DimensionSafety      TradeOffDimension = "safety"
	DimensionCost        TradeOffDimension = "cost"
	DimensionConvenience TradeOffDimension = "convenience"
)

type TradeOffDirection string

const (
	DirectionFavorable   TradeOffDirection = "favorable"
	DirectionNeutral     TradeOffDirection = "neutral"
	DirectionUnfavorable TradeOffDirection = "unfavorable"
)

// TradeOff is a named dimension with a qualitative direction and the
// indicator tags that produced it. Created once per assessment, never
// mutated afterwards.
type TradeOff struct {
	Dimension  TradeOffDimension `json:"dimension"`
	Direction  TradeOffDirection `json:"direction"`
	Indicators []string          `json:"indicators,omitempty"`
}

// RiskAssessment aggregates RiskIndicators for one request. Indicator
// order equals rule evaluation order.
type RiskAssessment struct {
	TotalSeverity int             `json:"total_severity"`
	Category      RiskCategory    `json:"category"`
	Indicators    []RiskIndicator `json:"indicators"`
	TradeOffs     []TradeOff      `json:"trade_offs"`
}

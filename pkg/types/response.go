package types

type Status string

const (
	StatusSuccess            Status = "success"
	StatusNeedsMoreInfo      Status = "needs_more_info"
	StatusGuardrailTriggered Status = "guardrail_triggered"
	StatusError              Status = "error"
)

// Disclaimer is attached to every AdvisoryResponse.
const Disclaimer = "This is advisory guidance, not a definitive assessment. Visit areas personally and consult local sources for current information."

// NeighborhoodOption is one scored candidate area. The candidate list
// itself comes from an external catalog; the core only scores and
// explains it.
type NeighborhoodOption struct {
	Name           string         `json:"name"`
	TypicalRentKES int            `json:"typical_rent_kes"`
	CommuteMinutes int            `json:"commute_minutes"`
	Transportation string         `json:"transportation"`
	Amenities      []string       `json:"amenities,omitempty"`
	Assessment     RiskAssessment `json:"assessment"`
}

type Recommendations struct {
	Neighborhoods []NeighborhoodOption `json:"neighborhoods"`
}

// AdvisoryResponse is the terminal output of one evaluation.
// Constructed once per request, immutable, never persisted.
type AdvisoryResponse struct {
	AdviceID        string           `json:"advice_id"`
	Status          Status           `json:"status"`
	Requirements    HousingRequest   `json:"requirements"`
	Assessment      *RiskAssessment  `json:"assessment,omitempty"`
	Recommendations *Recommendations `json:"recommendations,omitempty"`
	Message         string           `json:"message"`
	Disclaimer      string           `json:"disclaimer"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

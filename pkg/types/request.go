package types

type RiskTolerance string

const (
	ToleranceLow    RiskTolerance = "low"
	ToleranceMedium RiskTolerance = "medium"
	ToleranceHigh   RiskTolerance = "high"
)

type ReturnTime string

const (
	ReturnDaytime ReturnTime = "daytime"
	ReturnEvening ReturnTime = "evening"
	ReturnNight   ReturnTime = "night"
)

type LivingArrangement string

const (
	LivingAlone  LivingArrangement = "alone"
	LivingShared LivingArrangement = "shared"
	LivingFamily LivingArrangement = "family"
)

type TransportMode string

const (
	TransportWalking  TransportMode = "walking"
	TransportBodaboda TransportMode = "bodaboda"
	TransportMatatu   TransportMode = "matatu"
	TransportPrivate  TransportMode = "private"
	TransportBus      TransportMode = "bus"
)

// HousingRequest is one normalized evaluation request. Monetary values
// are KES per month.
type HousingRequest struct {
	CurrentLocation    string            `json:"current_location,omitempty"`
	TargetLocation     string            `json:"target_location"`
	WorkplaceLocation  string            `json:"workplace_location,omitempty"`
	MonthlyBudget      int               `json:"monthly_budget"`
	Preferences        string            `json:"preferences,omitempty"`
	RiskTolerance      RiskTolerance     `json:"risk_tolerance"`
	TypicalReturnTime  ReturnTime        `json:"typical_return_time"`
	LivingArrangement  LivingArrangement `json:"living_arrangement"`
	TransportMode      TransportMode     `json:"transport_mode"`
	CommuteMinutes     int               `json:"commute_minutes"`
	FamiliarWithArea   bool              `json:"familiar_with_area"`
	HasNightActivities bool              `json:"has_night_activities"`
	HasAllDetails      bool              `json:"has_all_details"`
}

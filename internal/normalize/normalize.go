// Package normalize coerces raw request fields into the canonical
// HousingRequest schema and fails fast on out-of-range values. It never
// clamps: a malformed field is a ValidationError, not a correction.
package normalize

import (
	"fmt"
	"strings"

	"github.com/makaolabs/makao/pkg/types"
)

const (
	DefaultCommuteMinutes = 30
	MaxCommuteMinutes     = 180
	MaxMonthlyBudget      = 999999
)

// RawRequest is the wire-shaped input before defaults are applied.
// Pointer fields distinguish "absent" from a zero value.
type RawRequest struct {
	CurrentLocation    string `json:"current_location"`
	TargetLocation     string `json:"target_location"`
	WorkplaceLocation  string `json:"workplace_location"`
	MonthlyBudget      int    `json:"monthly_budget"`
	Preferences        string `json:"preferences"`
	RiskTolerance      string `json:"risk_tolerance"`
	TypicalReturnTime  string `json:"typical_return_time"`
	LivingArrangement  string `json:"living_arrangement"`
	TransportMode      string `json:"transport_mode"`
	CommuteMinutes     *int   `json:"commute_minutes"`
	FamiliarWithArea   bool   `json:"familiar_with_area"`
	HasNightActivities bool   `json:"has_night_activities"`
	HasAllDetails      bool   `json:"has_all_details"`
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Normalize applies defaults for optional fields and validates ranges.
// Completeness (HasAllDetails) is a signal, not an error; only
// malformed values reject the request here.
func Normalize(raw RawRequest) (types.HousingRequest, error) {
	req := types.HousingRequest{
		CurrentLocation:    strings.TrimSpace(raw.CurrentLocation),
		TargetLocation:     strings.TrimSpace(raw.TargetLocation),
		WorkplaceLocation:  strings.TrimSpace(raw.WorkplaceLocation),
		MonthlyBudget:      raw.MonthlyBudget,
		Preferences:        strings.TrimSpace(raw.Preferences),
		CommuteMinutes:     DefaultCommuteMinutes,
		FamiliarWithArea:   raw.FamiliarWithArea,
		HasNightActivities: raw.HasNightActivities,
		HasAllDetails:      raw.HasAllDetails,
	}

	tolerance, err := parseTolerance(raw.RiskTolerance)
	if err != nil {
		return types.HousingRequest{}, err
	}
	req.RiskTolerance = tolerance

	returnTime, err := parseReturnTime(raw.TypicalReturnTime)
	if err != nil {
		return types.HousingRequest{}, err
	}
	req.TypicalReturnTime = returnTime

	arrangement, err := parseArrangement(raw.LivingArrangement)
	if err != nil {
		return types.HousingRequest{}, err
	}
	req.LivingArrangement = arrangement

	transport, err := parseTransport(raw.TransportMode)
	if err != nil {
		return types.HousingRequest{}, err
	}
	req.TransportMode = transport

	if raw.CommuteMinutes != nil {
		req.CommuteMinutes = *raw.CommuteMinutes
	}
	if req.CommuteMinutes < 0 || req.CommuteMinutes > MaxCommuteMinutes {
		return types.HousingRequest{}, invalid("commute_minutes", fmt.Sprintf("must be 0-%d", MaxCommuteMinutes))
	}

	if req.MonthlyBudget < 0 || req.MonthlyBudget > MaxMonthlyBudget {
		return types.HousingRequest{}, invalid("monthly_budget", fmt.Sprintf("must be 0-%d", MaxMonthlyBudget))
	}
	if req.HasAllDetails && req.MonthlyBudget == 0 {
		return types.HousingRequest{}, invalid("monthly_budget", "must be greater than 0")
	}
	if req.HasAllDetails && req.TargetLocation == "" {
		return types.HousingRequest{}, invalid("target_location", "must not be empty")
	}

	return req, nil
}

// MissingFields names the critical fields still absent from a request.
// Used to phrase needs_more_info follow-ups.
func MissingFields(req types.HousingRequest) []string {
	var missing []string
	if req.TargetLocation == "" {
		missing = append(missing, "target location")
	}
	if req.WorkplaceLocation == "" {
		missing = append(missing, "workplace location")
	}
	if req.MonthlyBudget == 0 {
		missing = append(missing, "monthly budget")
	}
	return missing
}

func parseTolerance(s string) (types.RiskTolerance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return types.ToleranceMedium, nil
	case "low":
		return types.ToleranceLow, nil
	case "medium":
		return types.ToleranceMedium, nil
	case "high":
		return types.ToleranceHigh, nil
	}
	return "", invalid("risk_tolerance", "must be low, medium or high")
}

func parseReturnTime(s string) (types.ReturnTime, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return types.ReturnEvening, nil
	case "daytime":
		return types.ReturnDaytime, nil
	case "evening":
		return types.ReturnEvening, nil
	case "night":
		return types.ReturnNight, nil
	}
	return "", invalid("typical_return_time", "must be daytime, evening or night")
}

func parseArrangement(s string) (types.LivingArrangement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return types.LivingAlone, nil
	case "alone":
		return types.LivingAlone, nil
	case "shared":
		return types.LivingShared, nil
	case "family":
		return types.LivingFamily, nil
	}
	return "", invalid("living_arrangement", "must be alone, shared or family")
}

func parseTransport(s string) (types.TransportMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return types.TransportMatatu, nil
	case "walking":
		return types.TransportWalking, nil
	case "bodaboda":
		return types.TransportBodaboda, nil
	case "matatu":
		return types.TransportMatatu, nil
	case "private":
		return types.TransportPrivate, nil
	case "bus":
		return types.TransportBus, nil
	}
	return "", invalid("transport_mode", "must be walking, bodaboda, matatu, private or bus")
}

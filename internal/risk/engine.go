// Package risk is the deterministic rule engine. It maps a normalized
// request to an ordered list of situational risk indicators. Identical
// input always yields identical, order-stable output; no AI is involved
// anywhere in this package.
package risk

import (
	"fmt"

	"github.com/makaolabs/makao/internal/normalize"
	"github.com/makaolabs/makao/pkg/types"
)

// Indicator tags, in declaration order of the rules that emit them.
const (
	TagLateReturnLongCommute = "late-return-long-commute"
	TagUnlitWalkRisk         = "unlit-walk-risk"
	TagSoloNightReturn       = "solo-night-return"
	TagNightTransitAvailable = "public-transport-night-available"
	TagNightExposure         = "frequent-night-exposure"
	TagAreaFamiliarity       = "area-familiarity-mitigation"
	TagBodabodaNight         = "bodaboda-night-exposure"
	TagExtendedCommute       = "extended-commute"
)

type rule struct {
	tag      string
	severity int
	note     string
	when     func(req types.HousingRequest, rb Rulebook) bool
}

// The fixed rule table, evaluated in declaration order. Each rule is a
// total function over the request; an unmatched rule contributes no
// indicator at all, not a zero-severity one.
//
// The night-transit mitigation fires only when a night exposure rule
// (long commute or solo return) also fires: mitigations offset
// exposure, they never push a quiet profile below its daytime score.
var rules = []rule{
	{
		tag: TagLateReturnLongCommute, severity: 2,
		note: "Plan reliable transport options in advance for late returns.",
		when: func(req types.HousingRequest, rb Rulebook) bool {
			return req.TypicalReturnTime == types.ReturnNight && req.CommuteMinutes > rb.Thresholds.NightCommuteMinutes
		},
	},
	{
		tag: TagUnlitWalkRisk, severity: 2,
		note: "Ensure the route is well-lit and populated during your travel times.",
		when: func(req types.HousingRequest, rb Rulebook) bool {
			return req.TypicalReturnTime == types.ReturnNight && req.TransportMode == types.TransportWalking
		},
	},
	{
		tag: TagSoloNightReturn, severity: 1,
		note: "Establish local contacts and share your travel itinerary.",
		when: func(req types.HousingRequest, rb Rulebook) bool {
			return req.LivingArrangement == types.LivingAlone && req.TypicalReturnTime == types.ReturnNight
		},
	},
	{
		tag: TagNightTransitAvailable, severity: -1,
		note: "Matatu and bus corridors are assumed to keep running at night.",
		when: func(req types.HousingRequest, rb Rulebook) bool {
			if !rb.nightTransit() || req.TypicalReturnTime != types.ReturnNight {
				return false
			}
			if req.TransportMode != types.TransportMatatu && req.TransportMode != types.TransportBus {
				return false
			}
			return req.CommuteMinutes > rb.Thresholds.NightCommuteMinutes || req.LivingArrangement == types.LivingAlone
		},
	},
	{
		tag: TagNightExposure, severity: 1,
		note: "Prefer verified ride-hailing services for regular late-night travel.",
		when: func(req types.HousingRequest, rb Rulebook) bool {
			return req.HasNightActivities
		},
	},
	{
		tag: TagAreaFamiliarity, severity: -1,
		note: "Familiarity with local norms and routes reduces exposure.",
		when: func(req types.HousingRequest, rb Rulebook) bool {
			return req.FamiliarWithArea
		},
	},
	{
		tag: TagBodabodaNight, severity: 1,
		note: "Always wear a helmet and agree the fare before riding.",
		when: func(req types.HousingRequest, rb Rulebook) bool {
			return req.TypicalReturnTime == types.ReturnNight && req.TransportMode == types.TransportBodaboda
		},
	},
	{
		tag: TagExtendedCommute, severity: 1,
		note: "Consider options closer to the workplace.",
		when: func(req types.HousingRequest, rb Rulebook) bool {
			return req.CommuteMinutes > rb.Thresholds.ExtendedCommuteMinutes
		},
	},
}

type Engine struct {
	rulebook Rulebook
}

func NewEngine(rb Rulebook) *Engine {
	return &Engine{rulebook: rb}
}

func (e *Engine) Rulebook() Rulebook {
	return e.rulebook
}

// Evaluate applies every rule in declaration order. Malformed fields
// fail fast before any rule runs; the engine never silently clamps.
func (e *Engine) Evaluate(req types.HousingRequest) ([]types.RiskIndicator, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	var indicators []types.RiskIndicator
	for _, r := range rules {
		if !r.when(req, e.rulebook) {
			continue
		}
		indicators = append(indicators, types.RiskIndicator{
			Tag:      r.tag,
			Severity: e.rulebook.severity(r.tag, r.severity),
			Note:     r.note,
		})
	}
	return indicators, nil
}

func validate(req types.HousingRequest) error {
	if req.CommuteMinutes < 0 || req.CommuteMinutes > normalize.MaxCommuteMinutes {
		return &normalize.ValidationError{Field: "commute_minutes", Reason: fmt.Sprintf("must be 0-%d", normalize.MaxCommuteMinutes)}
	}
	if req.MonthlyBudget <= 0 || req.MonthlyBudget > normalize.MaxMonthlyBudget {
		return &normalize.ValidationError{Field: "monthly_budget", Reason: fmt.Sprintf("must be 1-%d", normalize.MaxMonthlyBudget)}
	}
	switch req.TypicalReturnTime {
	case types.ReturnDaytime, types.ReturnEvening, types.ReturnNight:
	default:
		return &normalize.ValidationError{Field: "typical_return_time", Reason: "unknown value"}
	}
	switch req.TransportMode {
	case types.TransportWalking, types.TransportBodaboda, types.TransportMatatu, types.TransportPrivate, types.TransportBus:
	default:
		return &normalize.ValidationError{Field: "transport_mode", Reason: "unknown value"}
	}
	switch req.LivingArrangement {
	case types.LivingAlone, types.LivingShared, types.LivingFamily:
	default:
		return &normalize.ValidationError{Field: "living_arrangement", Reason: "unknown value"}
	}
	return nil
}

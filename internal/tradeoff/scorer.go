// Package tradeoff aggregates risk indicators into a comparative risk
// category and an explicit trade-off list. Thresholds and reference
// bands are static, documented constants; ties break by total severity
// alone, never by secondary heuristics.
package tradeoff

import (
	"fmt"

	"github.com/makaolabs/makao/pkg/types"
)

// Category thresholds over the integer severity total.
const (
	lowCeiling    = 1 // total <= 1 -> Low
	mediumCeiling = 4 // 2..4 -> Medium, >= 5 -> Higher
)

// Sanity bounds for the aggregated total. A total outside this range
// means a rule produced a severity it never should have; that is a
// programming defect, not a user-facing condition.
const (
	totalFloor   = -10
	totalCeiling = 20
)

// Commute bands (minutes) for the convenience dimension.
const (
	shortCommuteMinutes = 30
	longCommuteMinutes  = 60
)

// BudgetBand is the reference monthly rent band (KES) within which a
// budget is considered comfortable for a given transport mode.
type BudgetBand struct {
	Low  int
	High int
}

// budgetBands maps transport mode to its reference band. Static
// reference values, not market data.
var budgetBands = map[types.TransportMode]BudgetBand{
	types.TransportWalking:  {Low: 15000, High: 45000},
	types.TransportBodaboda: {Low: 20000, High: 55000},
	types.TransportMatatu:   {Low: 25000, High: 60000},
	types.TransportBus:      {Low: 25000, High: 60000},
	types.TransportPrivate:  {Low: 60000, High: 150000},
}

// BandFor exposes the reference band for a transport mode.
func BandFor(mode types.TransportMode) BudgetBand {
	band, ok := budgetBands[mode]
	if !ok {
		panic(fmt.Sprintf("tradeoff: no budget band for transport mode %q", mode))
	}
	return band
}

// Score sums severities, maps the total onto the fixed category
// thresholds and derives the safety/cost/convenience trade-offs. The
// returned assessment is complete and never mutated afterwards.
func Score(indicators []types.RiskIndicator, req types.HousingRequest) types.RiskAssessment {
	total := 0
	for _, ind := range indicators {
		total += ind.Severity
	}
	if total < totalFloor || total > totalCeiling {
		panic(fmt.Sprintf("tradeoff: total severity %d outside sane bounds", total))
	}

	category := CategoryFor(total)

	assessment := types.RiskAssessment{
		TotalSeverity: total,
		Category:      category,
		Indicators:    indicators,
	}

	if len(indicators) == 0 {
		assessment.TradeOffs = neutralTradeOffs()
		return assessment
	}

	assessment.TradeOffs = []types.TradeOff{
		deriveSafety(category, indicators),
		deriveCost(category, req, indicators),
		deriveConvenience(req, indicators),
	}
	return assessment
}

// CategoryFor maps a severity total onto the fixed category thresholds.
func CategoryFor(total int) types.RiskCategory {
	switch {
	case total <= lowCeiling:
		return types.CategoryLow
	case total <= mediumCeiling:
		return types.CategoryMedium
	default:
		return types.CategoryHigher
	}
}

func neutralTradeOffs() []types.TradeOff {
	return []types.TradeOff{
		{Dimension: types.DimensionSafety, Direction: types.DirectionNeutral},
		{Dimension: types.DimensionCost, Direction: types.DirectionNeutral},
		{Dimension: types.DimensionConvenience, Direction: types.DirectionNeutral},
	}
}

func deriveSafety(category types.RiskCategory, indicators []types.RiskIndicator) types.TradeOff {
	switch category {
	case types.CategoryHigher:
		return types.TradeOff{Dimension: types.DimensionSafety, Direction: types.DirectionUnfavorable, Indicators: tagsWithSign(indicators, 1)}
	case types.CategoryMedium:
		return types.TradeOff{Dimension: types.DimensionSafety, Direction: types.DirectionNeutral, Indicators: tagsWithSign(indicators, 1)}
	case types.CategoryLow:
		return types.TradeOff{Dimension: types.DimensionSafety, Direction: types.DirectionFavorable, Indicators: tagsWithSign(indicators, -1)}
	default:
		panic(fmt.Sprintf("tradeoff: unknown risk category %q", category))
	}
}

// deriveCost flags the cost/safety tension: a budget below the
// transport mode's reference band compounds any non-Low category.
func deriveCost(category types.RiskCategory, req types.HousingRequest, indicators []types.RiskIndicator) types.TradeOff {
	band := BandFor(req.TransportMode)

	switch {
	case req.MonthlyBudget < band.Low && category != types.CategoryLow:
		return types.TradeOff{Dimension: types.DimensionCost, Direction: types.DirectionUnfavorable, Indicators: tagsWithSign(indicators, 1)}
	case req.MonthlyBudget < band.Low:
		return types.TradeOff{Dimension: types.DimensionCost, Direction: types.DirectionNeutral}
	case req.MonthlyBudget <= band.High:
		return types.TradeOff{Dimension: types.DimensionCost, Direction: types.DirectionFavorable}
	default:
		// Above the reference band: headroom, but no extra credit.
		return types.TradeOff{Dimension: types.DimensionCost, Direction: types.DirectionNeutral}
	}
}

func deriveConvenience(req types.HousingRequest, indicators []types.RiskIndicator) types.TradeOff {
	commuteTags := tagsMatching(indicators, func(tag string) bool {
		return tag == "late-return-long-commute" || tag == "extended-commute"
	})

	switch {
	case req.CommuteMinutes <= shortCommuteMinutes:
		return types.TradeOff{Dimension: types.DimensionConvenience, Direction: types.DirectionFavorable}
	case req.CommuteMinutes > longCommuteMinutes:
		return types.TradeOff{Dimension: types.DimensionConvenience, Direction: types.DirectionUnfavorable, Indicators: commuteTags}
	default:
		return types.TradeOff{Dimension: types.DimensionConvenience, Direction: types.DirectionNeutral, Indicators: commuteTags}
	}
}

// tagsWithSign collects indicator tags whose severity sign matches:
// sign > 0 selects aggravating indicators, sign < 0 mitigating ones.
func tagsWithSign(indicators []types.RiskIndicator, sign int) []string {
	var tags []string
	for _, ind := range indicators {
		if sign > 0 && ind.Severity > 0 {
			tags = append(tags, ind.Tag)
		}
		if sign < 0 && ind.Severity < 0 {
			tags = append(tags, ind.Tag)
		}
	}
	return tags
}

func tagsMatching(indicators []types.RiskIndicator, match func(string) bool) []string {
	var tags []string
	for _, ind := range indicators {
		if match(ind.Tag) {
			tags = append(tags, ind.Tag)
		}
	}
	return tags
}

package explain

import (
	"fmt"
	"strings"

	"github.com/makaolabs/makao/pkg/types"
)

// Fallback builds the templated explanation used whenever the provider
// is unavailable. It substitutes indicator names into fixed sentences;
// the response stays non-empty and the request still succeeds.
func Fallback(assessment types.RiskAssessment, req types.HousingRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "For %s with a monthly budget of KES %d, the situational risk category is %s.",
		req.TargetLocation, req.MonthlyBudget, assessment.Category)

	if len(assessment.Indicators) == 0 {
		b.WriteString(" No situational risk indicators were triggered by your inputs.")
	} else {
		tags := make([]string, 0, len(assessment.Indicators))
		for _, ind := range assessment.Indicators {
			tags = append(tags, ind.Tag)
		}
		fmt.Fprintf(&b, " Contributing factors, in evaluation order: %s.", strings.Join(tags, ", "))
	}

	for _, to := range assessment.TradeOffs {
		if to.Direction == types.DirectionNeutral {
			continue
		}
		fmt.Fprintf(&b, " The %s dimension is %s for your profile.", to.Dimension, to.Direction)
	}

	for _, ind := range assessment.Indicators {
		if ind.Note != "" {
			fmt.Fprintf(&b, " %s", ind.Note)
		}
	}

	return b.String()
}

package advisor

import (
	"strings"

	"github.com/google/uuid"

	"github.com/makaolabs/makao/internal/guardrail"
	"github.com/makaolabs/makao/pkg/types"
)

// The assembler is the only place responses are constructed, so the
// disclaimer and advice ID cannot be forgotten on any path.

func assembleSuccess(req types.HousingRequest, assessment types.RiskAssessment, recs *types.Recommendations, explanation, notice string) types.AdvisoryResponse {
	message := explanation
	if notice != "" {
		message = notice + "\n\n" + explanation
	}
	return types.AdvisoryResponse{
		AdviceID:        uuid.NewString(),
		Status:          types.StatusSuccess,
		Requirements:    req,
		Assessment:      &assessment,
		Recommendations: recs,
		Message:         strings.TrimSpace(message),
		Disclaimer:      types.Disclaimer,
	}
}

func assembleNeedsMoreInfo(req types.HousingRequest, notice string) types.AdvisoryResponse {
	message := followUpQuestion(req)
	if notice != "" {
		message = notice + "\n\n" + message
	}
	return types.AdvisoryResponse{
		AdviceID:     uuid.NewString(),
		Status:       types.StatusNeedsMoreInfo,
		Requirements: req,
		Message:      message,
		Disclaimer:   types.Disclaimer,
	}
}

func assembleGuardrailRejection(req types.HousingRequest, filter guardrail.Result) types.AdvisoryResponse {
	// The matched text is dropped entirely; only the notice goes back.
	req.Preferences = ""
	return types.AdvisoryResponse{
		AdviceID:     uuid.NewString(),
		Status:       types.StatusGuardrailTriggered,
		Requirements: req,
		Message:      filter.Notice,
		Disclaimer:   types.Disclaimer,
	}
}

// Package advisor wires the pipeline: normalize, guardrail, risk
// rules, trade-off scoring, explanation, assembly. Rules decide every
// outcome; the explanation layer only phrases what the rules produced.
package advisor

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/makaolabs/makao/internal/catalog"
	"github.com/makaolabs/makao/internal/explain"
	"github.com/makaolabs/makao/internal/guardrail"
	"github.com/makaolabs/makao/internal/normalize"
	"github.com/makaolabs/makao/internal/tradeoff"
	"github.com/makaolabs/makao/pkg/types"
)

// RuleEngine is the deterministic evaluation stage. Satisfied by
// *risk.Engine; tests substitute a counting stub.
type RuleEngine interface {
	Evaluate(req types.HousingRequest) ([]types.RiskIndicator, error)
}

type Service struct {
	Engine         RuleEngine
	Explainer      *explain.Explainer
	Catalog        catalog.Source
	CandidateLimit int
}

func NewService(engine RuleEngine, explainer *explain.Explainer, cat catalog.Source) *Service {
	return &Service{
		Engine:         engine,
		Explainer:      explainer,
		Catalog:        cat,
		CandidateLimit: 5,
	}
}

// Advise runs one stateless, synchronous evaluation. A ValidationError
// is returned to the caller; every other condition is expressed as a
// response status. The service holds no state between calls.
func (s *Service) Advise(ctx context.Context, raw normalize.RawRequest) (types.AdvisoryResponse, error) {
	req, err := normalize.Normalize(raw)
	if err != nil {
		return types.AdvisoryResponse{}, err
	}

	// Single policy enforcement point: abusive input is refused before
	// anything else, and reframed text replaces the original so it can
	// never reach scoring.
	filter := guardrail.Filter(req.Preferences)
	switch filter.Action {
	case guardrail.ActionReject:
		return assembleGuardrailRejection(req, filter), nil
	case guardrail.ActionReframe:
		req.Preferences = filter.Rewritten
	}

	if !req.HasAllDetails {
		return assembleNeedsMoreInfo(req, filter.Notice), nil
	}

	indicators, err := s.Engine.Evaluate(req)
	if err != nil {
		return types.AdvisoryResponse{}, err
	}
	assessment := tradeoff.Score(indicators, req)

	recommendations := s.scoreCandidates(req)

	explanation := s.Explainer.Explain(ctx, assessment, req)

	return assembleSuccess(req, assessment, recommendations, explanation, filter.Notice), nil
}

// scoreCandidates runs the rule engine and scorer once per candidate
// neighborhood, with the candidate's commute estimate overlaid on the
// user's profile. The candidate list itself comes from the catalog
// collaborator; the core never sources areas.
func (s *Service) scoreCandidates(req types.HousingRequest) *types.Recommendations {
	if s.Catalog == nil {
		return nil
	}
	candidates := s.Catalog.CandidatesFor(req.TargetLocation, s.CandidateLimit)
	if len(candidates) == 0 {
		return nil
	}

	options := make([]types.NeighborhoodOption, 0, len(candidates))
	for _, cand := range candidates {
		overlay := req
		overlay.CommuteMinutes = cand.CommuteMinutes

		indicators, err := s.Engine.Evaluate(overlay)
		if err != nil {
			// Candidate overlays reuse an already validated request, so
			// this is a catalog data problem; skip the entry.
			log.Printf("advisor: skipping candidate %s: %v", cand.Name, err)
			continue
		}

		options = append(options, types.NeighborhoodOption{
			Name:           cand.Name,
			TypicalRentKES: cand.TypicalRentKES,
			CommuteMinutes: cand.CommuteMinutes,
			Transportation: cand.Transportation,
			Amenities:      cand.Amenities,
			Assessment:     tradeoff.Score(indicators, overlay),
		})
	}
	if len(options) == 0 {
		return nil
	}
	return &types.Recommendations{Neighborhoods: options}
}

func followUpQuestion(req types.HousingRequest) string {
	missing := normalize.MissingFields(req)
	if len(missing) == 0 {
		return "It seems we have all the necessary information. Is there anything else you'd like to add?"
	}
	return fmt.Sprintf("To compare housing options I still need your %s. Could you share %s?",
		strings.Join(missing, ", "), pronounFor(missing))
}

func pronounFor(missing []string) string {
	if len(missing) == 1 {
		return "it"
	}
	return "them"
}

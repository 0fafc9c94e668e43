package explain

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/makaolabs/makao/pkg/types"
)

const (
	// Temperature is tuned for consistency, not creativity.
	promptTemperature = 0.2

	DefaultTimeout = 20 * time.Second
	retryBackoff   = 500 * time.Millisecond
)

// Explainer wraps a Provider behind a timeout and at most one retry.
// It never returns an error: any provider failure degrades to the
// templated fallback so a slow or hung provider cannot fail a request.
type Explainer struct {
	provider Provider
	timeout  time.Duration
}

// New builds an Explainer. A nil provider is valid and means
// template-only operation.
func New(provider Provider, timeout time.Duration) *Explainer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Explainer{provider: provider, timeout: timeout}
}

// Explain narrates the assessment. The prompt embeds only facts the
// scorer produced, so the model cannot invent new indicators.
func (e *Explainer) Explain(ctx context.Context, assessment types.RiskAssessment, req types.HousingRequest) string {
	if e.provider == nil {
		return Fallback(assessment, req)
	}

	prompt, err := buildPrompt(assessment, req)
	if err != nil {
		log.Printf("explain: prompt build failed: %v", err)
		return Fallback(assessment, req)
	}
	messages := []types.Message{{Role: "user", Content: prompt}}

	text, err := e.generateOnce(ctx, messages)
	if err != nil {
		log.Printf("explain: provider %s failed, retrying once: %v", e.provider.Name(), err)
		select {
		case <-ctx.Done():
			return Fallback(assessment, req)
		case <-time.After(retryBackoff):
		}
		text, err = e.generateOnce(ctx, messages)
	}
	if err != nil || text == "" {
		if err != nil {
			log.Printf("explain: provider %s unavailable, using template: %v", e.provider.Name(), err)
		}
		return Fallback(assessment, req)
	}
	return text
}

func (e *Explainer) generateOnce(ctx context.Context, messages []types.Message) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return e.provider.Generate(callCtx, messages, promptTemperature, FormatText)
}

func buildPrompt(assessment types.RiskAssessment, req types.HousingRequest) (string, error) {
	facts, err := json.MarshalIndent(struct {
		Category   types.RiskCategory    `json:"category"`
		Total      int                   `json:"total_severity"`
		Indicators []types.RiskIndicator `json:"indicators"`
		TradeOffs  []types.TradeOff      `json:"trade_offs"`
	}{
		Category:   assessment.Category,
		Total:      assessment.TotalSeverity,
		Indicators: assessment.Indicators,
		TradeOffs:  assessment.TradeOffs,
	}, "", "  ")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`You are an advisory housing assistant for relocation within Kenya.

A deterministic rule engine already evaluated the user's situation. Your only job is to phrase its output as a short, friendly explanation. Do not decide, re-score, rank areas, or introduce facts that are not listed below. Never label any area as safe or dangerous; talk about situational factors the user can influence.

User context: target location %s, workplace %s, monthly budget KES %d, typical return time %s, living %s, transport %s, commute %d minutes.

Rule engine output (narrate these facts only):
%s

Write 2-4 sentences. Use advisory language ("based on your inputs...") and mention each contributing indicator in plain words.`,
		req.TargetLocation, req.WorkplaceLocation, req.MonthlyBudget,
		req.TypicalReturnTime, req.LivingArrangement, req.TransportMode, req.CommuteMinutes,
		facts), nil
}

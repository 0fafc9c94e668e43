// Package guardrail is the single policy enforcement point for free
// text. It scans preference text for stigmatizing or predictive
// phrasing and either passes it through, substitutes a neutral
// reframing, or rejects it outright. It is side-effect-free; every
// downstream component trusts its classification.
package guardrail

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

type Action string

const (
	ActionPass    Action = "pass"
	ActionReframe Action = "reframe"
	ActionReject  Action = "reject"
)

// Reframing replaces matched preference text before it can reach
// scoring. The original text is never forwarded.
const Reframing = "I can help you compare housing options based on situational factors such as commute, budget, and amenities."

const rejectNotice = "I can only help with housing decisions. Let's keep the conversation focused on comparing housing options."

const reframeNotice = "I don't label areas as safe or dangerous. I can help you weigh situational factors like commute timing, transport and budget instead."

type Pattern struct {
	Name   string
	Action Action
	re     *regexp.Regexp
}

// Patterns is the fixed detection list, evaluated in order. Matching is
// independent per pattern; the first match decides the action, with
// reject patterns listed first so abusive input never reframes.
var Patterns = []Pattern{
	{Name: "harm-intent", Action: ActionReject, re: regexp.MustCompile(`\b(hurt|harm|attack|rob)\b.*\b(someone|somebody|people|residents)\b`)},
	{Name: "weapon-request", Action: ActionReject, re: regexp.MustCompile(`\b(get|buy|acquire|carry)\b.*\b(gun|weapon|knife)\b`)},
	{Name: "area-danger-label", Action: ActionReframe, re: regexp.MustCompile(`\bis\s+\S+\s+(dangerous|unsafe|safe)\b`)},
	{Name: "dangerous-area-query", Action: ActionReframe, re: regexp.MustCompile(`\bwhich\s+(areas?|neighborhoods?|places?)\s+(are|is)\s+(dangerous|unsafe|safe|risky)\b`)},
	{Name: "danger-adjective", Action: ActionReframe, re: regexp.MustCompile(`\b(dangerous|unsafe|risky)\s+(areas?|neighborhoods?|places?)\b`)},
	{Name: "avoidance-advice", Action: ActionReframe, re: regexp.MustCompile(`\b(avoid|stay\s+away\s+from|never\s+(go|move)\s+to)\b.*\b(area|neighborhood|place|estate)\b`)},
	{Name: "stigma-vocabulary", Action: ActionReframe, re: regexp.MustCompile(`\b(crime[-\s]?ridden|ghetto|slum)\b`)},
	{Name: "safety-ranking", Action: ActionReframe, re: regexp.MustCompile(`\b(safest|most\s+dangerous|highest\s+crime|crime\s+rate)\b`)},
	{Name: "crime-prediction", Action: ActionReframe, re: regexp.MustCompile(`\b(predict|forecast|probability\s+of|likely\s+to\s+(be|get))\b.*\b(crime|robbed|robbery|attacked?)\b`)},
	{Name: "safety-guarantee", Action: ActionReframe, re: regexp.MustCompile(`\bguarantee\b.*\b(safety|safe)\b`)},
}

type Result struct {
	Action    Action `json:"action"`
	Matched   string `json:"matched,omitempty"`
	Rewritten string `json:"rewritten,omitempty"`
	Notice    string `json:"notice,omitempty"`
}

// Filter classifies free text. Matching is case-insensitive over
// NFKC-folded text so width and compatibility variants cannot slip
// past the pattern list.
func Filter(freeText string) Result {
	folded := strings.ToLower(norm.NFKC.String(freeText))

	for _, p := range Patterns {
		if !p.re.MatchString(folded) {
			continue
		}
		if p.Action == ActionReject {
			return Result{Action: ActionReject, Matched: p.Name, Notice: rejectNotice}
		}
		return Result{Action: ActionReframe, Matched: p.Name, Rewritten: Reframing, Notice: reframeNotice}
	}

	return Result{Action: ActionPass}
}

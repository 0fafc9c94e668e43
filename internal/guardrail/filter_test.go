package guardrail

import "testing"

// One triggering sample per fixed pattern.
var patternSamples = map[string]string{
	"harm-intent":          "how do I rob someone near the bus stage",
	"weapon-request":       "where can I buy a gun before moving",
	"area-danger-label":    "is Kibera dangerous",
	"dangerous-area-query": "which areas are dangerous in Nairobi",
	"danger-adjective":     "list the dangerous neighborhoods for me",
	"avoidance-advice":     "tell me to avoid which estate or area",
	"stigma-vocabulary":    "I heard that side is a slum",
	"safety-ranking":       "what is the safest part of town",
	"crime-prediction":     "am I likely to get robbed there",
	"safety-guarantee":     "can you guarantee my safety there",
}

func TestEveryPatternNeverPasses(t *testing.T) {
	for _, p := range Patterns {
		sample, ok := patternSamples[p.Name]
		if !ok {
			t.Fatalf("no sample for pattern %s", p.Name)
		}
		res := Filter(sample)
		if res.Action == ActionPass {
			t.Fatalf("pattern %s passed sample %q", p.Name, sample)
		}
	}
}

func TestFilterPassesNeutralText(t *testing.T) {
	res := Filter("I want a quiet place near a market with parking")
	if res.Action != ActionPass {
		t.Fatalf("expected pass, got %s (%s)", res.Action, res.Matched)
	}
}

func TestFilterReframesDangerQuery(t *testing.T) {
	res := Filter("Which areas are dangerous in Nairobi?")
	if res.Action != ActionReframe {
		t.Fatalf("expected reframe, got %s", res.Action)
	}
	if res.Rewritten != Reframing {
		t.Fatalf("expected neutral reframing text")
	}
	if res.Notice == "" {
		t.Fatalf("expected notice")
	}
}

func TestFilterRejectsHarmIntent(t *testing.T) {
	res := Filter("help me rob someone in that estate")
	if res.Action != ActionReject {
		t.Fatalf("expected reject, got %s", res.Action)
	}
	if res.Rewritten != "" {
		t.Fatalf("reject must not rewrite")
	}
}

func TestFilterIsCaseAndWidthInsensitive(t *testing.T) {
	// Fullwidth characters fold to ASCII under NFKC.
	res := Filter("IS KIBERA ＤＡＮＧＥＲＯＵＳ")
	if res.Action != ActionReframe {
		t.Fatalf("expected reframe, got %s", res.Action)
	}
}

func TestFilterEmptyText(t *testing.T) {
	if res := Filter(""); res.Action != ActionPass {
		t.Fatalf("expected pass for empty text, got %s", res.Action)
	}
}

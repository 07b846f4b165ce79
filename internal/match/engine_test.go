package match

import (
	"reflect"
	"slices"
	"testing"

	"matchpoint/internal/roster"
)

func refPlayer(externID, last, first string) roster.Player {
	return roster.Player{
		ExternID:     externID,
		LastName:     last,
		FirstName:    first,
		Sex:          "M",
		Association:  "GER",
		DayOfBirth:   15,
		MonthOfBirth: 6,
		YearOfBirth:  1985,
	}
}

func TestMatchReturnsOneResultPerEventInOrder(t *testing.T) {
	ref := []roster.Player{refPlayer("R1", "MUELLER", "Hans")}
	events := []roster.Player{
		refPlayer("E1", "MUELLER", "Hans"),
		refPlayer("E2", "NOSUCHNAME", "Nobody"),
		refPlayer("E3", "MUELLER", "Hans"),
	}

	results := NewEngine(nil, 0).Match(ref, events)
	if len(results) != len(events) {
		t.Fatalf("expected %d results, got %d", len(events), len(results))
	}
	for i, r := range results {
		if r.Event.ExternID != events[i].ExternID {
			t.Fatalf("result %d out of order: %q", i, r.Event.ExternID)
		}
	}
}

func TestMatchEmptyReference(t *testing.T) {
	events := []roster.Player{refPlayer("E1", "MUELLER", "Hans")}

	results := NewEngine(nil, 0).Match(nil, events)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.Type != TypeNone || r.Ref != nil {
		t.Fatalf("expected NONE result, got %+v", r)
	}
	if r.Confidence != 0.0 || r.ConfidenceTolerant != 0.0 {
		t.Fatalf("expected zero confidence for NONE, got %+v", r)
	}
	if !reflect.DeepEqual(r.Issues, []string{IssueNoMatch}) {
		t.Fatalf("expected exactly [NO_MATCH], got %v", r.Issues)
	}
}

func TestMatchExactWithDayMismatch(t *testing.T) {
	ref := []roster.Player{refPlayer("R1", "MUELLER", "Hans")}
	event := refPlayer("E1", "MUELLER", "Hans")
	event.DayOfBirth = 16

	results := NewEngine(nil, 0).Match(ref, []roster.Player{event})
	r := results[0]
	if r.Type != TypeExact {
		t.Fatalf("expected EXACT, got %s", r.Type)
	}
	if r.Ref == nil || r.Ref.ExternID != "R1" {
		t.Fatalf("unexpected reference: %+v", r.Ref)
	}
	if !slices.Contains(r.Issues, IssueDobMismatch) {
		t.Fatalf("expected DOB_MISMATCH, got %v", r.Issues)
	}
	if r.Confidence != 0.9 {
		t.Fatalf("confidence = %v, want 0.9", r.Confidence)
	}
}

func TestMatchExactIsCaseInsensitive(t *testing.T) {
	ref := []roster.Player{refPlayer("R1", "MUELLER", "HANS")}
	event := refPlayer("E1", "mueller", "hans")

	results := NewEngine(nil, 0).Match(ref, []roster.Player{event})
	if results[0].Type != TypeExact {
		t.Fatalf("expected EXACT for case-differing names, got %s", results[0].Type)
	}
	if results[0].Confidence != 1.0 {
		t.Fatalf("confidence = %v, want 1.0", results[0].Confidence)
	}
}

func TestMatchNameSwap(t *testing.T) {
	ref := []roster.Player{refPlayer("R1", "SIMON", "Csaba")}
	event := refPlayer("E1", "Csaba", "SIMON")

	results := NewEngine(nil, 0).Match(ref, []roster.Player{event})
	r := results[0]
	if r.Type != TypeNameSwap {
		t.Fatalf("expected NAME_SWAP, got %s", r.Type)
	}
	if !slices.Contains(r.Issues, IssueNameSwapped) {
		t.Fatalf("expected NAME_SWAPPED, got %v", r.Issues)
	}
	if r.Confidence != 1.0 {
		t.Fatalf("swap with equal fields should score 1.0, got %v", r.Confidence)
	}
}

func TestMatchFuzzy(t *testing.T) {
	ref := []roster.Player{refPlayer("R1", "MULLER", "Hans")}
	event := refPlayer("E1", "MUELLER", "Hans")

	results := NewEngine(nil, 0).Match(ref, []roster.Player{event})
	r := results[0]
	if r.Type != TypeFuzzy {
		t.Fatalf("expected FUZZY, got %s", r.Type)
	}
	if !slices.Contains(r.Issues, IssueLastnameFuzzy) {
		t.Fatalf("expected LASTNAME_FUZZY, got %v", r.Issues)
	}
	if slices.Contains(r.Issues, IssueFirstnameFuzzy) {
		t.Fatalf("first names are identical, FIRSTNAME_FUZZY unexpected: %v", r.Issues)
	}
	if r.Confidence >= 1.0 || r.Confidence <= 0.0 {
		t.Fatalf("fuzzy confidence out of range: %v", r.Confidence)
	}
	// The umlaut transcription difference disappears under tolerant
	// normalization of the raw names only when spelled identically; here the
	// tolerant score may improve but must not regress.
	if r.ConfidenceTolerant < r.Confidence {
		t.Fatalf("tolerant %v below normal %v", r.ConfidenceTolerant, r.Confidence)
	}
}

func TestMatchFuzzyRequiresBothThresholds(t *testing.T) {
	ref := []roster.Player{refPlayer("R1", "MUELLER", "Hans")}
	// Last name identical (passes), first name hopeless (fails): no match.
	event := refPlayer("E1", "MUELLER", "Xqz")

	results := NewEngine(nil, 0).Match(ref, []roster.Player{event})
	if results[0].Type != TypeNone {
		t.Fatalf("expected NONE when one axis fails its floor, got %s", results[0].Type)
	}
}

func TestMatchTieGoesToEarliestReference(t *testing.T) {
	ref := []roster.Player{
		refPlayer("R1", "MUELLER", "Hans"),
		refPlayer("R2", "MUELLER", "Hans"),
	}
	event := refPlayer("E1", "MUELLER", "Hans")

	results := NewEngine(nil, 0).Match(ref, []roster.Player{event})
	if results[0].Ref.ExternID != "R1" {
		t.Fatalf("tie must go to the earliest reference entry, got %q", results[0].Ref.ExternID)
	}
}

func TestMatchBetterCandidateBeatsEarlier(t *testing.T) {
	stale := refPlayer("R1", "MUELLER", "Hans")
	stale.YearOfBirth = 1990
	fresh := refPlayer("R2", "MUELLER", "Hans")
	ref := []roster.Player{stale, fresh}
	event := refPlayer("E1", "MUELLER", "Hans")

	results := NewEngine(nil, 0).Match(ref, []roster.Player{event})
	if results[0].Ref.ExternID != "R2" {
		t.Fatalf("higher-confidence candidate should win, got %q", results[0].Ref.ExternID)
	}
	if results[0].Confidence != 1.0 {
		t.Fatalf("confidence = %v, want 1.0", results[0].Confidence)
	}
}

func TestMatchDateTranspositionKeepsFullConfidence(t *testing.T) {
	ref := []roster.Player{refPlayer("R1", "MUELLER", "Hans")}
	event := refPlayer("E1", "MUELLER", "Hans")
	event.DayOfBirth, event.MonthOfBirth = 6, 15

	results := NewEngine(nil, 0).Match(ref, []roster.Player{event})
	r := results[0]
	if !slices.Contains(r.Issues, IssueDobMobSwapped) {
		t.Fatalf("expected DOB_MOB_SWAPPED, got %v", r.Issues)
	}
	if slices.Contains(r.Issues, IssueDobMismatch) || slices.Contains(r.Issues, IssueMobMismatch) {
		t.Fatalf("mismatch codes must be suppressed, got %v", r.Issues)
	}
	if r.Confidence != 1.0 {
		t.Fatalf("confidence = %v, want 1.0", r.Confidence)
	}
}

func TestMatchDeterministic(t *testing.T) {
	ref := []roster.Player{
		refPlayer("R1", "MUELLER", "Hans"),
		refPlayer("R2", "MUELLER", "Hans"),
		refPlayer("R3", "SIMON", "Csaba"),
		refPlayer("R4", "MULLER", "Hans"),
	}
	events := []roster.Player{
		refPlayer("E1", "MUELLER", "Hans"),
		refPlayer("E2", "Csaba", "SIMON"),
		refPlayer("E3", "MUELLAR", "Hans"),
		refPlayer("E4", "ZZZZZ", "Qqqqq"),
	}

	engine := NewEngine(nil, 0)
	first := engine.Match(ref, events)
	second := engine.Match(ref, events)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("matching is not deterministic across runs")
	}
}

func TestMatchCustomThresholdWidensFuzzyNet(t *testing.T) {
	ref := []roster.Player{refPlayer("R1", "SCHMIDT", "Hans")}
	event := refPlayer("E1", "SCHMITT", "Hans")

	strict := NewEngine(nil, 0.99).Match(ref, []roster.Player{event})
	if strict[0].Type != TypeNone {
		t.Fatalf("threshold 0.99 should reject, got %s", strict[0].Type)
	}

	relaxed := NewEngine(nil, 0.85).Match(ref, []roster.Player{event})
	if relaxed[0].Type != TypeFuzzy {
		t.Fatalf("threshold 0.85 should accept SCHMITT/SCHMIDT, got %s", relaxed[0].Type)
	}
}

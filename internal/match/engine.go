package match

import (
	"log/slog"

	"matchpoint/internal/logging"
	"matchpoint/internal/roster"
)

// Default fuzzy similarity floors. The last-name floor is configurable; the
// first-name floor is a fixed constant of the current design.
const (
	DefaultLastnameThreshold = 0.85
	FirstnameThreshold       = 0.80
)

// Type classifies how a match was found.
type Type string

const (
	TypeExact    Type = "EXACT"
	TypeNameSwap Type = "NAME_SWAP"
	TypeFuzzy    Type = "FUZZY"
	TypeNone     Type = "NONE"
)

// Result is the outcome of matching one event player against the reference
// roster. Ref is nil exactly when Type is TypeNone, in which case Issues is
// the single NO_MATCH code and both confidence values are zero.
type Result struct {
	Event              roster.Player
	Ref                *roster.Player
	Type               Type
	Confidence         float64
	ConfidenceTolerant float64
	Issues             []string
}

// Engine resolves event players against a reference roster.
type Engine struct {
	logger            *slog.Logger
	lastnameThreshold float64
}

// NewEngine creates a matching engine. A non-positive threshold selects the
// default last-name floor.
func NewEngine(logger *slog.Logger, lastnameThreshold float64) *Engine {
	if lastnameThreshold <= 0 {
		lastnameThreshold = DefaultLastnameThreshold
	}
	return &Engine{
		logger:            logging.NewComponentLogger(logger, "matcher"),
		lastnameThreshold: lastnameThreshold,
	}
}

// Match resolves every event player against the reference roster and returns
// one result per event entry, in event order. The four stages per entry are:
// exact name lookup, swapped-name lookup, fuzzy scan, and no-match. Within a
// stage, ties on confidence go to the earliest reference-file entry.
func (e *Engine) Match(refPlayers, eventPlayers []roster.Player) []Result {
	index := BuildIndex(refPlayers)

	results := make([]Result, 0, len(eventPlayers))
	for i := range eventPlayers {
		results = append(results, e.matchOne(index, refPlayers, &eventPlayers[i]))
	}

	counts := make(map[Type]int, 4)
	for _, r := range results {
		counts[r.Type]++
	}
	e.logger.Info("matching complete",
		logging.Int("players", len(results)),
		logging.Int("exact", counts[TypeExact]),
		logging.Int("name_swap", counts[TypeNameSwap]),
		logging.Int("fuzzy", counts[TypeFuzzy]),
		logging.Int("none", counts[TypeNone]))

	return results
}

func (e *Engine) matchOne(index *Index, refPlayers []roster.Player, event *roster.Player) Result {
	last := NormalizeKey(event.LastName)
	first := NormalizeKey(event.FirstName)

	// Stage 1: exact name match.
	if candidates := index.Lookup(last, first); len(candidates) > 0 {
		return pickBest(event, candidates, TypeExact)
	}

	// Stage 2: swapped last/first name. The swap itself is treated as a
	// perfect name match; the NAME_SWAPPED issue records the anomaly.
	if candidates := index.LookupSwapped(last, first); len(candidates) > 0 {
		return pickBest(event, candidates, TypeNameSwap)
	}

	// Stage 3: fuzzy scan over the whole reference roster.
	if result, ok := e.fuzzyMatch(refPlayers, event, last, first); ok {
		return result
	}

	// Stage 4: nothing qualified.
	return Result{
		Event:  *event,
		Type:   TypeNone,
		Issues: []string{IssueNoMatch},
	}
}

// pickBest scores candidates that share an index key and keeps the one with
// the strictly highest confidence. Candidates arrive in reference-file order
// and the comparison is strict, so the earliest entry wins ties.
func pickBest(event *roster.Player, candidates []*roster.Player, matchType Type) Result {
	var best Result
	bestConfidence := -1.0

	for _, ref := range candidates {
		confidence := Confidence(event, ref, 1.0, 1.0)
		if confidence > bestConfidence {
			bestConfidence = confidence
			best = Result{
				Event:              *event,
				Ref:                ref,
				Type:               matchType,
				Confidence:         confidence,
				ConfidenceTolerant: ConfidenceTolerant(event, ref, 1.0, 1.0),
				Issues:             DetectIssues(event, ref, matchType, 1.0, 1.0),
			}
		}
	}
	return best
}

func (e *Engine) fuzzyMatch(refPlayers []roster.Player, event *roster.Player, last, first string) (Result, bool) {
	var best Result
	bestConfidence := -1.0
	found := false

	for i := range refPlayers {
		ref := &refPlayers[i]
		lastSim := Similarity(last, NormalizeKey(ref.LastName))
		if lastSim < e.lastnameThreshold {
			continue
		}
		firstSim := Similarity(first, NormalizeKey(ref.FirstName))
		if firstSim < FirstnameThreshold {
			continue
		}

		confidence := Confidence(event, ref, lastSim, firstSim)
		if confidence > bestConfidence {
			bestConfidence = confidence
			found = true
			best = Result{
				Event:              *event,
				Ref:                ref,
				Type:               TypeFuzzy,
				Confidence:         confidence,
				ConfidenceTolerant: ConfidenceTolerant(event, ref, lastSim, firstSim),
				Issues:             DetectIssues(event, ref, TypeFuzzy, lastSim, firstSim),
			}
		}
	}
	return best, found
}

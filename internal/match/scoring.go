package match

import (
	"math"
	"strings"

	"matchpoint/internal/roster"
)

// Issue codes attached to match results, in the order the detector emits
// them. Report rendering relies on these exact strings.
const (
	IssueNoMatch        = "NO_MATCH"
	IssueNameSwapped    = "NAME_SWAPPED"
	IssueLastnameFuzzy  = "LASTNAME_FUZZY"
	IssueFirstnameFuzzy = "FIRSTNAME_FUZZY"
	IssueDobMobSwapped  = "DOB_MOB_SWAPPED"
	IssueDobMismatch    = "DOB_MISMATCH"
	IssueMobMismatch    = "MOB_MISMATCH"
	IssueYobMismatch    = "YOB_MISMATCH"
	IssueSexMismatch    = "SEX_MISMATCH"
	IssueAssocMismatch  = "ASSOC_MISMATCH"
)

// Weights holds the per-component contribution to the confidence score.
// The components must sum to 1.0; this is a configuration invariant, not
// something recomputed at runtime.
type Weights struct {
	Lastname     float64
	Firstname    float64
	DayOfBirth   float64
	MonthOfBirth float64
	YearOfBirth  float64
	Sex          float64
	Association  float64
}

// DefaultWeights returns the fixed scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Lastname:     0.30,
		Firstname:    0.25,
		DayOfBirth:   0.10,
		MonthOfBirth: 0.10,
		YearOfBirth:  0.15,
		Sex:          0.05,
		Association:  0.05,
	}
}

// Sum returns the total of all component weights.
func (w Weights) Sum() float64 {
	return w.Lastname + w.Firstname + w.DayOfBirth + w.MonthOfBirth +
		w.YearOfBirth + w.Sex + w.Association
}

var weights = DefaultWeights()

// IsDateTransposed reports whether the event's day and month of birth appear
// swapped relative to the reference: day and month cross-match, the year
// agrees, and day differs from month (a swap of equal values carries no
// signal).
func IsDateTransposed(event, ref *roster.Player) bool {
	return event.DayOfBirth == ref.MonthOfBirth &&
		event.MonthOfBirth == ref.DayOfBirth &&
		event.YearOfBirth == ref.YearOfBirth &&
		event.DayOfBirth != event.MonthOfBirth
}

// Confidence computes the weighted match score between an event player and a
// reference candidate. Name components contribute their similarity directly;
// the remaining components contribute their full weight on equality
// (case-insensitive for sex and association). A detected day/month
// transposition earns full credit for both date components. The result is
// rounded to four decimal places; downstream tie-breaking depends on that
// rounding.
func Confidence(event, ref *roster.Player, lastSim, firstSim float64) float64 {
	score := weights.Lastname*lastSim + weights.Firstname*firstSim

	transposed := IsDateTransposed(event, ref)
	if transposed || event.DayOfBirth == ref.DayOfBirth {
		score += weights.DayOfBirth
	}
	if transposed || event.MonthOfBirth == ref.MonthOfBirth {
		score += weights.MonthOfBirth
	}
	if event.YearOfBirth == ref.YearOfBirth {
		score += weights.YearOfBirth
	}
	if strings.EqualFold(event.Sex, ref.Sex) {
		score += weights.Sex
	}
	if strings.EqualFold(event.Association, ref.Association) {
		score += weights.Association
	}
	return round4(score)
}

// ConfidenceTolerant computes the same weighted score with tolerant name
// similarities: 1.0 when the diacritic/punctuation-stripped forms match
// exactly, otherwise the better of the original similarity and the
// similarity of the stripped forms.
func ConfidenceTolerant(event, ref *roster.Player, lastSim, firstSim float64) float64 {
	tolerantLast := tolerantSimilarity(event.LastName, ref.LastName, lastSim)
	tolerantFirst := tolerantSimilarity(event.FirstName, ref.FirstName, firstSim)
	return Confidence(event, ref, tolerantLast, tolerantFirst)
}

func tolerantSimilarity(eventName, refName string, baseSim float64) float64 {
	eventKey := NormalizeTolerant(eventName)
	refKey := NormalizeTolerant(refName)
	if eventKey == refKey {
		return 1.0
	}
	if sim := Similarity(eventKey, refKey); sim > baseSim {
		return sim
	}
	return baseSim
}

// DetectIssues enumerates the discrepancy codes between an event player and
// a matched reference player. The codes are evaluated independently of the
// confidence score. A detected date transposition suppresses the individual
// day and month mismatch codes.
func DetectIssues(event, ref *roster.Player, matchType Type, lastSim, firstSim float64) []string {
	var issues []string

	if matchType == TypeNameSwap {
		issues = append(issues, IssueNameSwapped)
	}
	if matchType == TypeFuzzy && lastSim < 1.0 {
		issues = append(issues, IssueLastnameFuzzy)
	}
	if matchType == TypeFuzzy && firstSim < 1.0 {
		issues = append(issues, IssueFirstnameFuzzy)
	}

	if IsDateTransposed(event, ref) {
		issues = append(issues, IssueDobMobSwapped)
	} else {
		if event.DayOfBirth != ref.DayOfBirth {
			issues = append(issues, IssueDobMismatch)
		}
		if event.MonthOfBirth != ref.MonthOfBirth {
			issues = append(issues, IssueMobMismatch)
		}
	}

	if event.YearOfBirth != ref.YearOfBirth {
		issues = append(issues, IssueYobMismatch)
	}
	if !strings.EqualFold(event.Sex, ref.Sex) {
		issues = append(issues, IssueSexMismatch)
	}
	if !strings.EqualFold(event.Association, ref.Association) {
		issues = append(issues, IssueAssocMismatch)
	}

	return issues
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

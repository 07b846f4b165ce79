package report

import "matchpoint/internal/match"

// Stats aggregates match results for summaries and the HTML header block.
type Stats struct {
	Total    int
	Exact    int
	NameSwap int
	Fuzzy    int
	None     int

	DobMobSwapped int
	DobMismatch   int
	MobMismatch   int
	YobMismatch   int
	SexMismatch   int
	AssocMismatch int

	// IssuesTotal counts results carrying at least one issue other than
	// the NO_MATCH marker.
	IssuesTotal int
}

func ComputeStats(results []match.Result) Stats {
	var s Stats
	s.Total = len(results)
	for _, r := range results {
		switch r.Type {
		case match.TypeExact:
			s.Exact++
		case match.TypeNameSwap:
			s.NameSwap++
		case match.TypeFuzzy:
			s.Fuzzy++
		case match.TypeNone:
			s.None++
		}
		flagged := false
		for _, issue := range r.Issues {
			switch issue {
			case match.IssueDobMobSwapped:
				s.DobMobSwapped++
			case match.IssueDobMismatch:
				s.DobMismatch++
			case match.IssueMobMismatch:
				s.MobMismatch++
			case match.IssueYobMismatch:
				s.YobMismatch++
			case match.IssueSexMismatch:
				s.SexMismatch++
			case match.IssueAssocMismatch:
				s.AssocMismatch++
			}
			if issue != match.IssueNoMatch {
				flagged = true
			}
		}
		if flagged {
			s.IssuesTotal++
		}
	}
	return s
}

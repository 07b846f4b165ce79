package match

import "matchpoint/internal/roster"

type nameKey struct {
	last  string
	first string
}

// Index provides hash lookups over the reference roster: one keyed by
// (last, first) and one keyed by (first, last) for swapped-name detection.
// Candidate lists preserve reference-file order; duplicates are retained.
type Index struct {
	byName    map[nameKey][]*roster.Player
	bySwapped map[nameKey][]*roster.Player
}

// BuildIndex constructs the lookup index for one matching run. The index is
// a pure function of the reference roster and must be rebuilt whenever the
// roster changes.
func BuildIndex(players []roster.Player) *Index {
	ix := &Index{
		byName:    make(map[nameKey][]*roster.Player, len(players)),
		bySwapped: make(map[nameKey][]*roster.Player, len(players)),
	}
	for i := range players {
		p := &players[i]
		last := NormalizeKey(p.LastName)
		first := NormalizeKey(p.FirstName)
		ix.byName[nameKey{last, first}] = append(ix.byName[nameKey{last, first}], p)
		ix.bySwapped[nameKey{first, last}] = append(ix.bySwapped[nameKey{first, last}], p)
	}
	return ix
}

// Lookup returns the reference players whose normalized (last, first) pair
// equals the given key, in reference-file order.
func (ix *Index) Lookup(last, first string) []*roster.Player {
	return ix.byName[nameKey{last, first}]
}

// LookupSwapped returns the reference players whose normalized (first, last)
// pair equals the given (last, first) key, in reference-file order.
func (ix *Index) LookupSwapped(last, first string) []*roster.Player {
	return ix.bySwapped[nameKey{last, first}]
}

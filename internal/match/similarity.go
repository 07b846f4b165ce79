package match

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// jaroWinkler is a reusable metric instance; it carries no state between
// comparisons.
var jaroWinkler = metrics.NewJaroWinkler()

// Similarity returns the Jaro-Winkler similarity of two strings in [0, 1].
// Callers are expected to pass already-normalized values; no case folding
// happens here.
func Similarity(a, b string) float64 {
	return strutil.Similarity(a, b, jaroWinkler)
}

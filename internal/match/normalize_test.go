package match

import "testing"

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"  Mueller ": "MUELLER",
		"Simon":      "SIMON",
		"":           "",
		"  ":         "",
	}
	for input, want := range cases {
		if got := NormalizeKey(input); got != want {
			t.Fatalf("NormalizeKey(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeTolerantStripsAccents(t *testing.T) {
	cases := map[string]string{
		"José":     "JOSE",
		"François": "FRANCOIS",
		"Müller":   "MULLER",
		"Señor":    "SENOR",
		"Àlex":     "ALEX",
		"ö":        "O",
		"ü":        "U",
		"ä":        "A",
	}
	for input, want := range cases {
		if got := NormalizeTolerant(input); got != want {
			t.Fatalf("NormalizeTolerant(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeTolerantStripsPunctuation(t *testing.T) {
	cases := map[string]string{
		"Jean-Pierre":      "JEANPIERRE",
		"O.Brien":          "OBRIEN",
		"van der Berg":     "VANDERBERG",
		"  Juan  Carlos ":  "JUANCARLOS",
		"José-María":       "JOSEMARIA",
		"Smith, Jr; a.b.c": "SMITHJRABC",
	}
	for input, want := range cases {
		if got := NormalizeTolerant(input); got != want {
			t.Fatalf("NormalizeTolerant(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeTolerantASCIIUnchanged(t *testing.T) {
	if got := NormalizeTolerant("MUELLER"); got != "MUELLER" {
		t.Fatalf("plain ASCII changed: %q", got)
	}
}

func TestNormalizeTolerantIdempotent(t *testing.T) {
	inputs := []string{"José-María", "van der Berg", "Müller", "O.Brien", "plain"}
	for _, input := range inputs {
		once := NormalizeTolerant(input)
		twice := NormalizeTolerant(once)
		if once != twice {
			t.Fatalf("NormalizeTolerant not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

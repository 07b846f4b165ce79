package roster

// Player is one roster entry from a reference or event CSV. Records are
// immutable once read; the matching engine compares them only through
// normalized keys derived from these fields.
type Player struct {
	ExternID    string
	LastName    string
	FirstName   string
	Sex         string
	Association string
	// Birth date triplet. Zero means unknown or unparsable and is compared
	// like any other value.
	DayOfBirth   int
	MonthOfBirth int
	YearOfBirth  int
}

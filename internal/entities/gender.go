package entities

// Gender of a general. Rule effects may change it during a game.
type Gender int

// Genders
const (
	Male Gender = iota
	Female
	Neuter
)

// String returns "male", "female" or "neuter". Every value other than Male
// and Female reports "neuter".
func (g Gender) String() string {
	switch g {
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return "neuter"
	}
}

// ParseGender maps "male", "female" and "neuter" back to a Gender.
func ParseGender(s string) (Gender, bool) {
	switch s {
	case "male":
		return Male, true
	case "female":
		return Female, true
	case "neuter":
		return Neuter, true
	default:
		return Male, false
	}
}

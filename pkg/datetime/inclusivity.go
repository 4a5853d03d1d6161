package datetime

import "fmt"

// Inclusivity selects which bounds of a range count as inside it.
// "[" and "]" include a bound, "(" and ")" exclude it.
type Inclusivity string

const (
	Inclusive      Inclusivity = "[]"
	Exclusive      Inclusivity = "()"
	InclusiveStart Inclusivity = "[)"
	InclusiveEnd   Inclusivity = "(]"
)

// ParseInclusivity validates s. An empty string yields Inclusive.
func ParseInclusivity(s string) (Inclusivity, error) {
	switch i := Inclusivity(s); i {
	case "":
		return Inclusive, nil
	case Inclusive, Exclusive, InclusiveStart, InclusiveEnd:
		return i, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidInclusivity, s)
}

func (i Inclusivity) excludesStart() bool { return len(i) > 0 && i[0] == '(' }
func (i Inclusivity) excludesEnd() bool   { return len(i) > 1 && i[1] == ')' }

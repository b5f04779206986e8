// Package suggest: criterion enumeration, selection result, and sentinels.
package suggest

import "errors"

// Sentinel errors for suggestion operations.
var (
	// ErrInvalidCap indicates a credit budget below 1.
	ErrInvalidCap = errors.New("suggest: credit cap must be positive")

	// ErrUnknownCriterion indicates an unrecognized ranking criterion name.
	ErrUnknownCriterion = errors.New("suggest: unknown criterion")
)

// Criterion names a ranking total order for candidate courses.
type Criterion string

// Supported ranking criteria.
const (
	// Desbloqueo ranks by descending unlock count, then ascending credits,
	// then ascending code.
	Desbloqueo Criterion = "desbloqueo"

	// Creditos ranks by ascending credits, then descending unlock count,
	// then ascending code.
	Creditos Criterion = "creditos"

	// Nivel ranks by ascending numeric level derived from the code, then
	// ascending code.
	Nivel Criterion = "nivel"
)

// ParseCriterion maps a user-supplied name onto a Criterion.
// The empty string defaults to Desbloqueo; anything else unrecognized
// returns ErrUnknownCriterion.
func ParseCriterion(name string) (Criterion, error) {
	switch Criterion(name) {
	case "":
		return Desbloqueo, nil
	case Desbloqueo, Creditos, Nivel:
		return Criterion(name), nil
	default:
		return "", ErrUnknownCriterion
	}
}

// levelUnknown is the level assigned to codes without any digit group;
// it sorts such codes after every numbered level.
const levelUnknown = 9999

// Level extracts the numeric level of a course code: the value of its first
// run of decimal digits ("MAT1020" → 1020, "EDA1" → 1), or levelUnknown
// when the code has none.
func Level(code string) int {
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			continue
		}
		level := 0
		for ; i < len(code) && code[i] >= '0' && code[i] <= '9'; i++ {
			level = level*10 + int(code[i]-'0')
		}

		return level
	}

	return levelUnknown
}

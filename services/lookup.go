package services

import (
	"strings"

	"fightstats/models"

	"github.com/cockroachdb/errors"
)

// ErrFighterNotFound is returned when a name matches no stored fighter
var ErrFighterNotFound = errors.New("fighter not found")

// FindFighter matches name case-insensitively: an exact match first, then a
// unique substring match.
func FindFighter(fighters []*models.CleanedFighter, name string) (*models.CleanedFighter, error) {
	needle := strings.ToLower(strings.Join(strings.Fields(name), " "))
	if needle == "" {
		return nil, errors.Wrap(ErrFighterNotFound, "empty name")
	}

	var partial []*models.CleanedFighter
	for _, f := range fighters {
		candidate := strings.ToLower(f.Name)
		if candidate == needle {
			return f, nil
		}
		if strings.Contains(candidate, needle) {
			partial = append(partial, f)
		}
	}

	switch len(partial) {
	case 0:
		return nil, errors.Wrapf(ErrFighterNotFound, "%q", name)
	case 1:
		return partial[0], nil
	default:
		matches := make([]string, 0, len(partial))
		for _, f := range partial {
			matches = append(matches, f.Name)
		}
		return nil, errors.Newf("%q is ambiguous: %s", name, strings.Join(matches, ", "))
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/CrestNiraj12/schoolreview/domain"
)

// Route names one review or report. ID is kept exactly as typed so the
// controller decides whether it is a valid id.
type Route struct {
	Kind domain.EntityKind
	ID   string
}

func (r Route) String() string {
	return r.Kind.Segment() + " " + r.ID
}

// ParseRoute reads "review 42", "report/7" or, relative to current, a bare
// id such as "42".
func ParseRoute(input string, current domain.EntityKind) (Route, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(input), func(r rune) bool {
		return r == ' ' || r == '/' || r == '\t'
	})
	switch len(fields) {
	case 1:
		if kind, err := domain.ParseKind(fields[0]); err == nil {
			return Route{}, fmt.Errorf("missing %s id", kind.Segment())
		}
		return Route{Kind: current, ID: fields[0]}, nil
	case 2:
		kind, err := domain.ParseKind(fields[0])
		if err != nil {
			return Route{}, err
		}
		return Route{Kind: kind, ID: fields[1]}, nil
	case 0:
		return Route{}, fmt.Errorf("empty route")
	default:
		return Route{}, fmt.Errorf("unexpected route %q", input)
	}
}

package curriculum

import (
	"net/url"
	"strings"

	"github.com/alexanderramin/rncourse/internal/domain"
)

// AllValidRoutes lists the root path followed by, for each day, the
// challenge path and then the four session paths. It is used for sitemap
// generation.
func AllValidRoutes() []string {
	routes := make([]string, 0, 1+domain.LastDay*(domain.SessionsPerDay+1))
	routes = append(routes, RootPath)
	for day := domain.FirstDay; day <= domain.LastDay; day++ {
		routes = append(routes, SessionPath(day, domain.ChallengeSession))
		for session := 1; session <= domain.SessionsPerDay; session++ {
			routes = append(routes, SessionPath(day, session))
		}
	}
	return routes
}

// Sequence lists every identifier in curriculum order, from day 1
// session 1 to the last day's challenge.
func Sequence() []domain.SessionID {
	ids := make([]domain.SessionID, 0, domain.LastDay*(domain.SessionsPerDay+1))
	id, ok := domain.SessionID{Day: domain.FirstDay, Session: 1}, true
	for ok {
		ids = append(ids, id)
		id, ok = NextSession(id.Day, id.Session)
	}
	return ids
}

// Days returns the course outline in curriculum order.
func Days() []domain.Day {
	days := make([]domain.Day, 0, domain.LastDay)
	for _, id := range Sequence() {
		if len(days) == 0 || days[len(days)-1].Number != id.Day {
			days = append(days, domain.Day{Number: id.Day, Title: DayTitle(id.Day)})
		}
		d := &days[len(days)-1]
		d.Entries = append(d.Entries, domain.Entry{
			ID:    id,
			Path:  SessionPath(id.Day, id.Session),
			Title: SessionLabel(id.Day, id.Session),
		})
	}
	return days
}

// ParsePath splits a URL path such as "/day3/session-2" into route
// params. Query strings, fragments and repeated leading or trailing slashes
// are ignored. A
// path with only a day segment yields params with no session token. Paths
// with more than two segments do not parse.
func ParsePath(path string) (domain.RouteParams, bool) {
	if strings.HasPrefix(path, "//") {
		path = "/" + strings.TrimLeft(path, "/")
	}
	if u, err := url.Parse(path); err == nil {
		path = u.Path
	}
	path = strings.Trim(path, "/")
	if path == "" {
		return domain.RouteParams{}, false
	}

	segments := strings.Split(path, "/")
	switch len(segments) {
	case 1:
		return domain.RouteParams{Day: segments[0]}, true
	case 2:
		return domain.NewRouteParams(segments[0], segments[1]), true
	default:
		return domain.RouteParams{}, false
	}
}

// ResolvePath parses a URL path straight to an identifier.
func ResolvePath(path string) (domain.SessionID, bool) {
	params, ok := ParsePath(path)
	if !ok {
		return domain.SessionID{}, false
	}
	return ParseRouteParams(params)
}

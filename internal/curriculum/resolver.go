// Package curriculum maps between course URLs and session identifiers and
// walks the fixed day/session sequence.
//
// Every function here is pure. Malformed input is reported with a false
// comma-ok result or a fallback string, never an error or a panic.
package curriculum

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/alexanderramin/rncourse/internal/domain"
)

const (
	// RootPath is returned for anything that has no session page.
	RootPath = "/"

	challengeToken = "challenge"
)

var (
	dayTokenPattern     = regexp.MustCompile(`^day([0-9]+)$`)
	sessionTokenPattern = regexp.MustCompile(`^session-([0-9]+)$`)
)

// IsValidDay reports whether day is within the course.
func IsValidDay(day int) bool {
	return day >= domain.FirstDay && day <= domain.LastDay
}

// IsValidSession reports whether (day, session) addresses an ordinary
// session or a challenge.
func IsValidSession(day, session int) bool {
	if !IsValidDay(day) {
		return false
	}
	return (session >= 1 && session <= domain.SessionsPerDay) || session == domain.ChallengeSession
}

// ParseRouteParams turns raw route tokens into a session identifier.
// A day without a session token does not resolve.
func ParseRouteParams(p domain.RouteParams) (domain.SessionID, bool) {
	day, ok := parseToken(dayTokenPattern, p.Day)
	if !ok || !IsValidDay(day) {
		return domain.SessionID{}, false
	}
	if p.Session == nil {
		return domain.SessionID{}, false
	}

	if *p.Session == challengeToken {
		return domain.SessionID{Day: day, Session: domain.ChallengeSession}, true
	}

	session, ok := parseToken(sessionTokenPattern, *p.Session)
	if !ok || !IsValidSession(day, session) {
		return domain.SessionID{}, false
	}
	return domain.SessionID{Day: day, Session: session}, true
}

// parseToken extracts the number captured by an anchored pattern. Values
// too large for an int are rejected.
func parseToken(pattern *regexp.Regexp, token string) (int, bool) {
	m := pattern.FindStringSubmatch(token)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// SessionPath renders an identifier as a URL path. Invalid pairs map to
// RootPath.
func SessionPath(day, session int) string {
	if !IsValidSession(day, session) {
		return RootPath
	}
	if session == domain.ChallengeSession {
		return fmt.Sprintf("/day%d/%s", day, challengeToken)
	}
	return fmt.Sprintf("/day%d/session-%d", day, session)
}

// NextSession returns the successor in curriculum order. It reports false
// after the last day's challenge and for invalid input.
func NextSession(day, session int) (domain.SessionID, bool) {
	if !IsValidSession(day, session) {
		return domain.SessionID{}, false
	}

	if session == domain.ChallengeSession {
		if !IsValidDay(day + 1) {
			return domain.SessionID{}, false
		}
		return domain.SessionID{Day: day + 1, Session: 1}, true
	}
	if session < domain.SessionsPerDay {
		return domain.SessionID{Day: day, Session: session + 1}, true
	}
	// The last ordinary session leads into the day's challenge.
	return domain.SessionID{Day: day, Session: domain.ChallengeSession}, true
}

// PreviousSession returns the predecessor in curriculum order. It reports
// false for day 1 session 1 and for invalid input.
func PreviousSession(day, session int) (domain.SessionID, bool) {
	if !IsValidSession(day, session) {
		return domain.SessionID{}, false
	}

	switch session {
	case 1:
		if !IsValidDay(day - 1) {
			return domain.SessionID{}, false
		}
		return domain.SessionID{Day: day - 1, Session: domain.ChallengeSession}, true
	case domain.ChallengeSession:
		return domain.SessionID{Day: day, Session: domain.SessionsPerDay}, true
	default:
		return domain.SessionID{Day: day, Session: session - 1}, true
	}
}

// DayTitle looks up a day's title, falling back to "Day N".
func DayTitle(day int) string {
	if t, ok := dayTitles[day]; ok {
		return t
	}
	return fmt.Sprintf("Day %d", day)
}

// SessionLabel looks up a session's title, falling back to "Session N".
func SessionLabel(day, session int) string {
	if t, ok := sessionTitles[day][session]; ok {
		return t
	}
	return fmt.Sprintf("Session %d", session)
}

// ChallengeSolution returns the reference solution outline for a day's
// challenge.
func ChallengeSolution(day int) (string, bool) {
	s, ok := challengeSolutions[day]
	return s, ok
}

// SessionTitle is the display title "<day title> - <session title>". It is
// defined for every integer pair.
func SessionTitle(day, session int) string {
	return DayTitle(day) + " - " + SessionLabel(day, session)
}

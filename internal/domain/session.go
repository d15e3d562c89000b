package domain

import (
	"errors"
	"fmt"
)

// Curriculum shape. Every day has four ordinary sessions followed by a
// challenge, which is addressed internally as session 5.
const (
	FirstDay         = 1
	LastDay          = 7
	SessionsPerDay   = 4
	ChallengeSession = 5
)

// ErrRouteNotFound is returned by outer layers when a path does not resolve
// to a session.
var ErrRouteNotFound = errors.New("route not found")

// SessionID identifies one lesson or challenge in the curriculum.
type SessionID struct {
	Day     int
	Session int
}

// IsChallenge reports whether the identifier addresses a day's challenge.
func (id SessionID) IsChallenge() bool {
	return id.Session == ChallengeSession
}

func (id SessionID) String() string {
	if id.IsChallenge() {
		return fmt.Sprintf("day%d/challenge", id.Day)
	}
	return fmt.Sprintf("day%d/session-%d", id.Day, id.Session)
}

// RouteParams is the raw, untrusted input from a URL. A nil Session means
// the session segment was absent.
type RouteParams struct {
	Day     string
	Session *string
}

// NewRouteParams builds RouteParams with a present session token.
func NewRouteParams(day, session string) RouteParams {
	return RouteParams{Day: day, Session: &session}
}

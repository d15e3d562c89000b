package contract

import "github.com/alexanderramin/rncourse/internal/domain"

// Direction selects which neighbour Step moves to.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// SessionLink points at a neighbouring page.
type SessionLink struct {
	ID    domain.SessionID
	Path  string
	Title string
}

// SessionPage is everything a page view needs to render one session.
type SessionPage struct {
	ID           domain.SessionID
	Path         string
	Title        string
	DayTitle     string
	SessionLabel string
	IsChallenge  bool
	Solution     string       // challenge pages only
	Previous     *SessionLink // nil at the start of the course
	Next         *SessionLink // nil after the final challenge
}

// DayOutline is one sidebar group.
type DayOutline struct {
	Day     int
	Title   string
	Entries []SessionLink
}

package domain

// Entry is one navigable item of a day in the outline.
type Entry struct {
	ID    SessionID
	Path  string
	Title string
}

// Day groups a day's sessions and challenge in curriculum order.
type Day struct {
	Number  int
	Title   string
	Entries []Entry
}

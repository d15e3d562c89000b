package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rncourse/internal/contract"
)

// FormatPage renders a resolved page summary inside a box.
func FormatPage(page *contract.SessionPage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", Bold(page.Title))
	fmt.Fprintf(&b, "%s  %s\n\n", KindBadge(page.IsChallenge), Dim(page.Path))
	fmt.Fprintf(&b, "%s %s\n", Dim("Day:     "), page.DayTitle)
	fmt.Fprintf(&b, "%s %s\n", Dim("Session: "), page.SessionLabel)
	fmt.Fprintf(&b, "%s %s\n", Dim("Previous:"), linkText(page.Previous, "start of course"))
	fmt.Fprintf(&b, "%s %s", Dim("Next:    "), linkText(page.Next, "end of course"))
	return RenderBox(page.ID.String(), b.String())
}

func linkText(l *contract.SessionLink, none string) string {
	if l == nil {
		return Dim("— " + none)
	}
	return l.Title + " " + Dim(l.Path)
}

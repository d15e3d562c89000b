package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rncourse/internal/contract"
	"github.com/alexanderramin/rncourse/internal/domain"
)

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
)

// FormatOutline renders the course as a two-level tree. The active entry,
// if any, is marked with ▶.
func FormatOutline(days []contract.DayOutline, active *domain.SessionID) string {
	var b strings.Builder
	b.WriteString(Header("Course Outline"))
	b.WriteString("\n")

	for _, d := range days {
		b.WriteString(StyleBold.Render(fmt.Sprintf("Day %d · %s", d.Day, d.Title)))
		b.WriteString("\n")
		for i, e := range d.Entries {
			connector := treeBranch
			if i == len(d.Entries)-1 {
				connector = treeCorner
			}
			var line string
			switch {
			case active != nil && *active == e.ID:
				line = StyleYellowBold.Render("▶ " + e.Title)
			case e.ID.IsChallenge():
				line = "  " + StylePurple.Render(e.Title)
			default:
				line = "  " + e.Title
			}
			b.WriteString(Dim(connector) + line + "  " + Dim(e.Path) + "\n")
		}
	}
	return b.String()
}

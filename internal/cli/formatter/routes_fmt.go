package formatter

import (
	"strconv"

	"github.com/alexanderramin/rncourse/internal/curriculum"
)

// FormatRoutes renders every route with its resolved title.
func FormatRoutes(routes []string) string {
	rows := make([][]string, 0, len(routes))
	for i, r := range routes {
		title := Dim("Course home")
		if id, ok := curriculum.ResolvePath(r); ok {
			title = curriculum.SessionTitle(id.Day, id.Session)
		}
		rows = append(rows, []string{Dim(strconv.Itoa(i + 1)), r, title})
	}
	return RenderTable([]string{"#", "PATH", "TITLE"}, rows)
}

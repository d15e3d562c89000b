package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rncourse/internal/contract"
	"github.com/charmbracelet/glamour"
)

// PageMarkdown builds the markdown body shown by `show` and the browser.
// Solutions on challenge pages appear only when unlocked.
func PageMarkdown(page *contract.SessionPage, solutionsUnlocked bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", page.SessionLabel)
	fmt.Fprintf(&b, "_%s_ · `%s`\n\n", page.DayTitle, page.Path)

	if page.IsChallenge {
		b.WriteString("> **Challenge.** Build it on your own first, then compare with the reference solution.\n\n")
		if solutionsUnlocked {
			fmt.Fprintf(&b, "## Solution\n\n%s\n\n", page.Solution)
		} else {
			b.WriteString("## Solution\n\n🔒 Locked. Enter the course password to reveal it.\n\n")
		}
	}

	b.WriteString("---\n\n")
	if page.Previous != nil {
		fmt.Fprintf(&b, "← Previous: [%s](%s)\n\n", page.Previous.Title, page.Previous.Path)
	}
	if page.Next != nil {
		fmt.Fprintf(&b, "→ Next: [%s](%s)\n", page.Next.Title, page.Next.Path)
	} else {
		b.WriteString("🎉 You have reached the end of the course.\n")
	}
	return b.String()
}

// RenderMarkdown renders md for the terminal using a glamour style name
// ("auto" picks dark or light from the terminal background).
func RenderMarkdown(md, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/rncourse/internal/config"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp returns an App with default config and a recording TUI runner.
func testApp(t *testing.T) (*App, *[]tea.Model) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Style = "notty"
	ran := &[]tea.Model{}
	return &App{
		Config: &cfg,
		RunProgram: func(m tea.Model) error {
			*ran = append(*ran, m)
			return nil
		},
	}, ran
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRoutesCmd_Plain(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "routes", "--plain")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 36)
	assert.Equal(t, "/", lines[0])
	assert.Equal(t, "/day1/challenge", lines[1])
	assert.Equal(t, "/day7/session-4", lines[35])
}

func TestRoutesCmd_Table(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "routes")
	require.NoError(t, err)
	assert.Contains(t, out, "PATH")
	assert.Contains(t, out, "Shipping to Stores - Publishing to the Stores")
}

func TestSitemapCmd_Stdout(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "sitemap", "--base-url", "https://rn.example.com")
	require.NoError(t, err)
	assert.Contains(t, out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, out, "<loc>https://rn.example.com/day4/challenge</loc>")
	assert.Equal(t, 36, strings.Count(out, "<loc>"))
}

func TestSitemapCmd_File(t *testing.T) {
	app, _ := testApp(t)
	path := filepath.Join(t.TempDir(), "urls.txt")
	out, err := executeCmd(t, app, "sitemap", "--format", "text", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 36 routes")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "http://localhost:3000/\n"))
}

func TestSitemapCmd_UnknownFormat(t *testing.T) {
	app, _ := testApp(t)
	_, err := executeCmd(t, app, "sitemap", "--format", "json")
	assert.ErrorContains(t, err, "unknown sitemap format")
}

func TestResolveCmd(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "resolve", "/day3/challenge")
	require.NoError(t, err)
	assert.Contains(t, out, "Navigation - Challenge: Multi-Screen Notes App")
	assert.Contains(t, out, "Navigation - Deep Linking")
	assert.Contains(t, out, "State & Data - useState & useReducer")
}

func TestResolveCmd_NotFound(t *testing.T) {
	app, _ := testApp(t)
	for _, path := range []string{"/day9/session-1", "/day2/session-7", "/day2", "/day3x/session-1"} {
		_, err := executeCmd(t, app, "resolve", path)
		assert.ErrorContains(t, err, "page not found: "+path)
	}
}

func TestShowCmd(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "show", "/day6/session-2")
	require.NoError(t, err)
	assert.Contains(t, out, "Animations with Reanimated")
}

func TestShowCmd_ChallengeLockedByPassword(t *testing.T) {
	app, _ := testApp(t)
	app.Config.SolutionPassword = "hooks"
	out, err := executeCmd(t, app, "show", "/day2/challenge")
	require.NoError(t, err)
	assert.Contains(t, out, "Locked")
	assert.NotContains(t, out, "useWindowDimensions")
}

func TestShowCmd_ChallengeOpenWithoutPassword(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "show", "/day2/challenge")
	require.NoError(t, err)
	assert.Contains(t, out, "useWindowDimensions")
	assert.NotContains(t, out, "Locked")
}

func TestNextCmd(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "next", "4", "4")
	require.NoError(t, err)
	assert.Equal(t, "/day4/challenge\tState & Data - Challenge: Weather App\n", out)

	out, err = executeCmd(t, app, "next", "7", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "end of the course")
}

func TestPrevCmd(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "prev", "3", "1")
	require.NoError(t, err)
	assert.Equal(t, "/day2/challenge\tLayout & Styling - Challenge: Responsive Dashboard\n", out)

	out, err = executeCmd(t, app, "prev", "1", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "start of the course")
}

func TestStepCmd_InvalidInput(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "next", "8", "1")
	assert.ErrorContains(t, err, "not part of the course")

	_, err = executeCmd(t, app, "prev", "two", "1")
	assert.ErrorContains(t, err, `invalid day "two"`)

	_, err = executeCmd(t, app, "next", "2", "x")
	assert.ErrorContains(t, err, `invalid session "x"`)
}

func TestTitleCmd(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "title", "1", "5")
	require.NoError(t, err)
	assert.Equal(t, "Foundations - Challenge: Profile Card\n", out)

	out, err = executeCmd(t, app, "title", "12", "9")
	require.NoError(t, err)
	assert.Equal(t, "Day 12 - Session 9\n", out)
}

func TestOutlineCmd(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "outline", "--current", "/day5/session-3")
	require.NoError(t, err)
	assert.Contains(t, out, "COURSE OUTLINE")
	assert.Contains(t, out, "▶ Push Notifications")

	_, err = executeCmd(t, app, "outline", "--current", "/day5")
	assert.ErrorContains(t, err, "page not found")
}

func TestBrowseCmd(t *testing.T) {
	app, ran := testApp(t)

	_, err := executeCmd(t, app, "browse", "/day2/session-3")
	require.NoError(t, err)
	require.Len(t, *ran, 1)
	m, ok := (*ran)[0].(*browseModel)
	require.True(t, ok)
	assert.Equal(t, "/day2/session-3", m.page.Path)

	_, err = executeCmd(t, app, "browse", "/nowhere")
	assert.ErrorContains(t, err, "page not found")
	assert.Len(t, *ran, 1)
}

func TestRootCmd_InteractiveOpensBrowser(t *testing.T) {
	app, ran := testApp(t)
	app.IsInteractive = func() bool { return true }

	_, err := executeCmd(t, app)
	require.NoError(t, err)
	require.Len(t, *ran, 1)
	assert.Equal(t, defaultStartPath, (*ran)[0].(*browseModel).page.Path)
}

func TestRootCmd_NonInteractivePrintsHelp(t *testing.T) {
	app, ran := testApp(t)
	app.IsInteractive = func() bool { return false }

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "Navigate the seven-day React Native course")
	assert.Empty(t, *ran)
}

func TestRootCmd_LogCalls(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "--log-calls", "resolve", "/day1/session-2")
	require.NoError(t, err)
	assert.Contains(t, out, "use_case=resolve")
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	app, _ := testApp(t)
	_, err := executeCmd(t, app, "--style", "neon", "routes")
	assert.ErrorContains(t, err, "unknown style")
}

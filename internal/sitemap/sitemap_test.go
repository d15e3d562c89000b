package sitemap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alexanderramin/rncourse/internal/curriculum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteXML(t *testing.T) {
	var buf bytes.Buffer
	err := WriteXML(&buf, "https://course.example.com", []string{"/", "/day1/challenge"})
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url>
    <loc>https://course.example.com/</loc>
    <priority>1.0</priority>
  </url>
  <url>
    <loc>https://course.example.com/day1/challenge</loc>
    <priority>0.8</priority>
  </url>
</urlset>
`
	assert.Equal(t, want, buf.String())
}

func TestWriteXML_AllRoutes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXML(&buf, "https://course.example.com/rn/", curriculum.AllValidRoutes()))

	out := buf.String()
	assert.Equal(t, 36, strings.Count(out, "<url>"))
	assert.Contains(t, out, "<loc>https://course.example.com/rn/day7/session-4</loc>")
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, "http://localhost:3000", []string{"/", "/day2/session-3"}))
	assert.Equal(t, "http://localhost:3000/\nhttp://localhost:3000/day2/session-3\n", buf.String())
}

func TestWriteXML_RejectsRelativeBase(t *testing.T) {
	var buf bytes.Buffer
	err := WriteXML(&buf, "course.example.com", []string{"/"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be absolute")
	assert.Empty(t, buf.String())
}

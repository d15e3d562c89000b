// Package sitemap renders the course routes for static site generation.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"strings"
)

const namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc      string `xml:"loc"`
	Priority string `xml:"priority"`
}

// WriteXML writes a sitemaps.org urlset for routes resolved against
// baseURL. The root route gets priority 1.0 and every other route 0.8.
func WriteXML(w io.Writer, baseURL string, routes []string) error {
	base, err := parseBase(baseURL)
	if err != nil {
		return err
	}

	set := urlSet{Xmlns: namespace, URLs: make([]urlEntry, 0, len(routes))}
	for _, r := range routes {
		priority := "0.8"
		if r == "/" {
			priority = "1.0"
		}
		set.URLs = append(set.URLs, urlEntry{Loc: join(base, r), Priority: priority})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing sitemap header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encoding sitemap: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("writing sitemap: %w", err)
	}
	return nil
}

// WriteText writes one absolute URL per line.
func WriteText(w io.Writer, baseURL string, routes []string) error {
	base, err := parseBase(baseURL)
	if err != nil {
		return err
	}
	for _, r := range routes {
		if _, err := fmt.Fprintln(w, join(base, r)); err != nil {
			return fmt.Errorf("writing route list: %w", err)
		}
	}
	return nil
}

func parseBase(baseURL string) (*url.URL, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", baseURL)
	}
	return u, nil
}

func join(base *url.URL, route string) string {
	u := *base
	u.Path = strings.TrimSuffix(base.Path, "/") + route
	return u.String()
}

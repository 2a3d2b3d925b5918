package scraper

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"

	"placeinfo/internal/infobox"
)

// Status describes how much of the page could be summarized.
type Status int

const (
	StatusOK        Status = iota
	StatusNoInfobox        // no infobox rows were parsed
	StatusNoMatches        // rows were parsed but no canonical field matched
)

const (
	MsgNoInfobox = "Could not find an infobox on the page or it is empty."
	MsgNoMatches = "No common local information fields were detected."
)

// InfoboxContent holds the summary of one article page and implements Content.
type InfoboxContent struct {
	title    string
	url      string
	raw      *infobox.Fields
	selected *infobox.Fields
}

// NewInfoboxContent creates an InfoboxContent.
// raw is the full label map, selected the canonical subset.
func NewInfoboxContent(title, url string, raw, selected *infobox.Fields) *InfoboxContent {
	if raw == nil {
		raw = infobox.NewFields()
	}
	if selected == nil {
		selected = infobox.NewFields()
	}
	return &InfoboxContent{title: title, url: url, raw: raw, selected: selected}
}

func (c *InfoboxContent) Title() string { return c.title }

func (c *InfoboxContent) URL() string { return c.url }

// Selected returns the canonical fields in canonical order.
func (c *InfoboxContent) Selected() *infobox.Fields { return c.selected }

func (c *InfoboxContent) Status() Status {
	switch {
	case c.raw.Len() == 0:
		return StatusNoInfobox
	case c.selected.Len() == 0:
		return StatusNoMatches
	default:
		return StatusOK
	}
}

// Message returns the explanatory message for an empty result, or "".
func (c *InfoboxContent) Message() string {
	switch c.Status() {
	case StatusNoInfobox:
		return MsgNoInfobox
	case StatusNoMatches:
		return MsgNoMatches
	default:
		return ""
	}
}

// ToText returns the plain line-per-field summary.
func (c *InfoboxContent) ToText() (string, error) {
	lines := []string{
		"Title: " + c.title,
		"Source: " + c.url,
	}
	if msg := c.Message(); msg != "" {
		lines = append(lines, msg)
	} else {
		c.selected.Each(func(key, value string) {
			lines = append(lines, key+": "+value)
		})
	}
	return strings.Join(lines, "\n"), nil
}

func (c *InfoboxContent) ToHTML() (string, error) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(c.title)))
	sb.WriteString(fmt.Sprintf("<p>Source: <a href=%q>%s</a></p>\n", c.url, html.EscapeString(c.url)))
	if msg := c.Message(); msg != "" {
		sb.WriteString("<p>" + html.EscapeString(msg) + "</p>\n")
		return sb.String(), nil
	}
	sb.WriteString("<table>\n<thead><tr><th>Field</th><th>Value</th></tr></thead>\n<tbody>\n")
	c.selected.Each(func(key, value string) {
		sb.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%s</td></tr>\n", html.EscapeString(key), html.EscapeString(value)))
	})
	sb.WriteString("</tbody>\n</table>\n")
	return sb.String(), nil
}

// ToMarkdown converts the HTML form, rendering the field table as a Markdown table.
func (c *InfoboxContent) ToMarkdown() (string, error) {
	htmlContent, err := c.ToHTML()
	if err != nil {
		return "", err
	}

	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.Table())
	markdown, err := converter.ConvertString(htmlContent)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}
	return markdown, nil
}

func (c *InfoboxContent) ToJSON() ([]byte, error) {
	type jsonField struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	type jsonOutput struct {
		Title   string      `json:"title"`
		URL     string      `json:"url"`
		Fields  []jsonField `json:"fields"`
		Message string      `json:"message,omitempty"`
	}

	output := jsonOutput{
		Title:   c.title,
		URL:     c.url,
		Fields:  []jsonField{},
		Message: c.Message(),
	}
	c.selected.Each(func(key, value string) {
		output.Fields = append(output.Fields, jsonField{Key: key, Value: value})
	})

	return json.MarshalIndent(output, "", "  ")
}

func (c *InfoboxContent) ToCSV() (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Field", "Value"})
	c.selected.Each(func(key, value string) {
		_ = w.Write([]string{key, value})
	})
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to write CSV: %w", err)
	}
	return buf.String(), nil
}

package infobox

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	// TitleID is the id of the article's main heading.
	TitleID = "firstHeading"
	// CoordinatesKey is the label the geo fallback is stored under.
	CoordinatesKey = "Coordinates"
)

// TableSelectors lists the infobox table signatures, highest priority first.
// The first two match the full class attribute; the last matches the class token.
var TableSelectors = []string{
	`table[class="infobox geography vcard"]`,
	`table[class="infobox vcard"]`,
	`table.infobox`,
}

// Result is the outcome of parsing an article page.
type Result struct {
	Title  string // empty when the heading is missing
	Fields *Fields
}

// Parse extracts the page title and infobox rows from markup.
// It never fails: missing structure yields an empty result.
func Parse(markup string) *Result {
	res := &Result{Fields: NewFields()}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return res
	}

	if heading := doc.Find("#" + TitleID).First(); heading.Length() > 0 {
		res.Title = nodeText(heading, "")
	}

	if table := findTable(doc); table != nil {
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			th := row.Find("th").First()
			td := row.Find("td").First()
			if th.Length() == 0 || td.Length() == 0 {
				return
			}
			label := normalize(nodeText(th, " "))
			value := normalize(nodeText(td, " "))
			if label == "" || value == "" {
				return
			}
			res.Fields.Set(label, value)
		})
	}

	// Coordinates are sometimes rendered outside the table.
	if geo := doc.Find(".geo").First(); geo.Length() > 0 {
		if coords := normalize(nodeText(geo, " ")); coords != "" {
			res.Fields.SetDefault(CoordinatesKey, coords)
		}
	}

	return res
}

func findTable(doc *goquery.Document) *goquery.Selection {
	for _, sel := range TableSelectors {
		if t := doc.Find(sel).First(); t.Length() > 0 {
			return t
		}
	}
	return nil
}

// nodeText joins the trimmed descendant text nodes with sep, skipping
// script and style contents.
func nodeText(s *goquery.Selection, sep string) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
	return strings.Join(parts, sep)
}

// normalize collapses whitespace runs to a single space and trims the ends.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

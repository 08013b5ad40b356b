// Package render turns the body of a blog post into HTML.
//
// Rendering is a fixed pipeline of named stages. The first stages work on
// the raw text and replace whole constructs (widget markers, fenced code)
// with opaque tokens whose HTML is kept aside, so nothing later can touch
// it. Widget markers written inside code are left for the code stages and
// come out as code. The text is then split into typed lines and the
// remaining stages work line by line. Tokens are swapped back for their
// HTML at the end.
//
// Content is trusted: it comes from files the site owner writes. Apart from
// code and equations, nothing is escaped.
package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	tokenOpen  = "\x02"
	tokenClose = "\x03"
)

var (
	tokenPattern     = regexp.MustCompile("\x02([BI])(\\d+)\x03")
	blockLinePattern = regexp.MustCompile("^\x02B\\d+\x03$")
	stripTokens      = strings.NewReplacer(tokenOpen, "", tokenClose, "")
)

type stage struct {
	name  string
	apply func(*document)
}

// Renderer converts post bodies to HTML. It holds no per-call state and is
// safe for concurrent use.
type Renderer struct {
	stages []stage
}

func New() *Renderer {
	return &Renderer{
		stages: []stage{
			{"widgets", renderWidgets},
			{"code", renderCodeBlocks},
			{"lex", lex},
			{"headings", renderHeadings},
			{"inline", renderInline},
			{"paragraphs", renderParagraphs},
			{"lists", renderLists},
		},
	}
}

// Stages returns the stage names in the order they run.
func (r *Renderer) Stages() []string {
	names := make([]string, len(r.stages))
	for i, s := range r.stages {
		names[i] = s.name
	}
	return names
}

// Render converts body to HTML.
func (r *Renderer) Render(body string) string {
	doc := &document{
		text:       stripTokens.Replace(strings.ReplaceAll(body, "\r\n", "\n")),
		headingIDs: make(map[string]int),
	}
	for _, s := range r.stages {
		s.apply(doc)
	}
	return doc.html()
}

// document is the state of one Render call.
type document struct {
	// text is the source until lex splits it into lines.
	text       string
	lines      []line
	fragments  []string
	headingIDs map[string]int
}

// seal stores html and returns the token that stands in for it. Block
// tokens are put on a line of their own.
func (d *document) seal(html string, block bool) string {
	d.fragments = append(d.fragments, html)
	kind := "I"
	if block {
		kind = "B"
	}
	token := tokenOpen + kind + strconv.Itoa(len(d.fragments)-1) + tokenClose
	if block {
		return "\n" + token + "\n"
	}
	return token
}

func (d *document) unseal(s string) string {
	// No token is ever sealed inside code, so fragments hold no tokens and
	// one pass is enough.
	return tokenPattern.ReplaceAllStringFunc(s, func(tok string) string {
		m := tokenPattern.FindStringSubmatch(tok)
		n, err := strconv.Atoi(m[2])
		if err != nil || n >= len(d.fragments) {
			return ""
		}
		return d.fragments[n]
	})
}

func (d *document) html() string {
	var b strings.Builder
	for i, l := range d.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch l.kind {
		case lineBlank:
		case lineBlock:
			b.WriteString(strings.TrimSpace(l.raw))
		case lineHeading:
			fmt.Fprintf(&b, `<h%d id="%s">%s</h%d>`, l.level, l.id, l.text, l.level)
		default:
			b.WriteString(l.text)
		}
	}
	return strings.TrimSpace(d.unseal(b.String()))
}

func (d *document) headingID(text string) string {
	base := slugify(text)
	n := d.headingIDs[base]
	d.headingIDs[base] = n + 1
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n)
}

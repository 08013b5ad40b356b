package render

import (
	"html"
	"regexp"
)

var (
	inlineCode = regexp.MustCompile("`([^`]+)`")
	link       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	bold       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italic     = regexp.MustCompile(`\*(.+?)\*`)
)

// renderInline applies span-level markup to prose, heading and list lines.
// Code spans and link tags are sealed first so their contents are not
// mistaken for emphasis.
func renderInline(d *document) {
	for i := range d.lines {
		l := &d.lines[i]
		switch l.kind {
		case lineProse, lineHeading, lineItem:
			l.text = d.inline(l.text)
		}
	}
}

func (d *document) inline(s string) string {
	s = inlineCode.ReplaceAllStringFunc(s, func(m string) string {
		code := inlineCode.FindStringSubmatch(m)[1]
		return d.seal("<code>"+escape(code)+"</code>", false)
	})
	s = link.ReplaceAllStringFunc(s, func(m string) string {
		sub := link.FindStringSubmatch(m)
		open := d.seal(`<a href="`+html.EscapeString(sub[2])+`" target="_blank" rel="noopener noreferrer">`, false)
		return open + sub[1] + d.seal("</a>", false)
	})
	s = bold.ReplaceAllString(s, "<strong>$1</strong>")
	s = italic.ReplaceAllString(s, "<em>$1</em>")
	return s
}

func escape(s string) string {
	return html.EscapeString(s)
}

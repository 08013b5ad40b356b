package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

type lineKind int

const (
	lineBlank lineKind = iota
	lineProse
	lineHeading
	lineItem
	lineBlock // a sealed block token
	lineHTML  // finished markup produced by a stage
)

// line is one source line. raw is the text as written, text is what the
// stages have turned it into so far.
type line struct {
	kind  lineKind
	level int
	id    string
	raw   string
	text  string
}

var (
	headingPattern = regexp.MustCompile(`^(#{1,5}) (.+)$`)
	headingMarkup  = regexp.MustCompile("<[^>]*>|[*`]")
	codeFence      = regexp.MustCompile("(?s)```(\\w+)?\\n(.*?)```")
)

// renderCodeBlocks seals fenced code so no later stage rewrites its content.
func renderCodeBlocks(d *document) {
	d.text = codeFence.ReplaceAllStringFunc(d.text, func(m string) string {
		sub := codeFence.FindStringSubmatch(m)
		lang, code := sub[1], sub[2]
		class := ""
		if lang != "" {
			class = fmt.Sprintf(` class="language-%s"`, lang)
		}
		html := fmt.Sprintf(`<pre class="code-block"><code%s>%s</code></pre>`, class, escape(code))
		return d.seal(html, true)
	})
}

// lex splits the text into lines. Headings are recognised by their own
// stage; list items are tagged here so paragraphs never swallow them.
func lex(d *document) {
	raw := strings.Split(d.text, "\n")
	d.lines = make([]line, 0, len(raw))
	for _, s := range raw {
		l := line{raw: s, text: s}
		trimmed := strings.TrimSpace(s)
		switch {
		case trimmed == "":
			l.kind = lineBlank
		case blockLinePattern.MatchString(trimmed):
			l.kind = lineBlock
		case strings.HasPrefix(s, "- ") && len(strings.TrimSpace(s[2:])) > 0:
			l.kind = lineItem
			l.text = s[2:]
		default:
			l.kind = lineProse
		}
		d.lines = append(d.lines, l)
	}
	d.text = ""
}

func renderHeadings(d *document) {
	for i := range d.lines {
		l := &d.lines[i]
		if l.kind != lineProse {
			continue
		}
		m := headingPattern.FindStringSubmatch(l.raw)
		if m == nil {
			continue
		}
		l.kind = lineHeading
		l.level = len(m[1])
		l.id = d.headingID(headingText(m[2]))
		l.text = m[2]
	}
}

// renderParagraphs wraps each run of prose lines in <p>. A run that starts
// with markup or a stray '#' is left as written.
func renderParagraphs(d *document) {
	out := make([]line, 0, len(d.lines))
	for i := 0; i < len(d.lines); {
		l := d.lines[i]
		if l.kind != lineProse {
			out = append(out, l)
			i++
			continue
		}

		j := i
		texts := []string{}
		for j < len(d.lines) && d.lines[j].kind == lineProse {
			texts = append(texts, strings.TrimSpace(d.lines[j].text))
			j++
		}

		first := strings.TrimSpace(l.raw)
		if strings.HasPrefix(first, "<") || strings.HasPrefix(first, "#") {
			for _, p := range d.lines[i:j] {
				p.kind = lineHTML
				out = append(out, p)
			}
		} else {
			out = append(out, line{
				kind: lineHTML,
				raw:  l.raw,
				text: "<p>" + strings.Join(texts, "\n") + "</p>",
			})
		}
		i = j
	}
	d.lines = out
}

// renderLists merges list items into <ul> blocks. Blank lines between items
// do not end the list.
func renderLists(d *document) {
	out := make([]line, 0, len(d.lines))
	for i := 0; i < len(d.lines); {
		if d.lines[i].kind != lineItem {
			out = append(out, d.lines[i])
			i++
			continue
		}

		var b strings.Builder
		b.WriteString("<ul>")
		j := i
		for j < len(d.lines) {
			if d.lines[j].kind == lineItem {
				b.WriteString("\n<li>" + strings.TrimSpace(d.lines[j].text) + "</li>")
				j++
				continue
			}
			if d.lines[j].kind == lineBlank && nextNonBlank(d.lines, j) == lineItem {
				j++
				continue
			}
			break
		}
		b.WriteString("\n</ul>")
		out = append(out, line{kind: lineHTML, text: b.String()})
		i = j
	}
	d.lines = out
}

func nextNonBlank(lines []line, from int) lineKind {
	for k := from; k < len(lines); k++ {
		if lines[k].kind != lineBlank {
			return lines[k].kind
		}
	}
	return lineBlank
}

// headingText is the visible text of a heading: link targets and inline
// markup are dropped.
func headingText(s string) string {
	s = link.ReplaceAllString(s, "$1")
	return headingMarkup.ReplaceAllString(s, "")
}

func slugify(text string) string {
	s := slug.Make(text)
	if s == "" {
		return "section"
	}
	return s
}

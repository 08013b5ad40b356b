package utils

import (
	"bytes"
	"html/template"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// MoreSeparator marks the end of the summary in a markdown body.
const MoreSeparator = "<!--more-->"

// mdRenderer is used for standalone pages. Blog posts go through the
// render package instead because they carry widget markers.
var mdRenderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithHardWraps(), html.WithUnsafe()),
)

func RenderMarkdown(md string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	htmlContent := strings.ReplaceAll(buf.String(), MoreSeparator, "")
	return template.HTML(htmlContent), nil
}

var (
	linkPattern      = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]*\)`)
	codeFencePattern = regexp.MustCompile("(?s)```.*?```")
	tagPattern       = regexp.MustCompile(`(?s)<[^>]*>`)
	markupPattern    = regexp.MustCompile("(?m)[*#>`~]|^\\s*- ")
	spacePattern     = regexp.MustCompile(`\s+`)
)

// stripMarkdown removes markdown formatting for excerpt generation. Link
// text is kept, code blocks and tags (widget markers included) are dropped.
func stripMarkdown(md string) string {
	md = codeFencePattern.ReplaceAllString(md, " ")
	md = linkPattern.ReplaceAllString(md, "$1")
	md = tagPattern.ReplaceAllString(md, " ")
	md = markupPattern.ReplaceAllString(md, "")
	md = spacePattern.ReplaceAllString(md, " ")
	return strings.TrimSpace(md)
}

// GenerateExcerpt returns at most length runes of plain text from md,
// taken from before MoreSeparator when present.
func GenerateExcerpt(md string, length int) string {
	excerpt := md
	if before, _, found := strings.Cut(md, MoreSeparator); found {
		excerpt = before
	}

	plainText := stripMarkdown(excerpt)
	// Use runes to handle multi-byte characters like Chinese
	runes := []rune(plainText)
	if len(runes) > length {
		return strings.TrimSpace(string(runes[:length])) + "..."
	}
	return string(runes)
}

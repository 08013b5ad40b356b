package utils

import (
	"strings"
	"testing"
)

func TestGenerateExcerpt(t *testing.T) {
	md := "# Title\n\nSome **bold** text with a [link](https://example.com).\n\n<MathEquation>\\alpha</MathEquation>\n\n<!--more-->\n\nHidden part."
	got := GenerateExcerpt(md, 200)
	want := "Title Some bold text with a link. \\alpha"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestGenerateExcerptTruncatesRunes(t *testing.T) {
	got := GenerateExcerpt("计算化学研究", 4)
	if got != "计算化学..." {
		t.Errorf("got %q", got)
	}
}

func TestGenerateExcerptDropsCode(t *testing.T) {
	got := GenerateExcerpt("Intro\n\n```go\nfmt.Println()\n```\n\n- item", 100)
	if got != "Intro item" {
		t.Errorf("got %q", got)
	}
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("## Research Interests\n\n- DFT\n- MD<!--more-->")
	if err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, `<h2 id="research-interests">Research Interests</h2>`) {
		t.Errorf("missing heading with id: %s", s)
	}
	if !strings.Contains(s, "<li>DFT</li>") {
		t.Errorf("missing list: %s", s)
	}
	if strings.Contains(s, MoreSeparator) {
		t.Errorf("separator should be removed: %s", s)
	}
}

func TestMinifyHTML(t *testing.T) {
	out, err := MinifyHTML("<p>\n  Hello   world\n</p>\n\n<pre><code>a  b\n</code></pre>")
	if err != nil {
		t.Fatalf("MinifyHTML failed: %v", err)
	}
	if !strings.Contains(out, "<pre><code>a  b\n</code></pre>") {
		t.Errorf("pre content must be preserved: %q", out)
	}
	if strings.Contains(out, "Hello   world") {
		t.Errorf("whitespace should be collapsed: %q", out)
	}
}

package render

import (
	"bytes"
	"html/template"
	"log"
	"regexp"
	"strings"
)

// widget is a custom tag authors drop into a post. None of them run in the
// page: each is replaced by a static placeholder block.
type widget struct {
	name         string
	pattern      *regexp.Regexp
	defaultTitle string
}

var widgets = []widget{
	{"pes", regexp.MustCompile(`(?i)<PESVisualization([^>]*?)/?>`), "Interactive PES Visualization"},
	{"chart", regexp.MustCompile(`(?i)<InteractiveChart([^>]*?)/?>`), "Interactive Chart"},
	{"math", regexp.MustCompile(`(?s)<MathEquation([^>]*)>(.*?)</MathEquation>`), ""},
	{"reaction", regexp.MustCompile(`(?i)<ReactionAnimation([^>]*?)/?>`), "SN2 Reaction Animation"},
	{"energy", regexp.MustCompile(`(?i)<EnergyDiagram([^>]*?)/?>`), "Computational Method Comparison"},
}

var attrPattern = regexp.MustCompile(`(\w+)="([^"]*)"`)

// codeRegion matches what the code and inline stages will turn into code:
// fenced blocks and single-line code spans. Markers inside them are shown
// as written.
var codeRegion = regexp.MustCompile("(?s)```\\w*\\n.*?```|`[^`\\n]+`")

type widgetData struct {
	Title    string
	Label    string
	Equation template.HTML
}

var widgetTemplates = template.Must(template.New("widgets").Parse(`
{{define "pes"}}<div class="widget widget-pes">
<div class="widget-header"><h3>{{.Title}}</h3><button type="button" disabled>Start Animation</button></div>
<div class="widget-canvas widget-gradient"><span>🧪 Interactive 3D PES Visualization</span></div>
<p class="widget-caption">Interactive 3D visualization showing energy minima (green), transition states (yellow), and energy landscape.</p>
<ul class="widget-legend"><li class="legend-minima">Minima</li><li class="legend-ts">Transition State</li><li class="legend-scale">Energy Scale</li></ul>
</div>{{end}}
{{define "chart"}}<div class="widget widget-chart">
<h3>{{.Title}}</h3>
<div class="widget-canvas"><div class="widget-icon">📊</div><p>Interactive Chart Component</p><p class="widget-hint">Click and interact with data points</p></div>
</div>{{end}}
{{define "math"}}<div class="widget widget-math">
<div class="equation">{{.Equation}}</div>{{if .Label}}
<div class="equation-label">{{.Label}}</div>{{end}}
</div>{{end}}
{{define "reaction"}}<div class="widget widget-reaction">
<div class="widget-header"><h3>{{.Title}}</h3><button type="button" disabled>▶ Animate</button></div>
<div class="reaction-equation">OH⁻ + CH₃Cl → [HO···CH₃···Cl]⁻ → CH₃OH + Cl⁻</div>
<div class="widget-canvas"><div class="widget-icon">⚗️</div><p>Animated Reaction Pathway</p><p class="widget-hint">Energy profile with molecular structures</p></div>
</div>{{end}}
{{define "energy"}}<div class="widget widget-energy">
<div class="widget-header"><h3>{{.Title}}</h3><div class="widget-tabs"><button type="button" class="active" disabled>Accuracy</button><button type="button" disabled>Cost</button><button type="button" disabled>Efficiency</button></div></div>
<div class="widget-canvas"><div class="widget-icon">📈</div><p>Interactive Method Comparison</p><p class="widget-hint">Compare HF, DFT, MP2, CCSD(T) methods</p></div>
</div>{{end}}
`))

// renderWidgets replaces every known marker outside code with its
// placeholder. Markers are matched by pattern, not parsed: an unclosed
// MathEquation simply stays in the text.
func renderWidgets(d *document) {
	d.text = outsideCode(d.text, d.expandWidgets)
}

// outsideCode applies fn to the parts of text that are not code.
func outsideCode(text string, fn func(string) string) string {
	var b strings.Builder
	last := 0
	for _, loc := range codeRegion.FindAllStringIndex(text, -1) {
		b.WriteString(fn(text[last:loc[0]]))
		b.WriteString(text[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(fn(text[last:]))
	return b.String()
}

func (d *document) expandWidgets(text string) string {
	for _, w := range widgets {
		text = w.pattern.ReplaceAllStringFunc(text, func(m string) string {
			sub := w.pattern.FindStringSubmatch(m)
			attrs := parseAttrs(sub[1])

			data := widgetData{Title: w.defaultTitle, Label: attrs["label"]}
			if t := attrs["title"]; t != "" {
				data.Title = t
			}
			if w.name == "math" {
				data.Equation = template.HTML(formatEquation(sub[2]))
			}

			var buf bytes.Buffer
			if err := widgetTemplates.ExecuteTemplate(&buf, w.name, data); err != nil {
				log.Printf("渲染组件 %s 失败: %v", w.name, err)
				return m
			}
			return d.seal(buf.String(), true)
		})
	}
	return text
}

func parseAttrs(s string) map[string]string {
	attrs := make(map[string]string)
	for _, m := range attrPattern.FindAllStringSubmatch(s, -1) {
		attrs[m[1]] = m[2]
	}
	return attrs
}

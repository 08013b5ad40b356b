package handlers

import (
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"folio/internal/utils"

	"github.com/gin-contrib/multitemplate"
)

// views maps each page template to the files it is parsed from. base.html
// comes first so it is the template that gets executed.
var views = map[string][]string{
	"home.html":     {"base.html", "home.html", "_post_list.html"},
	"blog.html":     {"base.html", "blog.html", "_post_list.html", "_pagination.html"},
	"post.html":     {"base.html", "post.html"},
	"tag.html":      {"base.html", "tag.html", "_post_list.html"},
	"page.html":     {"base.html", "page.html"},
	"projects.html": {"base.html", "projects.html"},
	"login.html":    {"base.html", "login.html"},
	"admin.html":    {"base.html", "admin.html"},
	"settings.html": {"base.html", "settings.html"},
	"404.html":      {"base.html", "404.html"},
	"error.html":    {"base.html", "error.html"},
}

// TemplateFuncs are available in every template.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDate": utils.FormatDate,
		"isoDate":    utils.ISODate,
		"lower":      strings.ToLower,
		"join":       strings.Join,
	}
}

// NewRenderer parses every view from fsys.
func NewRenderer(fsys fs.FS) (multitemplate.Renderer, error) {
	r := multitemplate.NewRenderer()
	for name, files := range views {
		tpl, err := template.New(files[0]).Funcs(TemplateFuncs()).ParseFS(fsys, files...)
		if err != nil {
			return nil, fmt.Errorf("解析模板失败 %s: %w", name, err)
		}
		r.Add(name, tpl)
	}
	return r, nil
}

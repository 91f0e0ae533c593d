package http

import (
	"html/template"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fyrsmithlabs/phaseart/internal/phase"
	"github.com/fyrsmithlabs/phaseart/internal/render"
	"github.com/fyrsmithlabs/phaseart/internal/svg"
)

const pageTemplate = "index"

// Opacity applied to a phase group hidden from the legend.
const dimmedOpacity = "0.1"

var indexPage = template.Must(template.New(pageTemplate).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { margin: 0; background: #0d1117; color: #c9d1d9; font-family: system-ui, sans-serif; }
  main { display: flex; flex-direction: column; align-items: center; padding: 24px; }
  #artwork svg { max-width: 100%; height: auto; }
  #legend { display: flex; flex-wrap: wrap; gap: 12px; margin-top: 16px; list-style: none; padding: 0; }
  #legend li { display: flex; align-items: center; gap: 6px; cursor: pointer; user-select: none; }
  #legend li.off { opacity: 0.4; }
  .swatch { width: 14px; height: 14px; border-radius: 3px; display: inline-block; }
</style>
</head>
<body>
<main>
<h1>{{.Title}}</h1>
<div id="artwork">{{.Artwork}}</div>
<ul id="legend">
{{- range .Phases}}
  <li data-phase="{{.Name}}"><span class="swatch" style="background: {{.Color}}"></span>{{.Name}} <small>{{.Motion}}</small></li>
{{- end}}
</ul>
</main>
<script>
document.querySelectorAll('#legend li').forEach(function (item) {
  item.addEventListener('click', function () {
    var group = document.getElementById('phase-' + item.dataset.phase);
    if (!group) { return; }
    var hidden = group.style.opacity === '{{.Dimmed}}';
    group.style.opacity = hidden ? '1' : '{{.Dimmed}}';
    item.classList.toggle('off', !hidden);
  });
});
</script>
</body>
</html>
`))

type pageData struct {
	Title   string
	Artwork template.HTML
	Phases  []PhaseResponse
	Dimmed  string
}

// newPageData embeds doc inline. The XML declaration is dropped since the
// markup sits inside an HTML body.
func newPageData(doc string) pageData {
	all := phase.All()
	phases := make([]PhaseResponse, len(all))
	for i, d := range all {
		phases[i] = newPhaseResponse(d)
	}
	return pageData{
		Title: render.Title,
		// doc is produced by the svg package, which escapes attribute and text content.
		Artwork: template.HTML(strings.TrimPrefix(doc, svg.Declaration)),
		Phases:  phases,
		Dimmed:  dimmedOpacity,
	}
}

// pageRenderer adapts html/template to echo.Renderer.
type pageRenderer struct {
	templates *template.Template
}

func newPageRenderer() *pageRenderer {
	return &pageRenderer{templates: indexPage}
}

func (r *pageRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

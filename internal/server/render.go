package server

import (
	"encoding/json"
	"html/template"
	"net/http"
)

func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
	w.Write([]byte("\n"))
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8" />
<title>geonym · {{.Space.Title}}</title>
<style>
body { margin: 0; font-family: sans-serif; display: grid; grid-template-columns: 12em 1fr 24em; }
nav a { display: block; padding: .4em 1em; color: #555; text-decoration: none; }
nav a.active { color: #000; font-weight: bold; }
main img { width: 100%; max-width: 90vh; }
pre { height: 90vh; overflow: auto; background: #F7F7F7; margin: 0; padding: 1em; }
</style>
</head>
<body>
<nav>
<div id="site">geonym</div>
<div id="tagline">shaping names</div>
<ul id="spaces">
{{- range .Spaces}}
<li><a id="{{.ID}}" href="/spaces/{{.ID}}"{{if .Active}} class="active"{{end}}>{{.ID}}</a></li>
{{- end}}
</ul>
</nav>
<main>
<h1 id="title">{{.Space.Title}}</h1>
<img id="canvas" src="/spaces/{{.Space.ID}}/image.png?{{.Query}}" alt="{{.Space.Title}}" />
<div id="summary">{{.Space.Summary}}</div>
<p><a href="/spaces/{{.Space.ID}}/image.svg?{{.Query}}">svg</a> · seed {{.Seed}}</p>
</main>
<pre><code id="structure">{{.Structure}}</code></pre>
</body>
</html>
`))

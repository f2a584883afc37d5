package view

// shellTemplate is the HTML document served for every client path. The
// session fills the app mount point once the socket connects.
const shellTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="/assets/style.css">
</head>
<body>
  <nav>
    <a href="/" data-link>Home</a>
    <a href="/words" data-link>Words</a>
    <a href="/add-word" data-link>Add Word</a>
    <a href="/languages" data-link>Languages</a>
    <a href="/add-language" data-link>Add Language</a>
    <a href="/test" data-link>Test</a>
  </nav>
  <main id="app"><p>Loading...</p></main>
  <script src="/assets/app.js"></script>
</body>
</html>
`

// pageTemplates holds the markup of every page and page region.
const pageTemplates = `
{{define "home"}}
<h1>{{.Title}}</h1>
<div class="intro">{{.Intro}}</div>
{{end}}

{{define "test"}}
<h1>Test</h1>
<button id="test-btn" data-action="test">Test</button>
<div id="message"></div>
{{end}}

{{define "words"}}
<h1>Words</h1>
<table id="word-table">
  <thead><tr><th>ID</th><th>Word</th><th>Part of Speech</th><th>Language</th></tr></thead>
  <tbody id="rows"><tr><td colspan="4">Loading...</td></tr></tbody>
</table>
{{end}}

{{define "word-rows"}}{{range .}}<tr><td>{{.ID}}</td><td><a href="/word/{{.ID}}" data-link>{{.Word}}</a></td><td>{{.POS}}</td><td>{{.Language}}</td></tr>{{else}}<tr><td colspan="4">No words yet</td></tr>{{end}}{{end}}

{{define "languages"}}
<h1>Languages</h1>
<table id="language-table">
  <thead><tr><th>ID</th><th>Code</th><th>Name</th></tr></thead>
  <tbody id="rows"><tr><td colspan="3">Loading...</td></tr></tbody>
</table>
{{end}}

{{define "language-rows"}}{{range .}}<tr><td>{{.ID}}</td><td><a href="/language/{{.ID}}" data-link>{{.Code}}</a></td><td>{{.Name}}</td></tr>{{else}}<tr><td colspan="3">No languages yet</td></tr>{{end}}{{end}}

{{define "rows-error"}}<tr><td colspan="{{.Cols}}">{{.Text}}</td></tr>{{end}}

{{define "word-detail"}}
<h1>Word Detail</h1>
<table id="word-detail">
  <tbody id="detail"><tr><td>Loading...</td></tr></tbody>
</table>
<div id="actions" class="actions"></div>
<div id="message"></div>
<p><a href="/words" data-link>&larr; Back to word list</a></p>
{{end}}

{{define "word-view"}}<tr><th>ID</th><td>{{.ID}}</td></tr><tr><th>Word</th><td>{{.Word}}</td></tr><tr><th>Part of Speech</th><td>{{.POS}}</td></tr><tr><th>Language</th><td>{{.Language}}</td></tr>{{end}}

{{define "word-edit"}}<tr><th>ID</th><td>{{.ID}}</td></tr><tr><th>Word</th><td><input type="text" id="field-word" data-field="word" value="{{.Values.word}}"></td></tr><tr><th>Part of Speech</th><td><input type="text" id="field-pos" data-field="pos" value="{{.Values.pos}}"></td></tr><tr><th>Language</th><td><select id="field-language" data-field="language">{{template "language-options" .Options}}</select></td></tr>{{end}}

{{define "language-detail"}}
<h1>Language Detail</h1>
<table id="language-detail">
  <tbody id="detail"><tr><td>Loading...</td></tr></tbody>
</table>
<div id="actions" class="actions"></div>
<div id="message"></div>
<p><a href="/languages" data-link>&larr; Back to language list</a></p>
{{end}}

{{define "language-view"}}<tr><th>ID</th><td>{{.ID}}</td></tr><tr><th>Code</th><td>{{.Code}}</td></tr><tr><th>Name</th><td>{{.Name}}</td></tr>{{end}}

{{define "language-edit"}}<tr><th>ID</th><td>{{.ID}}</td></tr><tr><th>Code</th><td><input type="text" id="field-code" data-field="code" value="{{.Values.code}}"></td></tr><tr><th>Name</th><td><input type="text" id="field-name" data-field="name" value="{{.Values.name}}"></td></tr>{{end}}

{{define "detail-error"}}<tr><td>{{.}}</td></tr>{{end}}

{{define "view-actions"}}<button id="edit-btn" data-action="edit">Edit</button>{{end}}

{{define "edit-actions"}}<button id="save" data-action="save"{{if not .}} disabled{{end}}>Save</button> <button id="cancel-btn" class="btn-secondary" data-action="cancel">Cancel</button>{{end}}

{{define "language-options"}}{{range .}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}{{end}}

{{define "add-word"}}
<h1>Add Word</h1>
<div class="form-row"><label for="field-word">Word</label><input type="text" id="field-word" data-field="word" value=""></div>
<div class="form-row"><label for="field-pos">Part of Speech</label><input type="text" id="field-pos" data-field="pos" value=""></div>
<div class="form-row"><label for="field-language">Language</label><select id="field-language" data-field="language"><option value="">Loading...</option></select></div>
<button id="save" data-action="create" disabled>Save</button>
<div id="message"></div>
{{end}}

{{define "add-language"}}
<h1>Add Language</h1>
<div class="form-row"><label for="field-code">Code</label><input type="text" id="field-code" data-field="code" value=""></div>
<div class="form-row"><label for="field-name">Name</label><input type="text" id="field-name" data-field="name" value=""></div>
<button id="save" data-action="create" disabled>Save</button>
<div id="message"></div>
{{end}}

{{define "notice"}}<div class="message {{.Kind}}" data-notice="{{.ID}}">{{.Text}}</div>{{end}}
`

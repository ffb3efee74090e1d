package gopagenav

import (
	"bytes"
	"html/template"
)

type (
	// LinkRenderFunc renders a single link descriptor into a markup fragment.
	LinkRenderFunc func(link Link) (template.HTML, error)

	// ItemRenderFunc wraps an already-rendered link fragment into an item of
	// the control.
	ItemRenderFunc func(item Item) (template.HTML, error)

	// LayoutRenderFunc wraps the concatenated item fragments into the final
	// control.
	LayoutRenderFunc func(layout Layout) (template.HTML, error)
)

// Item carries one rendered link fragment into the item hook. Class always
// equals the css class of the wrapped link.
type Item struct {
	Link     Link
	Fragment template.HTML
	Class    string
}

// Layout carries the concatenated item fragments into the layout hook. Class
// is the configured container class.
type Layout struct {
	Content template.HTML
	Class   string
}

var (
	_linkTemplate = template.Must(template.New("link").Parse(
		`{{if eq .Role "gap"}}<span{{with .Class}} class="{{.}}"{{end}}>{{.Text}}</span>` +
			`{{else}}<a{{with .Class}} class="{{.}}"{{end}} href="{{.URL}}">{{.Text}}</a>{{end}}`))

	_itemTemplate = template.Must(template.New("item").Parse(
		`<li{{with .Class}} class="{{.}}"{{end}}>{{.Fragment}}</li>`))

	_layoutTemplate = template.Must(template.New("layout").Parse(
		`<ul{{with .Class}} class="{{.}}"{{end}}>{{.Content}}</ul>`))
)

// DefaultLinkRenderer renders an anchor for navigable links and a span for
// gap placeholders.
func DefaultLinkRenderer(link Link) (template.HTML, error) {
	return executeTemplate(_linkTemplate, link)
}

// DefaultItemRenderer wraps a link fragment in a list item.
func DefaultItemRenderer(item Item) (template.HTML, error) {
	return executeTemplate(_itemTemplate, item)
}

// DefaultLayoutRenderer wraps the whole control in an unordered list.
func DefaultLayoutRenderer(layout Layout) (template.HTML, error) {
	return executeTemplate(_layoutTemplate, layout)
}

var (
	_ LinkRenderFunc   = DefaultLinkRenderer
	_ ItemRenderFunc   = DefaultItemRenderer
	_ LayoutRenderFunc = DefaultLayoutRenderer
)

func executeTemplate(tpl *template.Template, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return template.HTML(buf.String()), nil
}

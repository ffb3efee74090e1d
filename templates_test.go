package gopagenav

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_DefaultLinkRenderer(t *testing.T) {
	tests := []struct {
		name string
		link Link
		want template.HTML
	}{
		{
			name: "anchor with class",
			link: Link{Role: RolePage, Class: "on", URL: "/p/2", Text: "2"},
			want: `<a class="on" href="/p/2">2</a>`,
		},
		{
			name: "anchor without class omits the attribute",
			link: Link{Role: RoleNext, URL: "/p/3", Text: "›"},
			want: `<a href="/p/3">›</a>`,
		},
		{
			name: "disabled link keeps the inert href",
			link: Link{Role: RolePage, Class: "active disabled", URL: InertHref, Text: "3"},
			want: `<a class="active disabled" href="#">3</a>`,
		},
		{
			name: "gap renders a span",
			link: Link{Role: RoleGap, Class: "dots", Text: "…"},
			want: `<span class="dots">…</span>`,
		},
		{
			name: "text is escaped",
			link: Link{Role: RolePage, URL: "/p/2", Text: "<b>"},
			want: `<a href="/p/2">&lt;b&gt;</a>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DefaultLinkRenderer(tt.link)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_DefaultItemRenderer(t *testing.T) {
	got, err := DefaultItemRenderer(Item{Fragment: `<a href="#">1</a>`, Class: "active"})
	require.NoError(t, err)
	require.Equal(t, template.HTML(`<li class="active"><a href="#">1</a></li>`), got)

	got, err = DefaultItemRenderer(Item{Fragment: `<a href="/p/2">2</a>`})
	require.NoError(t, err)
	require.Equal(t, template.HTML(`<li><a href="/p/2">2</a></li>`), got)
}

func Test_DefaultLayoutRenderer(t *testing.T) {
	got, err := DefaultLayoutRenderer(Layout{Content: "<li>1</li>", Class: "pagination"})
	require.NoError(t, err)
	require.Equal(t, template.HTML(`<ul class="pagination"><li>1</li></ul>`), got)

	got, err = DefaultLayoutRenderer(Layout{Content: "<li>1</li>"})
	require.NoError(t, err)
	require.Equal(t, template.HTML(`<ul><li>1</li></ul>`), got)
}

package gopagenav

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/samber/lo"
)

// Nav renders a paginated navigation control: a First/Previous pair, a window
// of numbered page links around the current page and a Next/Last pair.
//
// Configure it once with the With* methods, then call Render for every page
// state. A Nav is read-only during Render, so a single instance may be reused
// across renders and goroutines.
//
//	markup, err := gopagenav.NewNav().
//		WithRadius(2).
//		WithPageURL(gopagenav.URLQuery("/articles", "page")).
//		Render(3, 12)
type Nav struct {
	radius        int
	alwaysShowNav bool
	edges         bool
	pageURL       PageURLFunc
	style         Style
	labels        Labels
	renderLink    LinkRenderFunc
	renderItem    ItemRenderFunc
	renderLayout  LayoutRenderFunc
}

// NewNav returns a Nav with the default radius, style, labels and rendering
// hooks. The page URL builder has no default and must be set with WithPageURL
// before Render.
func NewNav() *Nav {
	return &Nav{
		radius:       DefaultRadius,
		style:        DefaultStyle(),
		labels:       DefaultLabels(),
		renderLink:   DefaultLinkRenderer,
		renderItem:   DefaultItemRenderer,
		renderLayout: DefaultLayoutRenderer,
	}
}

// WithRadius sets the number of page links shown on each side of the current
// page. A radius of zero shows the current page alone.
//
// IMPORTANT:
// If the radius is not within [0, MaxRadius], NormalizeRadius will be applied.
func (n *Nav) WithRadius(radius int) *Nav {
	if n == nil {
		n = new(Nav)
	}

	n.radius = NormalizeRadius(radius)

	return n
}

// WithAlwaysShowNav forces the First/Previous and Next/Last pairs to render
// even when the current page cannot move in their direction. Such links
// render disabled.
func (n *Nav) WithAlwaysShowNav() *Nav {
	if n == nil {
		n = new(Nav)
	}

	n.alwaysShowNav = true

	return n
}

// WithEdges extends the window with the first and last page links whenever
// the window does not reach them, separated from the window by a gap
// placeholder when at least one page is skipped.
func (n *Nav) WithEdges() *Nav {
	if n == nil {
		n = new(Nav)
	}

	n.edges = true

	return n
}

// WithPageURL sets the builder used to derive the target URL of every
// non-disabled link.
func (n *Nav) WithPageURL(fn PageURLFunc) *Nav {
	if n == nil {
		n = new(Nav)
	}

	n.pageURL = fn

	return n
}

// WithStyle substitutes the whole css class configuration.
func (n *Nav) WithStyle(style Style) *Nav {
	if n == nil {
		n = new(Nav)
	}

	n.style = style

	return n
}

// WithLabels substitutes the whole link label configuration.
func (n *Nav) WithLabels(labels Labels) *Nav {
	if n == nil {
		n = new(Nav)
	}

	n.labels = labels

	return n
}

// WithLinkRenderer replaces the hook rendering a single link.
func (n *Nav) WithLinkRenderer(fn LinkRenderFunc) *Nav {
	if n == nil {
		n = new(Nav)
	}

	n.renderLink = fn

	return n
}

// WithItemRenderer replaces the hook wrapping a rendered link into an item.
func (n *Nav) WithItemRenderer(fn ItemRenderFunc) *Nav {
	if n == nil {
		n = new(Nav)
	}

	n.renderItem = fn

	return n
}

// WithLayoutRenderer replaces the hook wrapping the whole control.
func (n *Nav) WithLayoutRenderer(fn LayoutRenderFunc) *Nav {
	if n == nil {
		n = new(Nav)
	}

	n.renderLayout = fn

	return n
}

// GetRadius returns the window radius as it is stored in Nav.
func (n *Nav) GetRadius() int {
	if n == nil {
		return 0
	}

	return n.radius
}

// IsAlwaysShowNav returns true if the navigation pairs render unconditionally.
func (n *Nav) IsAlwaysShowNav() bool {
	if n == nil {
		return false
	}

	return n.alwaysShowNav
}

// HasEdges returns true if the window is extended with edge page links.
func (n *Nav) HasEdges() bool {
	if n == nil {
		return false
	}

	return n.edges
}

// GetPageURL returns the page URL builder stored in Nav as-is.
func (n *Nav) GetPageURL() PageURLFunc {
	if n == nil {
		return nil
	}

	return n.pageURL
}

// GetStyle returns the css class configuration stored in Nav.
func (n *Nav) GetStyle() Style {
	if n == nil {
		return Style{}
	}

	return n.style
}

// GetLabels returns the label configuration stored in Nav.
func (n *Nav) GetLabels() Labels {
	if n == nil {
		return Labels{}
	}

	return n.labels
}

// Links derives the ordered sequence of link descriptors for the given page
// state: First, Previous, the page window (extended with edge pages and gap
// placeholders when WithEdges is set), Next, Last.
//
// The First/Previous pair is present when WithAlwaysShowNav is set or when
// the current page can move backwards; the Next/Last pair when it can move
// forwards. The pairs are independent of each other.
//
// Links never fails: degenerate page states produce a shorter, possibly
// empty, sequence.
func (n *Nav) Links(current, total int) []Link {
	window := Window(current, total, n.GetRadius())

	links := make([]Link, 0, len(window)+8)

	if n.IsAlwaysShowNav() || (total > 1 && current != 1) {
		links = append(links,
			n.newLink(RoleFirst, 1, current),
			n.newLink(RolePrevious, max(1, current-1), current),
		)
	}

	if n.HasEdges() && len(window) > 0 && window[0] > 1 {
		links = append(links, n.newLink(RolePage, 1, current))
		if window[0] > 2 {
			links = append(links, n.newGap())
		}
	}

	links = append(links, lo.Map(window, func(page int, _ int) Link {
		return n.newLink(RolePage, page, current)
	})...)

	if last := lo.LastOrEmpty(window); n.HasEdges() && len(window) > 0 && last < total {
		if last < total-1 {
			links = append(links, n.newGap())
		}
		links = append(links, n.newLink(RolePage, total, current))
	}

	if n.IsAlwaysShowNav() || current < total {
		links = append(links,
			n.newLink(RoleNext, min(current+1, total), current),
			n.newLink(RoleLast, total, current),
		)
	}

	return links
}

// Render renders the navigation control for the given page state. Every link
// is rendered through the link hook, wrapped by the item hook, and the
// concatenated items are handed as a whole to the layout hook.
//
// Render returns an error if the Nav is not fully configured or if a hook
// fails; hook errors propagate wrapped, never recovered. Rendering is
// idempotent, so a failed render may simply be re-invoked.
func (n *Nav) Render(current, total int) (template.HTML, error) {
	err := n.validate()
	if err != nil {
		return "", fmt.Errorf("cannot render: %w", err)
	}

	var buf bytes.Buffer
	for _, link := range n.Links(current, total) {
		fragment, err := n.renderLink(link)
		if err != nil {
			return "", fmt.Errorf("cannot render %s link: %w", link.Role, err)
		}

		item, err := n.renderItem(Item{Link: link, Fragment: fragment, Class: link.Class})
		if err != nil {
			return "", fmt.Errorf("cannot render %s item: %w", link.Role, err)
		}

		buf.WriteString(string(item))
	}

	out, err := n.renderLayout(Layout{
		Content: template.HTML(buf.String()),
		Class:   n.GetStyle().Container,
	})
	if err != nil {
		return "", fmt.Errorf("cannot render layout: %w", err)
	}

	return out, nil
}

func (n *Nav) validate() error {
	if n == nil {
		return fmt.Errorf("nav is nil")
	}

	if n.pageURL == nil {
		return fmt.Errorf("nil page url func")
	}
	if n.renderLink == nil {
		return fmt.Errorf("nil link renderer")
	}
	if n.renderItem == nil {
		return fmt.Errorf("nil item renderer")
	}
	if n.renderLayout == nil {
		return fmt.Errorf("nil layout renderer")
	}

	return nil
}

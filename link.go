package gopagenav

import (
	"strings"

	"github.com/samber/lo"
)

// InertHref is the placeholder target emitted for disabled links instead of a
// real URL.
const InertHref = "#"

// Link is the fully derived descriptor of a single navigation link. It is
// created fresh for every link of every render and consumed immediately by
// the rendering hooks; nothing retains it afterwards.
type Link struct {
	// Role - slot the link occupies in the control.
	Role Role
	// Page - target page number. Zero for gap placeholders.
	Page int
	// Current - page the control was rendered for.
	Current int
	// Disabled is true when the link targets the current page, regardless of
	// role. A First link is disabled while on page 1, a Last link while on
	// the last page.
	Disabled bool
	// Active is true only for the numbered link of the current page.
	Active bool
	// Class - effective css class: the role's base class, then the active
	// class, then the disabled class, whichever apply.
	Class string
	// Text - label or page number displayed inside the link.
	Text string
	// URL - link target. InertHref when disabled, empty for gaps.
	URL string
}

// newLink derives the link descriptor for a role targeting page while current
// is displayed.
func (n *Nav) newLink(role Role, page, current int) Link {
	style := n.GetStyle()

	disabled := page == current
	active := role == RolePage && disabled

	// The URL builder is never invoked for disabled links. A missing builder
	// degrades to an empty target.
	url := InertHref
	if !disabled {
		url = ""
		if fn := n.GetPageURL(); fn != nil {
			url = fn(page)
		}
	}

	return Link{
		Role:     role,
		Page:     page,
		Current:  current,
		Disabled: disabled,
		Active:   active,
		Class: joinClasses(
			style.classFor(role),
			lo.Ternary(active, style.Active, ""),
			lo.Ternary(disabled, style.Disabled, ""),
		),
		Text: n.GetLabels().textFor(role, page),
		URL:  url,
	}
}

// newGap builds the placeholder emitted between an edge page and the window.
func (n *Nav) newGap() Link {
	return Link{
		Role:  RoleGap,
		Class: n.GetStyle().classFor(RoleGap),
		Text:  n.GetLabels().textFor(RoleGap, 0),
	}
}

// joinClasses joins css classes with single spaces. Empty entries contribute
// nothing, so the result carries no stray whitespace.
func joinClasses(classes ...string) string {
	return strings.Join(lo.Compact(classes), " ")
}

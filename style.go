package gopagenav

import (
	"fmt"
	"strconv"
)

// Style defines the css classes applied to the rendered control. Per-role
// classes are always applied to the matching links; Active and Disabled are
// appended on top when the corresponding link state is derived. Container is
// applied to the layout wrapper. Empty values contribute nothing.
type Style struct {
	Container string
	First     string
	Previous  string
	Page      string
	Next      string
	Last      string
	Gap       string
	Active    string
	Disabled  string
}

// classFor returns the base class configured for the given role.
func (s Style) classFor(role Role) string {
	switch role {
	case RoleFirst:
		return s.First
	case RolePrevious:
		return s.Previous
	case RolePage:
		return s.Page
	case RoleNext:
		return s.Next
	case RoleLast:
		return s.Last
	case RoleGap:
		return s.Gap
	default:
		panic(fmt.Errorf("cannot map role '%s' to a css class", role))
	}
}

// DefaultStyle returns the minimal style: no per-role or container classes,
// only the "active" and "disabled" state markers.
func DefaultStyle() Style {
	return Style{
		Active:   "active",
		Disabled: "disabled",
	}
}

// BootstrapStyle returns a style matching Bootstrap's pagination component.
func BootstrapStyle() Style {
	return Style{
		Container: "pagination",
		Active:    "active",
		Disabled:  "disabled",
	}
}

// Labels defines the text shown inside the non-numbered links. Numbered page
// links always display the page number itself.
type Labels struct {
	First    string
	Previous string
	Next     string
	Last     string
	Gap      string
}

// textFor returns the text for a link of the given role targeting page.
func (l Labels) textFor(role Role, page int) string {
	switch role {
	case RoleFirst:
		return l.First
	case RolePrevious:
		return l.Previous
	case RolePage:
		return strconv.Itoa(page)
	case RoleNext:
		return l.Next
	case RoleLast:
		return l.Last
	case RoleGap:
		return l.Gap
	default:
		panic(fmt.Errorf("cannot map role '%s' to a label", role))
	}
}

// DefaultLabels returns the conventional arrow labels.
func DefaultLabels() Labels {
	return Labels{
		First:    "«",
		Previous: "‹",
		Next:     "›",
		Last:     "»",
		Gap:      "…",
	}
}

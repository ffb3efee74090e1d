package gopagenav

// Role identifies the slot a link occupies in the navigation control.
// It determines which css class and label apply to the link.
type Role string

func (r Role) Valid() bool {
	switch r {
	case RoleFirst, RolePrevious, RolePage, RoleNext, RoleLast, RoleGap:
		return true
	default:
		return false
	}
}

const (
	RoleFirst    Role = "first"
	RolePrevious Role = "previous"
	RolePage     Role = "page"
	RoleNext     Role = "next"
	RoleLast     Role = "last"

	// RoleGap marks a non-navigable placeholder between an edge page and the
	// window when intermediate pages are skipped. Gap links are never
	// disabled, never active and have no URL.
	RoleGap Role = "gap"
)

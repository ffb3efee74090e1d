package gopagenav

import "fmt"

// testPageURL is the deterministic page URL builder shared by tests.
func testPageURL(page int) string {
	return fmt.Sprintf("/page/%d", page)
}

func rolesOf(links []Link) []Role {
	ret := make([]Role, 0, len(links))
	for _, link := range links {
		ret = append(ret, link.Role)
	}

	return ret
}

// pagesOf returns the target pages of the links carrying the given role.
func pagesOf(links []Link, role Role) []int {
	ret := make([]int, 0, len(links))
	for _, link := range links {
		if link.Role == role {
			ret = append(ret, link.Page)
		}
	}

	return ret
}

package gopagenav

import (
	"fmt"
	"net/url"
	"strconv"
)

// PageURLFunc produces the navigable target for a page number. The render
// pipeline invokes it only for links that are not disabled. Page numbers are
// 1-indexed.
type PageURLFunc func(page int) string

// URLFormat returns a PageURLFunc which returns base for the first page and
// fmt.Sprintf(format, base, page) for every other page.
//
// Example:
//
//	URLFormat("%spage-%d/", "/popular/")(3) // "/popular/page-3/"
func URLFormat(format, base string) PageURLFunc {
	return func(page int) string {
		if page == 1 {
			return base
		}

		return fmt.Sprintf(format, base, page)
	}
}

// URLQuery returns a PageURLFunc which sets the given query parameter on the
// base URL, preserving the rest of the query string. The first page drops the
// parameter instead. A base that does not parse as a URL is returned
// untouched.
//
// Example:
//
//	URLQuery("/items?q=go", "page")(3) // "/items?page=3&q=go"
func URLQuery(base, param string) PageURLFunc {
	return func(page int) string {
		u, err := url.Parse(base)
		if err != nil {
			return base
		}

		q := u.Query()
		if page == 1 {
			q.Del(param)
		} else {
			q.Set(param, strconv.Itoa(page))
		}
		u.RawQuery = q.Encode()

		return u.String()
	}
}

package gopagenav

// Package gopagenav renders paginated navigation controls (first, previous,
// numbered pages, next, last) for a known page count and current page.
//
// Overview
//
// gopagenav does not fetch or paginate data. It computes which page links to
// show, derives the state of every link (target page, disabled/active flags,
// css classes, URL) and renders the result through three replaceable hooks:
//   - link: a single anchor, or a span for gap placeholders.
//   - item: the wrapper around one rendered link fragment.
//   - layout: the wrapper around the whole control.
//
// Key concepts
//   - Nav: holds the configuration (window radius, style, labels, hooks, URL
//     builder) and renders the control for a page state.
//   - Window: the pure page-window selection algorithm, usable on its own.
//   - Link: the per-link descriptor consumed by the rendering hooks.
//
// See README for examples and usage details.

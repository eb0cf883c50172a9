// Package ui builds the class lists of shared page primitives.
package ui

import (
	"fmt"
	"strings"
)

// Variant is the visual emphasis of a button
type Variant string

const (
	Primary   Variant = "primary"
	Secondary Variant = "secondary"
	Outline   Variant = "outline"
)

// Size is the button size
type Size string

const (
	Small  Size = "sm"
	Medium Size = "md"
	Large  Size = "lg"
)

const (
	buttonBase   = "btn"
	loadingClass = "btn-loading"
	cardBase     = "card"
)

var variants = map[Variant]string{
	Primary:   "btn-primary",
	Secondary: "btn-secondary",
	Outline:   "btn-outline",
}

var sizes = map[Size]string{
	Small:  "btn-sm",
	Medium: "btn-md",
	Large:  "btn-lg",
}

// ButtonClass returns the class list for a button. Unknown variants and sizes
// fall back to primary and md.
func ButtonClass(variant, size string, loading bool, extra ...string) string {
	v, ok := variants[Variant(variant)]
	if !ok {
		v = variants[Primary]
	}
	s, ok := sizes[Size(size)]
	if !ok {
		s = sizes[Medium]
	}

	classes := []string{buttonBase, v, s}
	if loading {
		classes = append(classes, loadingClass)
	}
	return join(classes, extra)
}

// CardClass returns the class list for a card
func CardClass(extra ...string) string {
	return join([]string{cardBase}, extra)
}

func join(classes, extra []string) string {
	for _, e := range extra {
		if e = strings.TrimSpace(e); e != "" {
			classes = append(classes, e)
		}
	}
	return strings.Join(classes, " ")
}

// NavItem is one navigation link
type NavItem struct {
	Path   string
	Label  string
	Icon   string
	Active bool
}

var navItems = []NavItem{
	{Path: "/upload", Label: "Upload", Icon: "upload"},
	{Path: "/results", Label: "Results", Icon: "video"},
	{Path: "/ad-creatives", Label: "Ad Creatives", Icon: "pen-tool"},
	{Path: "/dashboard", Label: "Dashboard", Icon: "layout-dashboard"},
}

// NavItems returns the navigation links with the one matching path marked active
func NavItems(path string) []NavItem {
	out := make([]NavItem, len(navItems))
	for i, item := range navItems {
		item.Active = item.Path == path
		out[i] = item
	}
	return out
}

// Timestamp formats seconds the way highlights are listed: whole seconds stay integral
func Timestamp(seconds float64) string {
	if seconds == float64(int64(seconds)) {
		return fmt.Sprintf("%d", int64(seconds))
	}
	return fmt.Sprintf("%.1f", seconds)
}

// Clock formats seconds as m:ss
func Clock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int64(seconds + 0.5)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Percent returns v as a share of max for bar widths, in the range 0..100
func Percent(v, max float64) float64 {
	if max <= 0 || v <= 0 {
		return 0
	}
	if v >= max {
		return 100
	}
	return v * 100 / max
}

package report

import (
	"strings"
	"unicode/utf8"
)

const (
	DefaultWidth = 100
	DefaultFill  = "="
)

// Banner centres text in a line of width characters padded with fill. The
// left pad gets the smaller half. Text wider than width is returned as is.
func Banner(text, fill string, width int) string {
	if fill == "" {
		fill = DefaultFill
	}
	pad := max(0, width-utf8.RuneCountInString(text))
	left := pad / 2
	return strings.Repeat(fill, left) + text + strings.Repeat(fill, pad-left)
}

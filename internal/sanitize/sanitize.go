// Package sanitize cleans HTML coming back from the commerce platform before
// it is served to browsers. Product descriptions are merchant-authored rich
// text and may carry script tags or event handlers.
package sanitize

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	productPolicy = bluemonday.UGCPolicy()
	strictPolicy  = bluemonday.StrictPolicy()

	shortcodeRe  = regexp.MustCompile(`\[[\w\s="'/]+\]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// ProductHTML keeps the visual structure of a product description while
// removing scripts, event handlers and other active content.
func ProductHTML(html string) string {
	return productPolicy.Sanitize(html)
}

// PlainText strips all markup and page-builder shortcodes, collapsing the
// result into a single line capped at maxLength runes.
func PlainText(html string, maxLength int) string {

	text := strictPolicy.Sanitize(html)
	text = shortcodeRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = strings.ReplaceAll(text, "&#160;", " ")
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	runes := []rune(text)
	if maxLength > 0 && len(runes) > maxLength {
		return string(runes[:maxLength])
	}

	return text
}

// Package sanitize cleans HTML submitted from TinyMCE editors before it is
// stored or re-rendered.
package sanitize

import (
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	contentPolicyOnce sync.Once
	contentPolicy     *bluemonday.Policy
)

var alignClass = regexp.MustCompile(`^(?:(?:align(?:left|right|center|justify)|mce-[a-z0-9-]+)\s*)+$`)

// Content sanitizes editor markup. Scripts, event handlers and inline styles
// are removed; tables, alignment classes and links survive.
func Content(html string) string {
	trimmed := strings.TrimSpace(html)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(Policy().Sanitize(trimmed))
}

// Policy returns the shared editor content policy.
func Policy() *bluemonday.Policy {
	contentPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()

		policy.AllowElements("span", "u", "s", "sub", "sup", "caption", "colgroup", "col")
		policy.AllowAttrs("class").Matching(alignClass).OnElements(
			"p", "span", "div", "img", "table", "td", "th", "h1", "h2", "h3", "h4", "h5", "h6",
		)
		policy.AllowAttrs("colspan", "rowspan").Matching(bluemonday.Integer).OnElements("td", "th")
		policy.AllowAttrs("span").Matching(bluemonday.Integer).OnElements("col", "colgroup")
		policy.AllowAttrs("border", "cellpadding", "cellspacing").Matching(bluemonday.Integer).OnElements("table")
		policy.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
		policy.AddTargetBlankToFullyQualifiedLinks(false)

		contentPolicy = policy
	})
	return contentPolicy
}

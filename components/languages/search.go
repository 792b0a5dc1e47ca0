package languages

import (
	"sort"
	"strings"
)

// Option is a value/label pair for select-style inputs.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Search filters codes by a case-insensitive substring of the code or its
// display name. Prefix matches sort first.
func Search(codes []string, query string, limit int, opts Options) []string {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchTop {
			if len(codes) <= limit {
				return append([]string{}, codes...)
			}
			return append([]string{}, codes[:limit]...)
		}
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]matchedCode, 0, 16)
	for _, code := range codes {
		lowerCode := strings.ToLower(code)
		lowerName := strings.ToLower(DisplayName(code))
		if !strings.Contains(lowerCode, q) && !strings.Contains(lowerName, q) {
			continue
		}
		matches = append(matches, matchedCode{
			code:     code,
			isPrefix: strings.HasPrefix(lowerCode, q) || strings.HasPrefix(lowerName, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].code < matches[j].code
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.code)
	}
	return out
}

func SearchOptions(codes []string, query string, limit int, opts Options) []Option {
	results := Search(codes, query, limit, opts)
	if len(results) == 0 {
		return nil
	}

	out := make([]Option, 0, len(results))
	for _, code := range results {
		out = append(out, Option{Value: code, Label: DisplayName(code)})
	}
	return out
}

type matchedCode struct {
	code     string
	isPrefix bool
}

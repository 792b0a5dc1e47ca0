package languages

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var errNilRegistry = errors.New("languages: nil registry")

// Negotiate matches an Accept-Language header value against codes. Header
// entries are tried in descending q order and entries with q=0 are dropped.
// Each entry first matches a code exactly (e.g. "pirate", which is not a BCP
// 47 language) and then goes through a language.Matcher over the codes that
// parse as BCP 47 tags. fallback is returned when nothing matches.
func Negotiate(codes []string, acceptLanguage, fallback string) string {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" || len(codes) == 0 {
		return fallback
	}

	known := make(map[string]string, len(codes))
	supported := make([]language.Tag, 0, len(codes))
	supportedCodes := make([]string, 0, len(codes))
	for _, code := range codes {
		known[strings.ToLower(code)] = code
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		supportedCodes = append(supportedCodes, code)
	}

	var matcher language.Matcher
	if len(supported) > 0 {
		matcher = language.NewMatcher(supported)
	}

	for _, name := range acceptedNames(acceptLanguage) {
		if code, ok := known[strings.ToLower(name)]; ok {
			return code
		}
		if matcher == nil {
			continue
		}
		tag, err := language.Parse(name)
		if err != nil {
			continue
		}
		_, index, confidence := matcher.Match(tag)
		if confidence == language.No || index < 0 || index >= len(supportedCodes) {
			continue
		}
		return supportedCodes[index]
	}
	return fallback
}

type acceptEntry struct {
	name    string
	quality float64
}

// acceptedNames splits an Accept-Language value into its language names,
// ordered by descending quality. Entries with q<=0, malformed weights and the
// "*" wildcard are skipped.
func acceptedNames(header string) []string {
	entries := make([]acceptEntry, 0, strings.Count(header, ",")+1)
	for _, part := range strings.Split(header, ",") {
		name, params, _ := strings.Cut(part, ";")
		name = strings.TrimSpace(name)
		if name == "" || name == "*" {
			continue
		}

		quality := 1.0
		if params = strings.TrimSpace(params); params != "" {
			key, value, ok := strings.Cut(params, "=")
			if !ok || !strings.EqualFold(strings.TrimSpace(key), "q") {
				continue
			}
			q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil {
				continue
			}
			quality = q
		}
		if quality <= 0 {
			continue
		}
		entries = append(entries, acceptEntry{name: name, quality: quality})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].quality > entries[j].quality
	})

	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.name
	}
	return names
}

// DisplayName returns the native name of a language code ("Deutsch" for
// "de"), or the code itself when the code is not a known BCP 47 language.
func DisplayName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return code
}

package languages

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"
)

//go:embed data/langs/*.js
var dataFS embed.FS

const defaultPackDir = "langs"

// packExts are the file suffixes recognised as language packs. Templated
// packs (`<code>.js.tmpl`) are rendered by the host before being served.
var packExts = []string{".js.tmpl", ".js"}

var (
	defaultOnce  sync.Once
	defaultCodes []string
	defaultErr   error
)

// DefaultFS exposes the embedded language packs rooted so that the packs live
// under "langs/", mirroring the layout of a TinyMCE distribution.
func DefaultFS() fs.FS {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		return dataFS
	}
	return sub
}

// DefaultLanguages returns the codes of the embedded language packs.
func DefaultLanguages() ([]string, error) {
	defaultOnce.Do(func() {
		defaultCodes, defaultErr = LoadCodes(DefaultFS(), defaultPackDir)
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]string{}, defaultCodes...), nil
}

// LoadCodes lists the `<code>.js` and `<code>.js.tmpl` entries of dir inside
// fsys and returns the codes sorted and de-duplicated. Subdirectories and
// other files are ignored.
func LoadCodes(fsys fs.FS, dir string) ([]string, error) {
	if fsys == nil {
		return nil, fmt.Errorf("languages: missing filesystem")
	}
	if dir == "" {
		dir = "."
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("languages: read %s: %w", dir, err)
	}

	codes := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		code, ok := packCode(entry.Name())
		if !ok {
			continue
		}
		codes = append(codes, code)
	}

	return normalizeCodes(codes), nil
}

func packCode(name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, ext := range packExts {
		if !strings.HasSuffix(lower, ext) {
			continue
		}
		code := strings.TrimSpace(name[:len(name)-len(ext)])
		return code, code != ""
	}
	return "", false
}

func normalizeCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

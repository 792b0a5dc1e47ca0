package tinymce

import (
	"io/fs"

	"github.com/goliatone/go-tinymce/components/languages"
)

// LanguagePacksFS exposes the embedded TinyMCE language packs so Go
// applications can serve them next to the editor bundle.
//
// Typical mount:
//
//	mux.Handle("/tinymce/langs/",
//	  http.StripPrefix("/tinymce/langs/",
//	    http.FileServerFS(tinymce.LanguagePacksFS()),
//	  ),
//	)
func LanguagePacksFS() fs.FS {
	base := languages.DefaultFS()
	sub, err := fs.Sub(base, languages.DefaultOptions().Dir)
	if err != nil {
		return base
	}
	return sub
}

// AvailableLanguages lists the embedded language pack codes.
func AvailableLanguages() ([]string, error) {
	return languages.DefaultLanguages()
}

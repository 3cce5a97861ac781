package localetext

import (
	"embed"
	"io/fs"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// EmbeddedLocales returns the bundled placeholder catalogs. Callers may pass
// this filesystem to LoadFS, or merge it with their own catalogs.
func EmbeddedLocales() fs.FS {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		// The embed directive guarantees the subpath exists, so panic is
		// acceptable here.
		panic(err)
	}
	return sub
}

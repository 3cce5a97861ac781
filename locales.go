package datefield

import (
	"io/fs"

	"github.com/goliatone/go-datefield/pkg/localetext"
)

// LocalesFS exposes the embedded placeholder catalogs (committed under
// pkg/localetext/locales) so applications can list, merge, or extend them
// without shipping their own files.
//
// Typical use:
//
//	set, err := localetext.LoadFS(datefield.LocalesFS())
func LocalesFS() fs.FS {
	return localetext.EmbeddedLocales()
}

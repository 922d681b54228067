package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// StaticFS exposes the embedded static assets rooted at the static directory.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The directory is embedded at compile time; failure here means the
		// binary itself is broken.
		panic(err)
	}

	return sub
}

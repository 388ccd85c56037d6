// Package web holds the staff pages served next to the API.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static/*.html static/app.css
var static embed.FS

// Pages is the page tree rooted at static/.
func Pages() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

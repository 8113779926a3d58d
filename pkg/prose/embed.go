package prose

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.yaml
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded deed template bundle so callers can render
// with the built-in definitions out of the box.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

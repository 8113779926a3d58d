package template

import (
	"io"
)

// TemplateRenderer is the template engine contract the document renderers
// rely on. The pongo2-backed implementation lives in the gotemplate
// subpackage; callers can swap in any engine with the same surface.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}

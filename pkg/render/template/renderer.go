package template

import (
	"io"
)

// TemplateRenderer is the seam the configuration loader uses to interpolate
// documents before parsing. The pongo engine in the pongo subpackage is the
// default implementation.
type TemplateRenderer interface {
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}

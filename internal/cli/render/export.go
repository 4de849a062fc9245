package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// ExportRenderer renders exported configuration
type ExportRenderer struct {
	out io.Writer
}

// NewExportRenderer creates a new export renderer
func NewExportRenderer(out io.Writer) *ExportRenderer {
	return &ExportRenderer{out: out}
}

// RenderExport prints the document, or where it was written
func (r *ExportRenderer) RenderExport(result *usecase.ExportResult) error {
	if result.Path == "" {
		_, err := r.out.Write(result.Data)
		return err
	}
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Exported %s config to %s", result.Format, getRelativePath(result.Path))))
	if result.SecretsMasked {
		fmt.Fprintln(r.out, FormatWarning("Secrets in this file are masked; pass --include-secrets to write usable keys"))
	}
	return nil
}

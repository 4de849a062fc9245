package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// EnvRenderer renders environment checks
type EnvRenderer struct {
	out io.Writer
}

// NewEnvRenderer creates a new env renderer
func NewEnvRenderer(out io.Writer) *EnvRenderer {
	return &EnvRenderer{out: out}
}

// RenderEnv renders the state of every variable the configuration reads
func (r *EnvRenderer) RenderEnv(result *usecase.CheckEnvResult) error {
	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("🔑 Environment:"))
	for _, v := range result.Variables {
		var state string
		switch {
		case !v.Set:
			state = errStyle.Sprint("❌ not set")
		case v.Empty:
			state = warnStyle.Sprint("⚠️  empty")
		default:
			state = okStyle.Sprintf("✅ %s", v.Masked)
		}
		fmt.Fprintf(r.out, "  %-18s %s\n", v.Name, state)
		fmt.Fprintf(r.out, "  %-18s %s\n", "", labelStyle.Sprintf("used by %s", strings.Join(v.UsedBy, ", ")))
	}

	if len(result.EnvFiles) > 0 {
		fmt.Fprintln(r.out)
		for _, f := range result.EnvFiles {
			fmt.Fprintf(r.out, "📁 loaded %s\n", getRelativePath(f))
		}
	}

	if missing := result.Missing(); len(missing) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%d variable(s) missing; affected settings fall back to empty values", len(missing))))
	}

	return nil
}

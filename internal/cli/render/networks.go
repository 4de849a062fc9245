package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out   io.Writer
	color bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, color bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:   out,
		color: color,
	}
}

// RenderNetworksList renders the configured networks as a table
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, r.paint(sectionHeaderStyle.Sprint, "🌐 Available Networks:"))
	fmt.Fprintln(r.out)

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = false
	t.Style().Box = table.BoxStyle{
		PaddingLeft:  "  ",
		PaddingRight: "  ",
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
	})

	header := table.Row{"NETWORK", "URL", "SIGNERS"}
	if result.Probed {
		header = append(header, "CHAIN", "BLOCK")
	}
	t.AppendHeader(header)

	for _, n := range result.Networks {
		row := table.Row{r.paint(nameStyle.Sprint, n.Name), n.URL, r.signerCell(n)}
		if result.Probed {
			if n.Error != nil || n.ErrorMessage != "" {
				row = append(row, r.paint(errStyle.Sprint, "❌ "+n.ErrorMessage), "")
			} else if n.Chain != nil {
				row = append(row, r.paint(okStyle.Sprint, fmt.Sprintf("✅ %d", n.Chain.ChainID)), n.Chain.BlockNumber)
			}
		}
		t.AppendRow(row)
	}

	fmt.Fprintln(r.out, t.Render())
	return nil
}

// RenderNetwork renders the details of a single network
func (r *NetworksRenderer) RenderNetwork(status *usecase.NetworkStatus) error {
	title := cases.Title(language.English).String(strings.ReplaceAll(status.Name, "_", " "))
	fmt.Fprintf(r.out, "%s %s\n", r.paint(sectionHeaderStyle.Sprint, "🌐 "+title), r.paint(labelStyle.Sprint, "("+status.Name+")"))
	fmt.Fprintf(r.out, "URL:       %s\n", status.URL)

	if status.AccountsEnv != "" {
		fmt.Fprintf(r.out, "Accounts:  %d from %s\n", status.AccountCount, status.AccountsEnv)
	} else {
		fmt.Fprintln(r.out, "Accounts:  none (node-managed)")
	}
	for _, signer := range status.Signers {
		fmt.Fprintf(r.out, "  signer:  %s\n", signer.Hex())
	}
	if status.SignerError != "" {
		fmt.Fprintln(r.out, FormatWarning(status.SignerError))
	}
	if status.AllowUnlimitedContractSize {
		fmt.Fprintln(r.out, "Contract size limit: disabled")
	}

	switch {
	case status.ErrorMessage != "":
		fmt.Fprintln(r.out, FormatError(status.ErrorMessage))
	case status.Chain != nil:
		fmt.Fprintf(r.out, "Chain ID:  %d\n", status.Chain.ChainID)
		fmt.Fprintf(r.out, "Block:     %d (%s)\n", status.Chain.BlockNumber, status.Chain.Latency.Round(time.Millisecond))
		if status.Explorer != "" {
			fmt.Fprintf(r.out, "Explorer:  %s\n", status.Explorer)
		}
	}

	return nil
}

func (r *NetworksRenderer) signerCell(n usecase.NetworkStatus) string {
	if n.SignerError != "" {
		return r.paint(warnStyle.Sprint, "invalid key")
	}
	if n.ReadOnly() {
		if n.AccountsEnv != "" {
			return r.paint(labelStyle.Sprint, "read-only")
		}
		return r.paint(labelStyle.Sprint, "-")
	}
	return strings.Join(lo.Map(n.Signers, func(a common.Address, _ int) string {
		return shortAddress(a.Hex())
	}), ", ")
}

func (r *NetworksRenderer) paint(style func(a ...interface{}) string, s string) string {
	if !r.color {
		return s
	}
	return style(s)
}

func shortAddress(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}

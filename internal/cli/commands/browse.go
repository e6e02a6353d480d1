package commands

import (
	"context"
	"fmt"

	"StockYard/internal/cli/service"
	"StockYard/internal/cli/tui"
	"StockYard/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

type browseCmd struct{}

func (browseCmd) Name() string        { return "browse" }
func (browseCmd) Description() string { return "Interactive inventory browser" }
func (browseCmd) Usage() string       { return "browse" }

func (browseCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	sess, gw, inv := newStack(cfg)
	if !sess.Authenticated() {
		fmt.Fprintln(Out, "Not logged in. Run: stockyard login <username> <password>")
		return nil
	}
	if err := inv.LoadDisciplines(ctx); err != nil {
		fmt.Fprintf(Out, "Warning: categories unavailable: %v\n", err)
	}
	if err := inv.LoadMaterials(ctx, service.Filters{}); err != nil {
		return err
	}
	mut := service.NewMutations(gw, inv, tui.PreConfirmed{})

	p := tea.NewProgram(tui.New(ctx, inv, mut), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func init() { RegisterCmd(browseCmd{}) }

package commands

import (
	"context"
	"fmt"

	"StockYard/internal/config"
)

type disciplinesCmd struct{}

func (disciplinesCmd) Name() string        { return "disciplines" }
func (disciplinesCmd) Description() string { return "List the discipline (category) vocabulary" }
func (disciplinesCmd) Usage() string       { return "disciplines" }

func (disciplinesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	_, _, inv := newStack(cfg)
	if err := inv.LoadDisciplines(ctx); err != nil {
		return err
	}
	ds := inv.Disciplines()
	if len(ds) == 0 {
		fmt.Fprintln(Out, "No disciplines")
		return nil
	}
	for _, d := range ds {
		fmt.Fprintf(Out, "%3d  %s\n", d.ID, d.Name)
	}
	return nil
}

func init() { RegisterCmd(disciplinesCmd{}) }

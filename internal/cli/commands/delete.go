package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"

	"StockYard/internal/cli/service"
	"StockYard/internal/config"
)

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Description() string { return "Delete a material (asks for confirmation)" }
func (deleteCmd) Usage() string       { return "delete [--yes] <id>" }

func (deleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		return ErrUsage
	}

	_, gw, inv := newStack(cfg)
	if err := inv.LoadDisciplines(ctx); err != nil {
		fmt.Fprintf(Out, "Warning: categories unavailable: %v\n", err)
	}
	if err := inv.LoadMaterials(ctx, service.Filters{}); err != nil {
		return err
	}

	var confirm service.Confirmer = promptConfirmer{}
	if *yes {
		confirm = yesConfirmer{}
	}
	mut := service.NewMutations(gw, inv, confirm)
	ok, err := mut.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(Out, "Cancelled")
		return nil
	}
	fmt.Fprintln(Out, "Item deleted successfully!")
	printInventory(Out, inv.Items())
	return nil
}

func init() { RegisterCmd(deleteCmd{}) }

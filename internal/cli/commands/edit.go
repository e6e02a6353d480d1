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

type editCmd struct{}

func (editCmd) Name() string        { return "edit" }
func (editCmd) Description() string { return "Update a material (full replace; unset flags keep current values)" }
func (editCmd) Usage() string {
	return "edit <id> [--name <n>] [--unit <u>] [--category <name>] [--type <t>] [--brand <b>] [--color <c>] [--size <s>]"
}

func (editCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}

	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := bindFormFlags(fs)
	if err := fs.Parse(args[1:]); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	_, gw, inv := newStack(cfg)
	if err := inv.LoadDisciplines(ctx); err != nil {
		fmt.Fprintf(Out, "Warning: categories unavailable: %v\n", err)
	}
	if err := inv.LoadMaterials(ctx, service.Filters{}); err != nil {
		return err
	}

	// Prefill from the current record, then overlay the flags the user set.
	// The submit is still a full-resource replace.
	current, err := inv.GetMaterial(ctx, id)
	if err != nil {
		return err
	}
	prefill := service.Form{
		Name:  current.Name,
		Type:  current.Type,
		Unit:  current.Unit,
		Brand: current.Brand,
		Color: current.Color,
		Size:  current.Size,
	}
	if current.Discipline != nil {
		prefill.Category = current.Discipline.Name
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			prefill.Name = f.Name
		case "category":
			prefill.Category = f.Category
		case "type":
			prefill.Type = f.Type
		case "unit":
			prefill.Unit = f.Unit
		case "brand":
			prefill.Brand = f.Brand
		case "color":
			prefill.Color = f.Color
		case "size":
			prefill.Size = f.Size
		}
	})

	mut := service.NewMutations(gw, inv, promptConfirmer{})
	updated, err := mut.Update(ctx, id, prefill)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Item '%s' updated successfully!\n", updated.Name)
	printInventory(Out, inv.Items())
	return nil
}

func init() { RegisterCmd(editCmd{}) }

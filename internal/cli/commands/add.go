package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"StockYard/internal/cli/service"
	"StockYard/internal/config"
)

type addCmd struct{}

func (addCmd) Name() string        { return "add" }
func (addCmd) Description() string { return "Create a material" }
func (addCmd) Usage() string {
	return "add --name <name> --unit <unit> [--category <name>] [--type <t>] [--brand <b>] [--color <c>] [--size <s>]"
}

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := bindFormFlags(fs)
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}
	if f.Name == "" || f.Unit == "" {
		return ErrUsage
	}

	_, gw, inv := newStack(cfg)
	// The category selector depends on the reference list; without it the
	// name cannot resolve and would be sent as null.
	if err := inv.LoadDisciplines(ctx); err != nil && f.Category != "" {
		return fmt.Errorf("category %q cannot be resolved: %w", f.Category, err)
	}
	if err := inv.LoadMaterials(ctx, service.Filters{}); err != nil {
		return err
	}

	mut := service.NewMutations(gw, inv, promptConfirmer{})
	created, err := mut.Create(ctx, *f)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Item '%s' added successfully!\n", created.Name)
	printInventory(Out, inv.Items())
	return nil
}

// bindFormFlags registers the shared material form flags on fs and returns
// the form they populate.
func bindFormFlags(fs *flag.FlagSet) *service.Form {
	f := &service.Form{}
	fs.StringVar(&f.Name, "name", "", "material name (unique server-side)")
	fs.StringVar(&f.Category, "category", "", "discipline name")
	fs.StringVar(&f.Type, "type", "", "material type")
	fs.StringVar(&f.Unit, "unit", "", "unit of measure")
	fs.StringVar(&f.Brand, "brand", "", "brand")
	fs.StringVar(&f.Color, "color", "", "color")
	fs.StringVar(&f.Size, "size", "", "size")
	return f
}

func init() { RegisterCmd(addCmd{}) }

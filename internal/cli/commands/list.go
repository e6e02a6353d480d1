package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"StockYard/internal/cli/model/view"
	"StockYard/internal/cli/service"
	"StockYard/internal/config"
)

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "Show the inventory table with filters and totals" }
func (listCmd) Usage() string {
	return "list [--search <term>] [--category <name>] [--type <name>]"
}

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	search := fs.String("search", "", "substring match on name, SKU or supplier")
	category := fs.String("category", service.FilterAll, "discipline name")
	typ := fs.String("type", service.FilterAll, "material type")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	sess, _, inv := newStack(cfg)
	if !sess.Authenticated() {
		fmt.Fprintln(Out, "Not logged in. Run: stockyard login <username> <password>")
		return nil
	}

	// Discipline failure degrades category filtering, it does not block the load.
	if err := inv.LoadDisciplines(ctx); err != nil {
		fmt.Fprintf(Out, "Warning: categories unavailable: %v\n", err)
	}
	if err := inv.LoadMaterials(ctx, service.Filters{Category: *category, Type: *typ}); err != nil {
		return err
	}

	visible := service.Visible(inv.Items(), *search, *category, *typ)
	printInventory(Out, visible)
	return nil
}

func printInventory(w io.Writer, items []view.Item) {
	m := service.Compute(items)

	fmt.Fprintf(w, "Total items: %d   Total value: $%s   Low stock: %d   Critical: %d\n",
		m.TotalItems, m.TotalValue.StringFixed(2), len(m.LowStock), len(m.Critical))

	if len(m.Critical) > 0 {
		names := make([]string, 0, len(m.Critical))
		for _, it := range m.Critical {
			names = append(names, it.Name)
		}
		fmt.Fprintf(w, "! Critical stock alert: %d item(s) out of stock: %s\n",
			len(m.Critical), strings.Join(names, ", "))
	}
	fmt.Fprintln(w)

	if len(items) == 0 {
		fmt.Fprintln(w, "No items match the current filters")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSKU\tCATEGORY\tTYPE\tSTOCK\tSTATUS\tLOCATION\tRESTOCKED")
	for _, it := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s %s\t%s\t%s\t%s\n",
			it.ID, it.Name, it.SKU, it.Category, it.Type,
			it.Quantity.String(), it.Unit, it.Status(), it.Location, it.LastRestocked)
	}
	_ = tw.Flush()
}

func init() { RegisterCmd(listCmd{}) }

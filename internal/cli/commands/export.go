package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"StockYard/internal/cli/service"
	"StockYard/internal/config"

	"github.com/xuri/excelize/v2"
)

type exportCmd struct{}

func (exportCmd) Name() string        { return "export" }
func (exportCmd) Description() string { return "Export the filtered inventory to an XLSX file" }
func (exportCmd) Usage() string {
	return "export [--search <term>] [--category <name>] [--type <name>] [--out <file.xlsx>]"
}

func (exportCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	search := fs.String("search", "", "substring match on name, SKU or supplier")
	category := fs.String("category", service.FilterAll, "discipline name")
	typ := fs.String("type", service.FilterAll, "material type")
	out := fs.String("out", "inventory.xlsx", "output file")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	_, _, inv := newStack(cfg)
	if err := inv.LoadDisciplines(ctx); err != nil {
		fmt.Fprintf(Out, "Warning: categories unavailable: %v\n", err)
	}
	if err := inv.LoadMaterials(ctx, service.Filters{Category: *category, Type: *typ}); err != nil {
		return err
	}
	visible := service.Visible(inv.Items(), *search, *category, *typ)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"material_id", "material_name", "sku", "category", "material_type",
		"quantity", "unit_of_measure", "status", "location", "supplier", "last_restocked",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := 2
	for _, it := range visible {
		qty, _ := it.Quantity.Float64()
		line := []interface{}{
			it.ID, it.Name, it.SKU, it.Category, it.Type,
			qty, it.Unit, string(it.Status()), it.Location, it.Supplier, it.LastRestocked,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}
		if err := f.SetSheetRow(sheet, cell, &line); err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}
		row++
	}

	if err := f.SaveAs(*out); err != nil {
		return fmt.Errorf("saving %s: %w", *out, err)
	}
	fmt.Fprintf(Out, "Exported %d item(s) to %s\n", len(visible), *out)
	return nil
}

func init() { RegisterCmd(exportCmd{}) }

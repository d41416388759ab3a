package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beanlog/cuppa/internal/catalog"
	"github.com/beanlog/cuppa/internal/server"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Catalog maintenance commands",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a catalog CSV file",
	Long: `Loads the catalog once and reports what the server would see:
record count, detected encoding, coerced score cells, and how many
origins resolved to a producer country. Without a path argument the
configured catalog.path is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogValidate,
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		config, err := server.LoadConfig(configPath)
		if err != nil {
			return err
		}
		path = config.GetString("catalog.path")
	}

	records, stats, err := catalog.Load(path)
	if err != nil {
		return fmt.Errorf("validate %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Catalog: %s\n", path)
	fmt.Fprintf(out, "  records:             %d\n", len(records))
	fmt.Fprintf(out, "  encoding:            %s\n", stats.Encoding)
	fmt.Fprintf(out, "  countries resolved:  %d\n", stats.Countries)
	fmt.Fprintf(out, "  unresolved origins:  %d\n", stats.Other)
	fmt.Fprintf(out, "  coerced score cells: %d\n", stats.CoercedCells)
	return nil
}

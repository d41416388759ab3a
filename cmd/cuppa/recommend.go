package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/beanlog/cuppa/internal/advisor"
	"github.com/beanlog/cuppa/internal/catalog"
	"github.com/beanlog/cuppa/internal/palate"
	"github.com/beanlog/cuppa/internal/render"
	"github.com/beanlog/cuppa/internal/server"
)

var recommendJSON bool

var recommendCmd = &cobra.Command{
	Use:   "recommend [preference]",
	Short: "Recommend coffees for a taste preference",
	Long: `Classifies a free-text taste preference, ranks matching catalog
records by origin country, and prints the rendered coffee guide.

Examples:
  cuppa recommend "고소한 맛"
  cuppa recommend 과일 같은 산미
  cuppa recommend --json "fruity with floral notes"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "print the raw outcome as JSON")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	logger := cliLogger()
	defer logger.Sync()

	config, err := server.LoadConfig(configPath)
	if err != nil {
		return err
	}

	store := catalog.NewStore(config.GetString("catalog.path"), logger.Named("store"))
	if err := store.Load(cmd.Context()); err != nil {
		// The engine reports the missing catalog as its unavailable
		// outcome, same as the server would.
		logger.Debug("catalog load failed", zap.Error(err))
	}

	engine := advisor.NewEngine(
		store,
		palate.NewClassifier(palate.Default()),
		logger.Named("advisor"),
		config.GetDuration("modules.advisor.timeout"),
	)

	preference := strings.Join(args, " ")
	out := engine.Advise(cmd.Context(), preference)

	if recommendJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintln(cmd.OutOrStdout(), render.Outcome(preference, out))
	return nil
}

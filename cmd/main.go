package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rhekacitra/InsideOR-Project/configs"
	"github.com/rhekacitra/InsideOR-Project/internal/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCommand собирает CLI: serve, import, matrix, watch
func newRootCommand() *cobra.Command {
	var (
		cfg     *configs.Config
		source  string
		dataDir string
	)

	cmd := &cobra.Command{
		Use:          "insideor",
		Short:        "InsideOR case explorer",
		Long:         `insideor serves intraoperative case windows, correlations and cohort data to the dashboard.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = configs.LoadConfig()
			if cmd.Flags().Changed("source") {
				cfg.Data.Source = source
			}
			if cmd.Flags().Changed("data-dir") {
				cfg.Data.Dir = dataDir
			}
			if cfg.Data.Source != configs.SourceFiles && cfg.Data.Source != configs.SourcePostgres {
				return fmt.Errorf("неизвестный источник данных %q", cfg.Data.Source)
			}
			config.InitLogger(cfg.App.Env, cfg.App.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&source, "source", configs.SourceFiles, "dataset source: files or postgres")
	cmd.PersistentFlags().StringVar(&dataDir, "data-dir", "./data", "directory with vital_data.json, proxy_drug_data.json, patient.json, data.csv")

	getConfig := func() *configs.Config { return cfg }

	cmd.AddCommand(
		newServeCommand(getConfig),
		newImportCommand(getConfig),
		newMatrixCommand(getConfig),
		newWatchCommand(),
	)

	return cmd
}

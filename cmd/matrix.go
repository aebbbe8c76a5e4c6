package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rhekacitra/InsideOR-Project/configs"
	"github.com/rhekacitra/InsideOR-Project/internal/services"
)

func newMatrixCommand(getConfig func() *configs.Config) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Build the global correlation matrix and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()

			source, db, err := openSource(cfg)
			if err != nil {
				return err
			}
			defer closeDB(db)

			explorer := services.NewExplorerService(source)
			if err := explorer.Reload(cmd.Context()); err != nil {
				return err
			}
			matrix, err := explorer.Matrix()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				output, err := json.MarshalIndent(matrix, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(output))
			case "table":
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
				keys := matrix.Keys()
				fmt.Fprintf(tw, "\t%s\t\n", strings.Join(keys, "\t"))
				for i, row := range matrix.Rows() {
					cells := make([]string, len(row))
					for j, v := range row {
						cells[j] = fmt.Sprintf("%.2f", v)
					}
					fmt.Fprintf(tw, "%s\t%s\t\n", keys[i], strings.Join(cells, "\t"))
				}
				return tw.Flush()
			default:
				return fmt.Errorf("неизвестный формат %q", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table or json")
	return cmd
}

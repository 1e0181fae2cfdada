package compare

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/paramdrift/paramdrift/pkg/cli"
	"github.com/paramdrift/paramdrift/pkg/parameter"
)

func Command(logger *zap.Logger) *cobra.Command {
	var (
		targetDB       string
		parameterGroup string
		otherDB        string
		targetDBURL    string
		otherDBURL     string
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Diff parameters between a database's group and another group or database",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case targetDBURL != "" || otherDBURL != "":
				if targetDBURL == "" || otherDBURL == "" {
					return errors.New("--target-db-url and --other-db-url must be given together")
				}
				return nil
			case targetDB == "":
				return errors.New("missing required flag 'target-db'")
			case parameterGroup == "" && otherDB == "":
				return errors.New("--parameter-group or --other-db is required")
			default:
				return nil
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()

			cfg, err := cli.LoadConfig()
			if err != nil {
				return err
			}
			res, _, err := cli.BuildResolver(ctx, cfg, logger)
			if err != nil {
				return err
			}

			var result *Result
			if targetDBURL != "" {
				result, err = Live(ctx, res, targetDBURL, otherDBURL)
			} else {
				result, err = Groups(ctx, res, targetDB, parameterGroup, otherDB)
			}
			if err != nil {
				cli.PrintError(err.Error())
				return err
			}

			if result.Count() == 0 {
				cli.PrintResult("No differences.")
				return nil
			}

			rows := make([][]string, 0, len(result.Rows))
			for _, r := range result.Rows {
				rows = append(rows, []string{
					r.Name,
					parameter.Display(r.ValueA),
					parameter.Display(r.ValueB),
					r.Unit,
				})
			}
			cli.RenderTable(result.Header, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&targetDB, "target-db", "", "The target database instance identifier")
	cmd.Flags().StringVar(&parameterGroup, "parameter-group", "", "Parameter group to compare to")
	cmd.Flags().StringVar(&otherDB, "other-db", "", "Database instance to compare to")
	cmd.Flags().StringVar(&targetDBURL, "target-db-url", "", "Connection string of the target database, for a live-settings comparison")
	cmd.Flags().StringVar(&otherDBURL, "other-db-url", "", "Connection string of the database to compare to, for a live-settings comparison")

	return cmd
}

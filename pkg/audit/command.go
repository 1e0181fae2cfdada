package audit

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/paramdrift/paramdrift/pkg/cli"
)

func Command(logger *zap.Logger) *cobra.Command {
	var (
		parameters []string
		engine     string
		workers    int
	)
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Report a set of parameters across every database in the fleet",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(parameters) == 0:
				return errors.New("at least one --parameter is required")
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
			if workers == 0 {
				workers = cfg.Workers
			}
			res, rdsClient, err := cli.BuildResolver(ctx, cfg, logger)
			if err != nil {
				return err
			}

			job := NewJob(rdsClient, res, logger, engine, workers)
			rows, err := job.Run(ctx, parameters)
			if err != nil {
				cli.PrintError(err.Error())
				return err
			}

			out := make([][]string, 0, len(rows))
			for _, r := range rows {
				out = append(out, []string{r.Instance, r.Group, r.Parameter, r.Value, r.Normalized, r.Unit})
			}
			cli.RenderTable([]string{"Instance", "Group", "Name", "Value", "Normalized", "Unit"}, out)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&parameters, "parameter", "p", nil, "Parameter name to audit (repeatable)")
	cmd.Flags().StringVar(&engine, "engine", "postgres", "Only audit instances running this engine")
	cmd.Flags().IntVar(&workers, "workers", 0, "Number of instances audited in parallel")

	return cmd
}

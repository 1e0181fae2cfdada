package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/paramdrift/paramdrift/pkg/audit"
	"github.com/paramdrift/paramdrift/pkg/compare"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	rootCmd := &cobra.Command{
		Use:   "paramdrift",
		Short: "Audit and diff RDS parameter groups and live engine settings",
	}
	rootCmd.AddCommand(compare.Command(logger))
	rootCmd.AddCommand(audit.Command(logger))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

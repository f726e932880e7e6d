// Command shopadmin runs the e-commerce admin API and its maintenance tasks.
//
//	shopadmin serve                      # HTTP + gRPC servers
//	shopadmin migrate                    # run pending migrations
//	shopadmin migrate:rollback
//	shopadmin migrate:status
//	shopadmin seed                       # demo catalogue and orders
//	shopadmin route:list
//	shopadmin report:revenue --range monthly
//	shopadmin report:export --range yearly --disk s3 --path reports/yearly.csv
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import migrations so their init() funcs run and register themselves.
	_ "github.com/shashiranjanraj/shopadmin/database/migrations"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "shopadmin",
	Short:         "E-commerce admin API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Server
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	// Database
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)

	// Reports
	rootCmd.AddCommand(reportRevenueCmd)
	rootCmd.AddCommand(reportExportCmd)
}

package main

import (
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

const serviceName = "governance"

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           serviceName,
		Short:         "Lifecycle governance for orders and work items",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), transitionsCmd())
	return root
}

package commands

import (
	"fmt"
	"os"

	"github.com/gridsnake/engine/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "gridsnake",
	Short:   "gridsnake runs a terminal snake arcade on the gridsnake engine",
	Version: version.Version,
	Run: func(c *cobra.Command, args []string) {
		playCmd.Run(c, args)
	},
}

var (
	apiAddr string
)

// Execute runs the root command
func Execute() {

	rootCmd.PersistentFlags().StringVar(&apiAddr, "api-addr", "http://localhost:3008", "address of the engine api")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(statusCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

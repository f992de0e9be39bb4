package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fete/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file to .fete/config.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ".fete/config.yaml"
		if err := config.WriteDefaultConfig(path); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		cmd.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

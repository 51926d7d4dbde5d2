package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srlehn/fbstat/display"
)

func init() {
	rootCmd.AddCommand(listDisplaysCmd)
}

var listDisplaysCmd = &cobra.Command{
	Use:   `list-displays`,
	Short: `list available displays`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error {
			for _, name := range display.Names() {
				fmt.Println(name)
			}
			return nil
		})
	},
}

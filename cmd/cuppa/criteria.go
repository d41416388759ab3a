package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beanlog/cuppa/internal/palate"
)

var criteriaCmd = &cobra.Command{
	Use:   "criteria",
	Short: "Show the recommendation criteria",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), palate.CriteriaText)
	},
}

func init() {
	rootCmd.AddCommand(criteriaCmd)
}

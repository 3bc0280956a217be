package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use: "insight-api",
}

func init() {
	rootCmd.AddCommand(runCmd)
}

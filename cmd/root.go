package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "golang-actiontrigger",
	Short: "golang-actiontrigger sends GigE Vision action commands on a timer or on trigger input",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose = false

var rootCmd = &cobra.Command{
	Use:   "rough",
	Short: "rough analyzes and leverages discernibility of knowledge in tabular datasets",
	Long:  `The tool partitions datasets by indiscernibility, derives discernibility matrices and searches for minimal attribute reducts, the core operations of rough set theory`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
	},
}

func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(NewPartitionCmd())
	rootCmd.AddCommand(NewMatrixCmd())
	rootCmd.AddCommand(NewReduceCmd())
	rootCmd.AddCommand(NewApproxCmd())
	rootCmd.AddCommand(NewTableCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/johnHostetter/rough-theory/pkg/discern"
	"github.com/johnHostetter/rough-theory/pkg/indisc"
	"github.com/johnHostetter/rough-theory/pkg/table"
)

type tableOpts struct {
	input      inputOpts
	conditions []string
	relative   []string
}

var tableopts = tableOpts{}

func NewTableCmd() *cobra.Command {

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "decomposes and simplifies a dataset viewed as a decision table",
		Long: `splits the rules of a decision table into consistent and inconsistent ones, drops redundant condition attributes
and reduces every rule to its value core and minimal sufficient value sets`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.Info("Loading dataset.")
			system, err := tableopts.input.load()
			if err != nil {
				return err
			}
			conditions := tableopts.conditions
			if len(conditions) == 0 {
				conditions = system.ConditionNames()
			}
			relative := tableopts.relative
			if len(relative) == 0 {
				decision, exists := system.Decision()
				if !exists {
					return fmt.Errorf("dataset has no decision attribute, pass one with --relative")
				}
				relative = []string{decision}
			}

			analyzer := table.NewAnalyzer(discern.NewBuilder(indisc.NewEngine(system)))
			consistent, inconsistent, err := analyzer.Decompose(conditions, relative)
			if err != nil {
				return err
			}
			fmt.Printf("consistent rules:   %v\n", consistent.Sorted())
			fmt.Printf("inconsistent rules: %v\n", inconsistent.Sorted())

			logrus.Info("Simplifying the decision table.")
			simplification, err := analyzer.Simplify(conditions, relative)
			if err != nil {
				return err
			}
			fmt.Printf("attributes after redundancy removal: %v\n", simplification.Attributes)
			for _, id := range system.ObjectIDs() {
				if _, exists := simplification.Reducts[id]; !exists {
					continue
				}
				fmt.Printf("rule %s: core %v, reducts %v\n", id, simplification.Cores[id], simplification.Reducts[id])
			}
			return nil
		},
	}

	addInputFlags(tableCmd, &tableopts.input)
	tableCmd.PersistentFlags().StringSliceVarP(&tableopts.conditions, "conditions", "c", nil, "condition attributes of the table, all condition attributes without it")
	tableCmd.PersistentFlags().StringSliceVarP(&tableopts.relative, "relative", "r", nil, "decision attributes of the table, defaults to the dataset's decision attribute")
	return tableCmd
}

package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/johnHostetter/rough-theory/pkg/discern"
	"github.com/johnHostetter/rough-theory/pkg/indisc"
)

type matrixOpts struct {
	input      inputOpts
	attributes []string
	relative   []string
	minimize   bool
}

var matrixopts = matrixOpts{}

func NewMatrixCmd() *cobra.Command {

	matrixCmd := &cobra.Command{
		Use:   "matrix",
		Short: "builds the discernibility matrix of a dataset",
		Long: `builds the discernibility matrix: for every relevant object pair, the attributes on which the two objects differ.
With a decision attribute only pairs from different decision classes are listed; without one every pair enters the matrix, which is quadratic in the object count`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.Info("Loading dataset.")
			system, err := matrixopts.input.load()
			if err != nil {
				return err
			}
			attributes := matrixopts.attributes
			if len(attributes) == 0 {
				attributes = system.ConditionNames()
			}
			relative := matrixopts.relative
			if len(relative) == 0 {
				if decision, exists := system.Decision(); exists {
					relative = []string{decision}
				}
			}

			logrus.Infof("Building matrix over %v relative to %v.", attributes, relative)
			builder := discern.NewBuilder(indisc.NewEngine(system))
			matrix, err := builder.BuildRelative(attributes, relative)
			if err != nil {
				return err
			}
			if matrixopts.minimize {
				matrix = discern.Minimize(matrix)
			}

			for _, pair := range matrix.Pairs() {
				fmt.Printf("%s: %s\n", pair, strings.Join(matrix.Entries[pair], ", "))
			}
			for _, pair := range matrix.Inconsistent {
				logrus.Warnf("Pair %s is inconsistent: equal condition values, different decision.", pair)
			}
			logrus.Infof("%d entries, %d inconsistent pairs.", len(matrix.Entries), len(matrix.Inconsistent))
			return nil
		},
	}

	addInputFlags(matrixCmd, &matrixopts.input)
	matrixCmd.PersistentFlags().StringSliceVarP(&matrixopts.attributes, "attributes", "a", nil, "condition attribute subset, all condition attributes without it")
	matrixCmd.PersistentFlags().StringSliceVarP(&matrixopts.relative, "relative", "r", nil, "decision attributes restricting the pair set, defaults to the dataset's decision attribute")
	matrixCmd.PersistentFlags().BoolVarP(&matrixopts.minimize, "minimize", "m", false, "absorb entries into the smallest entries they contain")
	return matrixCmd
}

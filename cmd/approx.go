package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/johnHostetter/rough-theory/pkg/api"
	"github.com/johnHostetter/rough-theory/pkg/approx"
	"github.com/johnHostetter/rough-theory/pkg/indisc"
)

type approxOpts struct {
	input      inputOpts
	attributes []string
	target     []string
}

var approxopts = approxOpts{}

func NewApproxCmd() *cobra.Command {

	approxCmd := &cobra.Command{
		Use:   "approx",
		Short: "approximates a target object set through an attribute subset",
		Long:  `computes the lower and upper approximations of a target object set together with the regions and measures they induce`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.Info("Loading dataset.")
			system, err := approxopts.input.load()
			if err != nil {
				return err
			}
			attributes := approxopts.attributes
			if len(attributes) == 0 {
				attributes = system.ConditionNames()
			}
			target := api.NewObjectSet(approxopts.target...)

			analyzer := approx.NewAnalyzer(indisc.NewEngine(system))
			lower, err := analyzer.Lower(attributes, target)
			if err != nil {
				return err
			}
			upper, err := analyzer.Upper(attributes, target)
			if err != nil {
				return err
			}
			boundary, err := analyzer.Boundary(attributes, target)
			if err != nil {
				return err
			}
			negative, err := analyzer.Negative(attributes, target)
			if err != nil {
				return err
			}
			accuracy, err := analyzer.Accuracy(attributes, target)
			if err != nil {
				return err
			}
			definability, err := analyzer.Definability(attributes, target)
			if err != nil {
				return err
			}

			fmt.Printf("lower:        %v\n", lower.Sorted())
			fmt.Printf("upper:        %v\n", upper.Sorted())
			fmt.Printf("boundary:     %v\n", boundary.Sorted())
			fmt.Printf("negative:     %v\n", negative.Sorted())
			fmt.Printf("accuracy:     %g\n", accuracy)
			fmt.Printf("definability: %s\n", definability)
			return nil
		},
	}

	addInputFlags(approxCmd, &approxopts.input)
	approxCmd.PersistentFlags().StringSliceVarP(&approxopts.attributes, "attributes", "a", nil, "attribute subset to approximate through, all condition attributes without it")
	approxCmd.PersistentFlags().StringSliceVarP(&approxopts.target, "set", "x", nil, "object ids of the target set")
	return approxCmd
}

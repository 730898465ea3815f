package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/johnHostetter/rough-theory/pkg/indisc"
)

type partitionOpts struct {
	input      inputOpts
	attributes []string
}

var partitionopts = partitionOpts{}

func NewPartitionCmd() *cobra.Command {

	partitionCmd := &cobra.Command{
		Use:   "partition",
		Short: "partitions the objects of a dataset into equivalence classes",
		Long:  `partitions the objects of a dataset by indiscernibility: objects agreeing on every chosen attribute end up in the same class`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.Info("Loading dataset.")
			system, err := partitionopts.input.load()
			if err != nil {
				return err
			}
			attributes := partitionopts.attributes
			if len(attributes) == 0 {
				attributes = system.ConditionNames()
			}
			logrus.Infof("Partitioning under %v.", attributes)
			partition, err := indisc.NewEngine(system).Partition(attributes)
			if err != nil {
				return err
			}
			for _, class := range partition.Sorted() {
				fmt.Printf("{%s}\n", strings.Join(class, ", "))
			}
			logrus.Infof("%d classes.", len(partition.Classes))
			return nil
		},
	}

	addInputFlags(partitionCmd, &partitionopts.input)
	partitionCmd.PersistentFlags().StringSliceVarP(&partitionopts.attributes, "attributes", "a", nil, "attribute subset to partition under, all condition attributes without it")
	return partitionCmd
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/johnHostetter/rough-theory/pkg/api/roughconf"
	"github.com/johnHostetter/rough-theory/pkg/discern"
	"github.com/johnHostetter/rough-theory/pkg/indisc"
	"github.com/johnHostetter/rough-theory/pkg/reduct"
)

type reduceOpts struct {
	input      inputOpts
	attributes []string
	relative   []string
	strategy   string
	maxNodes   int
	maxTime    time.Duration
	maxReducts int
	workers    int
	out        string
}

var reduceopts = reduceOpts{}

func NewReduceCmd() *cobra.Command {

	reduceCmd := &cobra.Command{
		Use:   "reduce",
		Short: "searches for minimal attribute reducts of a dataset",
		Long: `searches for minimal attribute subsets preserving the discriminatory power of the full attribute set.
The greedy and sat strategies return one reduct quickly; the exhaustive strategy enumerates all minimal reducts within the given budget and reports when the budget cut the enumeration short`,
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy := roughconf.Strategy(reduceopts.strategy)
			if err := strategy.Validate(); err != nil {
				return err
			}

			logrus.Info("Loading dataset.")
			system, err := reduceopts.input.load()
			if err != nil {
				return err
			}
			attributes := reduceopts.attributes
			if len(attributes) == 0 {
				attributes = system.ConditionNames()
			}
			relative := reduceopts.relative
			if len(relative) == 0 {
				if decision, exists := system.Decision(); exists {
					relative = []string{decision}
				}
			}

			engine, err := reduct.NewOver(discern.NewBuilder(indisc.NewEngine(system)), attributes, relative)
			if err != nil {
				return err
			}

			logrus.Infof("Searching with the %s strategy.", strategy)
			var result *reduct.Result
			if strategy == roughconf.StrategyExhaustive {
				budget := roughconf.Budget{
					MaxNodes:   reduceopts.maxNodes,
					MaxTime:    reduceopts.maxTime,
					MaxReducts: reduceopts.maxReducts,
					Workers:    reduceopts.workers,
				}
				if budget.Unlimited() {
					logrus.Warnf("Enumerating all reducts of %d attributes without a budget; this can take exponential time.", len(attributes))
				}
				result, err = engine.FindAll(budget)
			} else {
				result, err = engine.FindOne(strategy)
			}
			if err != nil {
				return err
			}

			for _, r := range result.Reducts {
				fmt.Println(r)
			}
			logrus.Infof("Found %s reducts after %s nodes in %v, core %v.",
				humanize.Comma(int64(len(result.Reducts))), humanize.Comma(int64(result.Nodes)), result.Elapsed, result.Core)
			if result.Truncated {
				logrus.Warn("The search budget was exhausted, the reduct set may be incomplete.")
			}
			if diagnostic := inconsistencyReport(result); diagnostic != "" {
				logrus.Warn(diagnostic)
			}

			if reduceopts.out != "" {
				report := &roughconf.ReductReport{
					Attributes: attributes,
					Strategy:   strategy,
					Core:       result.Core,
					Truncated:  result.Truncated,
					Nodes:      result.Nodes,
				}
				for _, r := range result.Reducts {
					report.Reducts = append(report.Reducts, r)
				}
				for _, pair := range result.Inconsistent {
					report.InconsistentPairs = append(report.InconsistentPairs, []string{pair.A, pair.B})
				}
				data, err := yaml.Marshal(report)
				if err != nil {
					return fmt.Errorf("failed to marshal reduct report: %v", err)
				}
				if err := os.WriteFile(reduceopts.out, data, 0666); err != nil {
					return fmt.Errorf("failed to write reduct report: %v", err)
				}
			}
			return nil
		},
	}

	addInputFlags(reduceCmd, &reduceopts.input)
	reduceCmd.PersistentFlags().StringSliceVarP(&reduceopts.attributes, "attributes", "a", nil, "condition attribute subset to reduce, all condition attributes without it")
	reduceCmd.PersistentFlags().StringSliceVarP(&reduceopts.relative, "relative", "r", nil, "decision attributes the reducts are relative to, defaults to the dataset's decision attribute")
	reduceCmd.PersistentFlags().StringVarP(&reduceopts.strategy, "strategy", "s", string(roughconf.StrategyGreedy), "search strategy, one of greedy, exhaustive or sat")
	reduceCmd.PersistentFlags().IntVar(&reduceopts.maxNodes, "max-nodes", 0, "exhaustive search budget in evaluated subsets, 0 means unlimited")
	reduceCmd.PersistentFlags().DurationVar(&reduceopts.maxTime, "max-time", 0, "exhaustive search budget in wall-clock time, 0 means unlimited")
	reduceCmd.PersistentFlags().IntVar(&reduceopts.maxReducts, "max-reducts", 0, "stop after this many reducts, 0 means unlimited")
	reduceCmd.PersistentFlags().IntVar(&reduceopts.workers, "workers", 0, "evaluate the search frontier on this many workers")
	reduceCmd.PersistentFlags().StringVarP(&reduceopts.out, "output", "o", "", "write a YAML reduct report to this file")
	return reduceCmd
}

func inconsistencyReport(result *reduct.Result) string {
	if len(result.Inconsistent) == 0 {
		return ""
	}
	return fmt.Sprintf("%d object pairs share all condition values but differ in decision; no reduct can separate them.", len(result.Inconsistent))
}

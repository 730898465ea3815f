package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/johnHostetter/rough-theory/pkg/api"
	"github.com/johnHostetter/rough-theory/pkg/api/roughconf"
	"github.com/johnHostetter/rough-theory/pkg/loader"
)

type inputOpts struct {
	in       string
	decision string
	idColumn string
	missing  string
}

func addInputFlags(cmd *cobra.Command, opts *inputOpts) {
	cmd.PersistentFlags().StringVarP(&opts.in, "input", "i", "dataset.csv", "dataset file (CSV with a header row, or a YAML dataset document)")
	cmd.PersistentFlags().StringVarP(&opts.decision, "decision", "d", "", "column holding the decision attribute")
	cmd.PersistentFlags().StringVar(&opts.idColumn, "id-column", "", "column holding object ids, rows are numbered without it")
	cmd.PersistentFlags().StringVar(&opts.missing, "missing", string(roughconf.MissingReject), "missing-value policy, one of reject or distinct")
}

func (opts *inputOpts) load() (*api.InformationSystem, error) {
	if strings.HasSuffix(opts.in, ".yaml") || strings.HasSuffix(opts.in, ".yml") {
		return loader.DatasetLoader{Path: opts.in}.Load()
	}
	return loader.CSVLoader{
		Path:     opts.in,
		Decision: opts.decision,
		IDColumn: opts.idColumn,
		Policy:   roughconf.MissingValuePolicy(opts.missing),
	}.Load()
}

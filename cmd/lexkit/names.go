package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexkit/lexkit/pkg/names"
)

var namesDirs []string

var namesCmd = &cobra.Command{
	Use:   "names <domain>",
	Short: "Show a domain's name definitions",
	Long: `Resolve a domain's name definition file (<domain>.txt) using the normal
search order and list its entries.`,
	Args: cobra.ExactArgs(1),
	RunE: runNames,
}

func init() {
	namesCmd.Flags().StringArrayVar(&namesDirs, "names-dir", nil, "Extra directory to search for name definition files (repeatable)")
}

func runNames(cmd *cobra.Command, args []string) error {
	domain := args[0]

	resolver := &names.Resolver{ExtraDirs: namesDirs}
	path := resolver.Resolve(domain)
	if path == "" {
		return fmt.Errorf("no definition file found for domain %q", domain)
	}

	table, err := names.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%d definitions)\n", path, table.Len())
	for _, def := range table.All() {
		line := fmt.Sprintf(":%x %s", def.Number, def.Name)
		if def.DataType != "" {
			line += " " + def.DataType
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

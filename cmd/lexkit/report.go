package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexkit/lexkit/pkg/format"
	"github.com/lexkit/lexkit/pkg/store"
)

var (
	reportStorePath string
	reportFormat    string
	reportColor     string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render streams from a datastore",
	Long:  "Read previously extracted streams from a datastore and render them in any output format",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportStorePath, "store", "lexkit.db", "Path to datastore")
	reportCmd.Flags().StringVar(&reportFormat, "format", "text", "Output format: text, json, csv, xml")
	reportCmd.Flags().StringVar(&reportColor, "color", "auto", "Color output: auto, always, never")
}

func runReport(cmd *cobra.Command, args []string) error {
	if reportStorePath == ":memory:" {
		return fmt.Errorf("cannot report from in-memory store")
	}

	st, err := store.New(store.Config{Path: reportStorePath})
	if err != nil {
		return fmt.Errorf("opening datastore: %w", err)
	}
	defer st.Close()

	streams, err := st.Streams()
	if err != nil {
		return fmt.Errorf("listing streams: %w", err)
	}
	if len(streams) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "Datastore is empty")
		return nil
	}

	out := cmd.OutOrStdout()
	for _, info := range streams {
		recs, err := st.Records(info.ID)
		if err != nil {
			return fmt.Errorf("reading stream %d: %w", info.ID, err)
		}

		f, err := format.New(reportFormat, reportColor)
		if err != nil {
			return err
		}
		if err := f.Begin(out, &info.Header); err != nil {
			return err
		}
		for _, rec := range recs {
			if err := f.Record(rec); err != nil {
				return err
			}
		}
		if err := f.End(); err != nil {
			return err
		}
	}
	return nil
}

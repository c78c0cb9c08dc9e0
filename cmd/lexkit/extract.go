package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/lexkit/lexkit"
	"github.com/lexkit/lexkit/pkg/enum"
	"github.com/lexkit/lexkit/pkg/format"
	"github.com/lexkit/lexkit/pkg/logger"
	"github.com/lexkit/lexkit/pkg/store"
)

var (
	extractFormat        string
	extractColor         string
	extractOutput        string
	extractNamesDirs     []string
	extractNoNames       bool
	extractStorePath     string
	extractMaxFileSize   int64
	extractIncludeHidden bool
	extractExtensions    []string
	extractWorkers       int
)

var extractCmd = &cobra.Command{
	Use:   "extract [target]",
	Short: "Decode lexeme streams",
	Long: `Decode a lexeme stream file, or every stream file under a directory.
With no target, reads a single stream from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractFormat, "format", "text", "Output format: text, json, csv, xml")
	extractCmd.Flags().StringVar(&extractColor, "color", "auto", "Color output: auto, always, never")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Write output to file instead of stdout")
	extractCmd.Flags().StringArrayVar(&extractNamesDirs, "names-dir", nil, "Extra directory to search for name definition files (repeatable)")
	extractCmd.Flags().BoolVar(&extractNoNames, "no-names", false, "Disable name enrichment")
	extractCmd.Flags().StringVar(&extractStorePath, "store", "", "Also persist decoded streams to this datastore")
	extractCmd.Flags().Int64Var(&extractMaxFileSize, "max-file-size", 10*1024*1024, "Maximum stream file size to decode (bytes)")
	extractCmd.Flags().BoolVar(&extractIncludeHidden, "include-hidden", false, "Include hidden files and directories")
	extractCmd.Flags().StringArrayVar(&extractExtensions, "ext", nil, "Stream file suffixes to accept (default .lexemes)")
	extractCmd.Flags().IntVar(&extractWorkers, "workers", 0, "Concurrent decoders for directory targets (0 = NumCPU)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	dec := newDecoder()

	out := cmd.OutOrStdout()
	if extractOutput != "" {
		f, err := os.Create(extractOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	var st store.Store
	if extractStorePath != "" {
		var err error
		st, err = store.New(store.Config{Path: extractStorePath})
		if err != nil {
			return fmt.Errorf("opening datastore: %w", err)
		}
		defer st.Close()
	}

	// No target: decode one stream from stdin.
	if len(args) == 0 {
		result, err := dec.DecodeReader(cmd.InOrStdin())
		if err != nil {
			return err
		}
		return renderResult(out, st, "<stdin>", result)
	}

	target := args[0]
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("target does not exist: %s", target)
	}

	if !info.IsDir() {
		result, err := dec.DecodeFile(target)
		if err != nil {
			return err
		}
		return renderResult(out, st, target, result)
	}

	return extractDirectory(cmd.Context(), dec, out, st, target)
}

// extractDirectory decodes every stream file under root. Files are
// decoded concurrently, one decoder per stream; rendering and storage
// are serialized so the output stays whole-stream ordered.
func extractDirectory(ctx context.Context, dec *lexkit.Decoder, out io.Writer, st store.Store, root string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	enumerator := enum.NewFilesystemEnumerator(enum.Config{
		Root:          root,
		Extensions:    extractExtensions,
		IncludeHidden: extractIncludeHidden,
		MaxFileSize:   extractMaxFileSize,
		Workers:       extractWorkers,
	})

	var mu sync.Mutex
	decoded := 0
	err := enumerator.Enumerate(ctx, func(path string) error {
		logger.Log.Debugw("decoding stream", "path", path)
		result, err := dec.DecodeFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		mu.Lock()
		defer mu.Unlock()
		decoded++
		return renderResult(out, st, path, result)
	})
	if err != nil {
		return err
	}
	if decoded == 0 {
		logger.Log.Infow("no stream files found", "root", root)
	}
	return nil
}

// renderResult writes one decoded stream through the configured
// formatter and, when a datastore is open, persists it.
func renderResult(out io.Writer, st store.Store, source string, result *lexkit.Result) error {
	if st != nil {
		if err := storeResult(st, source, result); err != nil {
			return err
		}
	}

	f, err := format.New(extractFormat, extractColor)
	if err != nil {
		return err
	}
	if err := f.Begin(out, result.Header); err != nil {
		return err
	}
	for _, rec := range result.Records {
		if err := f.Record(rec); err != nil {
			return err
		}
	}
	return f.End()
}

func storeResult(st store.Store, source string, result *lexkit.Result) error {
	id, err := st.AddStream(source, result.Header)
	if err != nil {
		return err
	}
	for i, rec := range result.Records {
		if err := st.AddRecord(id, i, rec); err != nil {
			return err
		}
	}
	return nil
}

// newDecoder builds the library decoder from the extract flags.
func newDecoder() *lexkit.Decoder {
	var opts []lexkit.Option
	if extractNoNames {
		opts = append(opts, lexkit.WithoutNames())
	}
	for _, dir := range extractNamesDirs {
		opts = append(opts, lexkit.WithNamesDir(dir))
	}
	return lexkit.NewDecoder(opts...)
}

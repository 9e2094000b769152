// cmd/wordhexc/main.go
//
// The authoring CLI. Three subcommands:
//
//	build   compile a grid into a one-line puzzle code
//	report  compile and print the authoring review instead
//	check   decode every line of a catalog file
//
// The grid comes from a file argument or stdin, letters in Shavian or
// ASCII transliteration.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wordhexgame/wordhex/internal/compiler"
	"github.com/wordhexgame/wordhex/internal/dictionary"
	"github.com/wordhexgame/wordhex/internal/puzzle"
)

var (
	dictPath     string
	bonusPath    string
	excludedPath string
	minLength    int
	workers      int
	color        bool
	verbose      bool
)

func main() {
	root := &cobra.Command{
		Use:           "wordhexc",
		Short:         "WordHex puzzle compiler",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
			if verbose {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "info-level logging")

	buildCmd := &cobra.Command{
		Use:   "build [grid-file]",
		Short: "Compile a grid into a puzzle code on stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := compile(cmd.Context(), args)
			if err != nil {
				return err
			}
			code, err := puzzle.Save(res.Puzzle)
			if err != nil {
				return err
			}
			fmt.Println(code)
			return nil
		},
	}
	addCompileFlags(buildCmd)

	reportCmd := &cobra.Command{
		Use:   "report [grid-file]",
		Short: "Compile a grid and print the authoring review",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := compile(cmd.Context(), args)
			if err != nil {
				return err
			}
			compiler.Report(os.Stdout, res, color)
			return nil
		},
	}
	addCompileFlags(reportCmd)
	reportCmd.Flags().BoolVar(&color, "color", true, "ANSI colors in the review")

	checkCmd := &cobra.Command{
		Use:   "check <catalog-file>",
		Short: "Decode every puzzle code in a catalog file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkCatalog(args[0])
		},
	}

	root.AddCommand(buildCmd, reportCmd, checkCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addCompileFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&dictPath, "dictionary", "d", "", "dictionary file, one word per line (required)")
	cmd.Flags().StringVar(&bonusPath, "bonus", "", "bonus word list")
	cmd.Flags().StringVar(&excludedPath, "excluded", "", "excluded word list")
	cmd.Flags().IntVar(&minLength, "min-length", 0, "minimum word length (default 4)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel search workers (<=1 serial)")
	_ = cmd.MarkFlagRequired("dictionary")
}

// compile reads the grid (file arg or stdin) and the word lists, then
// runs the pipeline.
func compile(ctx context.Context, args []string) (*compiler.Result, error) {
	gridText, err := readGrid(args)
	if err != nil {
		return nil, err
	}

	dict, err := dictionary.LoadFile(dictPath)
	if err != nil {
		return nil, err
	}

	in := compiler.Input{
		GridText:  gridText,
		Dict:      dict,
		MinLength: minLength,
		Workers:   workers,
	}
	if bonusPath != "" {
		if in.Bonus, err = compiler.ReadWordListFile(bonusPath); err != nil {
			return nil, err
		}
	}
	if excludedPath != "" {
		if in.Excluded, err = compiler.ReadWordListFile(excludedPath); err != nil {
			return nil, err
		}
	}
	return compiler.Build(ctx, in)
}

func readGrid(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// checkCatalog decodes every code and reports failures; any bad line
// makes the command exit non-zero.
func checkCatalog(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bad := 0
	total := 0
	lineNum := 0
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		total++
		if _, err := puzzle.Load(line); err != nil {
			bad++
			fmt.Fprintf(os.Stderr, "line %d: %v\n", lineNum, err)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}

	fmt.Printf("%d puzzles checked, %d bad\n", total, bad)
	if bad > 0 {
		return fmt.Errorf("%d bad catalog entries", bad)
	}
	return nil
}

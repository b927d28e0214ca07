// Command glintanalyze exposes Glint's editor-facing syntax queries
// from the command line: parse, highlight, symbols, runnables, extend
// selection, flip a comma, and re-check the core tree invariants.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glint-lang/glint/internal/config"
	"github.com/glint-lang/glint/internal/invariants"
	"github.com/glint-lang/glint/syntax"
)

var (
	configPath string
	format     string
)

func main() {
	root := &cobra.Command{
		Use:   "glintanalyze",
		Short: "Inspect the syntax tree of a Glint source file",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "glint.toml", "analyzer settings file")
	root.PersistentFlags().StringVar(&format, "format", "yaml", "output format (yaml)")

	root.AddCommand(
		parseCmd(),
		highlightCmd(),
		symbolsCmd(),
		runnablesCmd(),
		selectCmd(),
		flipCommaCmd(),
		checkCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readSourceArg(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("expected exactly one file argument")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and dump its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSourceArg(args)
			if err != nil {
				return err
			}
			tree := syntax.Parse(src)
			out, err := syntax.DumpYAML(tree.Root)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			if len(tree.Diagnostics) > 0 {
				diagOut, err := syntax.DumpDiagnosticsYAML(tree.Diagnostics)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "---")
				fmt.Fprint(cmd.OutOrStdout(), diagOut)
			}
			return nil
		},
	}
}

func highlightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "highlight <file>",
		Short: "Print syntax highlighting spans",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSourceArg(args)
			if err != nil {
				return err
			}
			tree := syntax.Parse(src)
			for _, h := range syntax.Highlight(tree.Root) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", h.Range, h.Tag)
			}
			return nil
		},
	}
}

func symbolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols <file>",
		Short: "Print the document symbol table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSourceArg(args)
			if err != nil {
				return err
			}
			tree := syntax.Parse(src)
			out, err := syntax.DumpSymbolsYAML(syntax.Symbols(tree.Root))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func runnablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "runnables <file>",
		Short: "List runnable functions (main, #[test] fns)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSourceArg(args)
			if err != nil {
				return err
			}
			tree := syntax.Parse(src)
			for _, r := range syntax.Runnables(tree.Root) {
				if r.Name == "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", r.Kind, r.Range)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s{%s} %s\n", r.Kind, r.Name, r.Range)
				}
			}
			return nil
		},
	}
}

var selectOffset int

func selectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select <file>",
		Short: "Extend the selection at --offset by one syntactic level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSourceArg(args)
			if err != nil {
				return err
			}
			tree := syntax.Parse(src)
			cur := syntax.TextRange{Start: syntax.TextUnit(selectOffset), End: syntax.TextUnit(selectOffset)}
			next := syntax.ExtendSelection(tree.Root, cur)
			fmt.Fprintln(cmd.OutOrStdout(), next)
			return nil
		},
	}
	cmd.Flags().IntVar(&selectOffset, "offset", 0, "byte offset to extend selection from")
	return cmd
}

var flipCommaOffset int

func flipCommaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flip-comma <file>",
		Short: "Swap the list elements around the comma at --offset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSourceArg(args)
			if err != nil {
				return err
			}
			tree := syntax.Parse(src)
			edit, ok := syntax.FlipComma(tree.Root, syntax.TextUnit(flipCommaOffset))
			if !ok {
				return fmt.Errorf("no comma to flip at offset %d", flipCommaOffset)
			}
			fmt.Fprintln(cmd.OutOrStdout(), syntax.ApplyTextEdits(src, []syntax.TextEdit{edit}))
			return nil
		},
	}
	cmd.Flags().IntVar(&flipCommaOffset, "offset", 0, "byte offset immediately before or after the comma to flip")
	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Re-check core tree invariants against a parse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSourceArg(args)
			if err != nil {
				return err
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			tree := syntax.ParseWithDepth(src, cfg.MaxParseDepth)
			if err := invariants.Check(src, tree); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

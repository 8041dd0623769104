package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/sandevgo/csvrepl/internal/service/session"
	"github.com/spf13/cobra"
)

var execMode string

var execCmd = &cobra.Command{
	Use:   "exec [line...]",
	Short: "Run command lines and print the history",
	Long: `Runs each argument as one command line, or each line of stdin when no
arguments are given, then prints the results in order.`,
	Example: `  csvrepl exec "load_file simple.csv" view
  printf 'load_file header.csv\nsearch header2 element\n' | csvrepl exec --mode verbose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context(), nil)
		defer flushLog()

		appCfg := loadConfig(ctx)
		if execMode == "" {
			execMode = appCfg.GetOutputMode()
		}
		mode, err := session.ParseMode(execMode)
		if err != nil {
			return err
		}

		repl := newSession(appCfg, "exec")
		lines := args
		if len(lines) == 0 {
			if lines, err = readLines(cmd.InOrStdin()); err != nil {
				return err
			}
		}

		return runBatch(ctx, repl, lines, mode, cmd.OutOrStdout())
	},
}

func init() {
	execCmd.Flags().StringVarP(&execMode, "mode", "m", "", "output mode: brief or verbose")
	rootCmd.AddCommand(execCmd)
}

func runBatch(ctx context.Context, repl *session.Session, lines []string, mode session.Mode, out io.Writer) error {
	for _, line := range lines {
		repl.Submit(ctx, line)
	}
	_, err := fmt.Fprintln(out, repl.Transcript(mode))
	return err
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}

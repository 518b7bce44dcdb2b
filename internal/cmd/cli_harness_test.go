package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type cliResult struct {
	stdout string
	stderr string
	err    error
}

// runCLI executes the command tree with the given stdin and args. A config
// file in a temp dir is always passed so the user's config is never read.
func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()
	restore := snapshotCLIState()
	defer restore()

	out := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	in := bytes.NewBufferString(stdin)

	rootCmd.SetOut(out)
	rootCmd.SetErr(errBuf)
	rootCmd.SetIn(in)
	rootCmd.SetContext(withIO(context.Background(), in, out, errBuf))

	hasConfig := false
	for _, a := range args {
		if a == "--config" {
			hasConfig = true
		}
	}
	if !hasConfig {
		args = append([]string{"--config", filepath.Join(t.TempDir(), "config.yaml")}, args...)
	}
	rootCmd.SetArgs(args)

	err := Execute()
	return cliResult{stdout: out.String(), stderr: errBuf.String(), err: err}
}

// writeOutline writes content to dir/name with a fixed modification time.
func writeOutline(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write outline: %v", err)
	}
	mtime := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	return path
}

func snapshotCLIState() func() {
	prevOutputFmt := outputFmt
	prevOutputType := outputType
	prevDebug := debug
	prevConfig := configFile
	prevQueryExpr := queryExpr
	prevQueryFile := queryFile
	prevErrorFmt := errorFmt
	prevLoaded := loadedConfig
	prevOutputPath := outputPath
	prevStdout := toStdout
	prevTitle := titleFlag
	prevDiff := diffFlag
	prevDryRun := dryRun
	prevNow := nowFunc

	prevOut := rootCmd.OutOrStdout()
	prevErr := rootCmd.ErrOrStderr()
	prevIn := rootCmd.InOrStdin()

	return func() {
		resetCommandTree(rootCmd)

		outputFmt = prevOutputFmt
		outputType = prevOutputType
		debug = prevDebug
		configFile = prevConfig
		queryExpr = prevQueryExpr
		queryFile = prevQueryFile
		errorFmt = prevErrorFmt
		loadedConfig = prevLoaded
		outputPath = prevOutputPath
		toStdout = prevStdout
		titleFlag = prevTitle
		diffFlag = prevDiff
		dryRun = prevDryRun
		nowFunc = prevNow

		rootCmd.SetOut(prevOut)
		rootCmd.SetErr(prevErr)
		rootCmd.SetIn(prevIn)
		rootCmd.SetArgs(nil)
	}
}

// resetCommandTree clears contexts and flag values left by a run, including
// cobra's own --help and --version flags.
func resetCommandTree(cmd *cobra.Command) {
	cmd.SetContext(nil) //nolint:staticcheck // cobra re-seeds a background context on Execute
	resetFlagChanges(cmd)
	for _, child := range cmd.Commands() {
		resetCommandTree(child)
	}
}

func resetFlagChanges(cmdFlagSet interface {
	Flags() *pflag.FlagSet
	PersistentFlags() *pflag.FlagSet
	InheritedFlags() *pflag.FlagSet
},
) {
	if cmdFlagSet == nil {
		return
	}
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmdFlagSet.Flags().VisitAll(reset)
	cmdFlagSet.PersistentFlags().VisitAll(reset)
	cmdFlagSet.InheritedFlags().VisitAll(reset)
}

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/srlehn/fbstat/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:              filepath.Base(os.Args[0]),
	Short:            "fbstat shows system statistics on a framebuffer",
	Long:             "fbstat shows memory and cpu traces, network, temperature and disk usage on a framebuffer, in the terminal or as png snapshot",
	SilenceUsage:     true,
	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		run(showFunc(cmd, args))
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, `debug`, `d`, false, `debug errors, log at debug level`)
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, `silent`, `s`, false, `silence errors`)
	rootCmd.PersistentFlags().StringVarP(&logFileFlag, `log-file`, `l`, ``, `log file`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	debugFlag   bool
	silentFlag  bool
	logFileFlag string
)

// logHandler returns nil if logging is disabled.
func logHandler() (slog.Handler, func(), error) {
	lvl := slog.LevelInfo
	if debugFlag {
		lvl = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{AddSource: debugFlag, Level: lvl}
	switch {
	case len(logFileFlag) > 0:
		f, err := os.OpenFile(logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, func() {}, errors.New(err)
		}
		return slog.NewTextHandler(f, opts), func() { _ = f.Close() }, nil
	case debugFlag:
		return slog.NewTextHandler(os.Stderr, opts), func() {}, nil
	default:
		return nil, func() {}, nil
	}
}

func run(fn func() error) {
	var err error
	var exitCode int
	defer func() {
		if r := recover(); r != nil {
			exitCode = 1
			if !silentFlag {
				if stackFramer, ok := r.(interface{ ErrorStack() string }); ok {
					fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
				} else {
					fmt.Fprintln(os.Stderr, r)
					debug.PrintStack()
				}
			}
		}
		os.Exit(exitCode)
	}()
	if fn == nil {
		err = errors.NilParam()
	} else {
		err = fn()
	}
	if err != nil {
		exitCode = 1
		if !silentFlag {
			if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
				fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
			} else {
				fmt.Fprintln(os.Stderr, err.Error())
			}
		}
	}
}

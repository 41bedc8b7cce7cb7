// Package cmd implements the ogrep command-line interface.
package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"ogrep/internal/emit"
	"ogrep/internal/match"
	"ogrep/internal/monitor"
	"ogrep/internal/outline"
	"ogrep/internal/pipeline"
	"ogrep/internal/source"
	"ogrep/internal/tui"
	"ogrep/internal/walk"
)

var (
	regexFlag       bool
	ignoreCase      bool
	wholeWord       bool
	contextLines    int
	beforeLines     int
	afterLines      int
	noBreaks        bool
	ellipsisFlag    bool
	noSmartBranches bool
	noIgnorePreproc bool
	childrenFlag    bool
	printFilename   string
	perFileShort    bool
	perLineShort    bool
	useGitGrep      bool
	colorMode       string
	noPager         bool
	jsonOut         bool
	outputPath      string
	showStats       bool
	tabWidth        int

	anyMatch bool

	rootCmd = &cobra.Command{
		Use:   "ogrep [flags] PATTERN [PATH]",
		Short: "grep that shows the indentation outline enclosing each match",
		Long: `ogrep searches a file line-by-line for a pattern and, instead of fixed
N-line neighborhoods, prints the chain of enclosing lines whose indentation
is strictly shallower than the match: the nesting path that contains it.

PATH may be a file, a directory, a doublestar glob like 'src/**/*.cc', or
'-' for stdin (the default). Default options are read from the
OGREP_OPTIONS environment variable.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
)

func init() {
	flags := rootCmd.Flags()
	flags.BoolVarP(&regexFlag, "regex", "e", false, "treat pattern as a regular expression")
	flags.BoolVarP(&ignoreCase, "ignore-case", "i", false, "perform case-insensitive matching")
	flags.BoolVarP(&wholeWord, "word", "w", false, "match whole words only")
	flags.IntVarP(&contextLines, "context", "C", 0, "also show N leading and trailing lines around matches")
	flags.IntVarP(&beforeLines, "before", "B", 0, "also show N leading lines before matches")
	flags.IntVarP(&afterLines, "after", "A", 0, "also show N trailing lines after matches")
	flags.BoolVar(&noBreaks, "no-breaks", false, "suppress blank separators between disjoint groups")
	flags.BoolVar(&ellipsisFlag, "ellipsis", false, "mark skipped lines with a counted ellipsis")
	flags.BoolVar(&noSmartBranches, "no-smart-branches", false, "do not keep if-headers for matches in else branches")
	flags.BoolVar(&noIgnorePreproc, "no-ignore-preprocessor", false, "let preprocessor lines participate in ancestry")
	flags.BoolVar(&childrenFlag, "children", false, "also show every line nested deeper than a match")
	flags.StringVar(&printFilename, "print-filename", "", "when to print filenames: no, per-file or per-line")
	flags.BoolVarP(&perFileShort, "filename-per-file", "f", false, "shortcut for --print-filename=per-file")
	flags.BoolVarP(&perLineShort, "filename-per-line", "F", false, "shortcut for --print-filename=per-line")
	flags.BoolVarP(&useGitGrep, "use-git-grep", "g", false, "let git grep pick the files to scan")
	flags.StringVar(&colorMode, "color", "auto", "colorize output: auto, always or never")
	flags.BoolVar(&noPager, "no-pager", false, "do not page results even on a terminal")
	flags.BoolVar(&jsonOut, "json", false, "emit results as JSON lines")
	flags.StringVarP(&outputPath, "output", "o", "", "also write results to a file")
	flags.BoolVar(&showStats, "stats", false, "print a scan summary")
	flags.IntVar(&tabWidth, "tab-width", 8, "columns per tab when measuring indentation")

	rootCmd.MarkFlagsMutuallyExclusive("context", "before")
	rootCmd.MarkFlagsMutuallyExclusive("context", "after")
	rootCmd.MarkFlagsMutuallyExclusive("print-filename", "filename-per-file", "filename-per-line")
}

// Execute parses OGREP_OPTIONS plus the command line and runs the search.
// Exit status: 0 when matches were found, 1 when none, 2 on error.
func Execute() {
	args := append(envOptions(), os.Args[1:]...)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ogrep:", err)
		os.Exit(2)
	}
	if !anyMatch {
		os.Exit(1)
	}
}

// envOptions splits the OGREP_OPTIONS environment variable into leading
// arguments.
func envOptions() []string {
	return strings.Fields(os.Getenv("OGREP_OPTIONS"))
}

func run(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	input := "-"
	if len(args) == 2 {
		input = args[1]
	}

	matcher, err := match.New(match.Options{
		Pattern:    pattern,
		Regex:      regexFlag,
		WholeWord:  wholeWord,
		IgnoreCase: ignoreCase,
	})
	if err != nil {
		return err
	}

	before, after := beforeLines, afterLines
	if cmd.Flags().Changed("context") {
		before, after = contextLines, contextLines
	}

	ctx := cmd.Context()

	// Resolve the inputs before any output is produced.
	var files []string
	useStdin := false
	multi := false
	switch {
	case useGitGrep:
		if input == "-" {
			return fmt.Errorf("%w: --use-git-grep needs a pathspec, not stdin", pipeline.ErrConfigConflict)
		}
		files, err = walk.GitGrep(ctx, pattern, walk.GitGrepOptions{
			Regex:      regexFlag,
			WholeWord:  wholeWord,
			IgnoreCase: ignoreCase,
			Pathspec:   input,
		})
		if err != nil {
			return err
		}
		multi = true
	case input == "-":
		useStdin = true
	default:
		info, statErr := os.Stat(input)
		switch {
		case statErr == nil && info.IsDir():
			if files, err = walk.Tree(input); err != nil {
				return err
			}
			multi = true
		case statErr == nil:
			files = []string{input}
		case walk.HasMeta(input):
			if files, err = walk.Pattern(input); err != nil {
				return err
			}
			multi = true
		default:
			return fmt.Errorf("cannot open %s: %v", input, statErr)
		}
	}

	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd())

	styles := emit.PlainStyles()
	switch colorMode {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI)
		styles = emit.DefaultStyles()
	case "never":
	case "auto":
		if stdoutTTY {
			styles = emit.DefaultStyles()
		}
	default:
		return fmt.Errorf("%w: invalid --color value %q", pipeline.ErrConfigConflict, colorMode)
	}

	mode := emit.FilenameNone
	switch {
	case perLineShort:
		mode = emit.FilenamePerLine
	case perFileShort:
		mode = emit.FilenamePerFile
	case printFilename != "":
		switch printFilename {
		case "no":
		case "per-file":
			mode = emit.FilenamePerFile
		case "per-line":
			mode = emit.FilenamePerLine
		default:
			return fmt.Errorf("%w: invalid --print-filename value %q", pipeline.ErrConfigConflict, printFilename)
		}
	case multi:
		mode = emit.FilenamePerFile
	}

	usePager := stdoutTTY && !noPager && !jsonOut
	var out io.Writer = os.Stdout
	var pagerBuf *bytes.Buffer
	if usePager {
		pagerBuf = &bytes.Buffer{}
		out = pagerBuf
	}

	var sinks []emit.Sink
	if jsonOut {
		sinks = append(sinks, emit.NewJSONSink(out))
	} else {
		sinks = append(sinks, emit.NewTerminalSink(out, styles, mode))
	}
	if outputPath != "" {
		format := "text"
		if jsonOut {
			format = "json"
		}
		fileSink, err := emit.NewFileSink(outputPath, format)
		if err != nil {
			return err
		}
		sinks = append(sinks, fileSink)
	}

	stats := monitor.NewStats()
	cfg := &pipeline.Config{
		Matcher:            matcher,
		Branches:           outline.DefaultBranches(),
		SmartBranches:      !noSmartBranches,
		TabWidth:           tabWidth,
		IgnorePreprocessor: !noIgnorePreproc,
		Before:             before,
		After:              after,
		Breaks:             !noBreaks && !childrenFlag,
		Ellipsis:           ellipsisFlag,
		Children:           childrenFlag,
		Sinks:              sinks,
		Stats:              stats,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if useStdin {
		stats.RecordFile()
		matched, err := pipeline.Run(ctx, cfg, source.NewStdinSource())
		anyMatch = anyMatch || matched
		if err != nil && !errors.Is(err, source.ErrRead) {
			return err
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "ogrep:", err)
		}
	} else {
		for _, path := range files {
			stats.RecordFile()
			matched, err := pipeline.Run(ctx, cfg, source.NewFileSource(path))
			anyMatch = anyMatch || matched
			if err != nil {
				// A read failure abandons one file, not the run.
				if errors.Is(err, source.ErrRead) {
					fmt.Fprintln(os.Stderr, "ogrep:", err)
					continue
				}
				return err
			}
		}
	}

	for _, s := range sinks {
		if err := s.Flush(); err != nil {
			return err
		}
		if err := s.Close(); err != nil {
			return err
		}
	}

	if usePager && pagerBuf.Len() > 0 {
		if err := tui.Run("ogrep: "+pattern, pagerBuf.String()); err != nil {
			return err
		}
	}

	if showStats {
		fmt.Fprintln(os.Stderr, stats.Summary())
	}
	return nil
}

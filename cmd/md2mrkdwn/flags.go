package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds parsed command-line flags. Conversion flags override
// config-file values only when explicitly set.
type cliFlags struct {
	config      string
	bullet      string
	headerStyle string
	linkFormat  string
	tableMode   string
	hrChar      string
	hrLength    int
	verbose     bool
	version     bool

	set *flag.FlagSet
}

// parseFlags parses command-line arguments and returns the flags plus the
// remaining positional arguments (input files).
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("md2mrkdwn", flag.ContinueOnError)
	fs.SortFlags = false

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.bullet, "bullet", "", "glyph for unordered bullets")
	fs.StringVar(&f.headerStyle, "header-style", "", "header rendering: bold, plain, prefix")
	fs.StringVar(&f.linkFormat, "link-format", "", "link rendering: slack, url_only, text_only")
	fs.StringVar(&f.tableMode, "table-mode", "", "table rendering: code_block, preserve")
	fs.StringVar(&f.hrChar, "hr-char", "", "glyph repeated for horizontal rules")
	fs.IntVar(&f.hrLength, "hr-length", 0, "horizontal rule repeat count")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "report diagnostics to stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr,
			"Usage: md2mrkdwn [flags] [file ...]\n\n"+
				"Reads Markdown from the named files (or stdin when none are given)\n"+
				"and writes Slack mrkdwn to stdout.\n\nFlags:\n%s",
			fs.FlagUsages())
	}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	f.set = fs
	return f, fs.Args(), nil
}

// changed reports whether a flag was explicitly set on the command line.
func (f *cliFlags) changed(name string) bool {
	return f.set.Changed(name)
}

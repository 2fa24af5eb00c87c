package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/metcalfc/mdoutline/internal/outline"
	"github.com/metcalfc/mdoutline/internal/render"
	"github.com/metcalfc/mdoutline/internal/source"
)

// Version info (injected via ldflags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	path            string
	output          string
	interactive     bool
	skipFrontMatter bool
	showVersion     bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("mdoutline", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.path, "p", "", "Path to the input markdown file (required)")
	fs.StringVar(&opts.path, "path", "", "Path to the input markdown file (required)")
	fs.StringVar(&opts.output, "o", "", "Path to an output JSON file; disables printing")
	fs.StringVar(&opts.output, "output", "", "Path to an output JSON file; disables printing")
	fs.BoolVar(&opts.interactive, "i", false, "Browse the outline interactively")
	fs.BoolVar(&opts.skipFrontMatter, "skip-frontmatter", false, "Ignore a leading front matter block (a document opening with a --- rule is read as front matter up to the next ---)")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "mdoutline - Markdown Outline Extractor\n\n")
		fmt.Fprintf(stderr, "Usage:\n")
		fmt.Fprintf(stderr, "  mdoutline -path FILE [-output FILE.json] [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nFormats:\n")
		fmt.Fprintf(stderr, "  %s\n", strings.Join(source.SupportedFormats(), ", "))
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  mdoutline -p README.md                 Print the outline\n")
		fmt.Fprintf(stderr, "  mdoutline -p README.md -o outline.json Write the outline as JSON\n")
		fmt.Fprintf(stderr, "  mdoutline -i -p book.epub              Browse the outline\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err == flag.ErrHelp {
		return 0
	}
	if err != nil {
		return 1
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "mdoutline %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}

	if opts.path == "" {
		fmt.Fprintln(stderr, "Error: No input provided. Pass the markdown file with -path.")
		fmt.Fprintln(stderr, "Try: mdoutline -h")
		return 1
	}

	o, err := outline.Parse(opts.path, source.Options{SkipFrontMatter: opts.skipFrontMatter})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		// A missing input still renders, as an empty outline.
		if !errors.Is(err, outline.ErrSourceUnavailable) {
			return 1
		}
	}

	if opts.output != "" {
		if err := render.WriteJSONFile(opts.output, o); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if opts.interactive {
		if err := browse(opts.path, o, stderr); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := render.Text(stdout, o); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

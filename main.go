package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"placeinfo/internal/fetcher"
	"placeinfo/internal/formatter"
	"placeinfo/internal/logger"
	"placeinfo/internal/scraper"
)

var version = "dev"

// Exit statuses.
const (
	exitOK        = 0
	exitUsage     = 1
	exitTransport = 2
)

// exitError carries the process exit status out of cobra's RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

var errNoPlace = errors.New("place name is required")

type fetcherFactory func(name string, opts fetcher.Options) (fetcher.Fetcher, error)

type app struct {
	stdout     io.Writer
	stderr     io.Writer
	newFetcher fetcherFactory

	outputFormat string
	outputFile   string
	timeout      time.Duration
	host         string
	fetcherName  string
	showUI       bool
	proxyURL     string
	verbose      bool
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr, fetcher.New))
}

// execute runs the CLI with args and returns the process exit status.
func execute(args []string, stdout, stderr io.Writer, newFetcher fetcherFactory) int {
	a := &app{stdout: stdout, stderr: stderr, newFetcher: newFetcher}
	cmd := a.command()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	// Flag parsing and other cobra errors.
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitUsage
}

func (a *app) command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "placeinfo [place name...]",
		Short:   "Summarize the infobox of a place's Wikipedia article",
		Version: version,
		Long: `placeinfo fetches the Wikipedia article for a place, reads its infobox
summary table and prints a fixed set of common fields such as country,
population, elevation and coordinates.`,
		Example: `  placeinfo "San Francisco"
  placeinfo Kyoto
  placeinfo -f json Reykjavik
  placeinfo --fetcher browser -o paris.md Paris`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Usage()
				return &exitError{code: exitUsage, err: errNoPlace}
			}
			return nil
		},
		RunE:          a.run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&a.outputFormat, "format", "f", "text", "Output format ("+strings.Join(formatter.Formats, ", ")+")")
	rootCmd.Flags().StringVarP(&a.outputFile, "output", "o", "", "Output file path (format inferred from extension if -f not specified)")
	rootCmd.Flags().DurationVarP(&a.timeout, "timeout", "t", fetcher.DefaultTimeout, "Request timeout duration")
	rootCmd.Flags().StringVar(&a.host, "host", fetcher.DefaultHost, "Wiki host to query")
	rootCmd.Flags().StringVar(&a.fetcherName, "fetcher", "http", "Fetch backend ("+strings.Join(fetcher.Names(), ", ")+")")
	rootCmd.Flags().BoolVar(&a.showUI, "showui", false, "Show browser UI (browser fetcher only)")
	rootCmd.Flags().StringVarP(&a.proxyURL, "proxy", "p", "", "Proxy URL (e.g. http://127.0.0.1:7890)")
	rootCmd.Flags().BoolVarP(&a.verbose, "verbose", "v", false, "Log fetch and parse details to stderr")

	return rootCmd
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	place := strings.Join(args, " ")
	if strings.TrimSpace(place) == "" {
		return a.usageError(errNoPlace)
	}

	// If output file is specified but format is not, infer format from file extension
	if a.outputFile != "" && !cmd.Flags().Changed("format") {
		if inferred := formatter.InferFromExtension(a.outputFile); inferred != "" {
			a.outputFormat = inferred
		}
	}
	if !formatter.Valid(a.outputFormat) {
		return a.usageError(fmt.Errorf("invalid output format: %s", a.outputFormat))
	}
	if a.host == "" {
		return a.usageError(fmt.Errorf("--host must not be empty"))
	}

	f, err := a.newFetcher(a.fetcherName, fetcher.Options{
		BaseURL:  fetcher.BaseURL(a.host),
		Timeout:  a.timeout,
		ProxyURL: a.proxyURL,
		ShowUI:   a.showUI,
	})
	if err != nil {
		return a.usageError(err)
	}

	log := logger.New(a.stderr, a.verbose)
	ctx := log.WithContext(context.Background())

	content, err := scraper.New(f, nil).Scrape(ctx, place)
	if err != nil {
		return a.fetchError(err)
	}

	out, err := formatter.Format(content, a.outputFormat)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: failed to format output: %v\n", err)
		return &exitError{code: exitUsage, err: err}
	}

	if a.outputFile != "" {
		if err := os.WriteFile(a.outputFile, []byte(out), 0644); err != nil {
			fmt.Fprintf(a.stderr, "Error: failed to write to file: %v\n", err)
			return &exitError{code: exitUsage, err: err}
		}
		fmt.Fprintf(a.stderr, "Output written to: %s\n", a.outputFile)
		return nil
	}

	fmt.Fprintln(a.stdout, out)
	return nil
}

func (a *app) usageError(err error) error {
	fmt.Fprintf(a.stderr, "Error: %v\n", err)
	return &exitError{code: exitUsage, err: err}
}

func (a *app) fetchError(err error) error {
	var te *fetcher.TransportError
	switch {
	case errors.As(err, &te) && te.Kind == fetcher.KindHTTPStatus:
		fmt.Fprintf(a.stderr, "HTTP error fetching page: %v\n", te)
	case errors.As(err, &te):
		fmt.Fprintf(a.stderr, "Network error fetching page: %v\n", te)
	default:
		fmt.Fprintf(a.stderr, "Error fetching page: %v\n", err)
	}
	return &exitError{code: exitTransport, err: err}
}

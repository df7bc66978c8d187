package main

import (
	"fmt"

	"github.com/fwojciec/bookfetch"
	"github.com/fwojciec/bookfetch/assemble"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	if err := c.runFetch(deps); err != nil {
		return err
	}

	if c.SkipConvert || c.Config.MobiFile == "" {
		return nil
	}

	c.runConvert(deps)
	return nil
}

func (c *FetchCmd) runFetch(deps *Dependencies) error {
	w, err := deps.CreateWriter(c.Config.OutputFile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookfetch.ErrorMessage(err))
		return err
	}

	a := &assemble.Assembler{
		Fetcher:     deps.Fetcher,
		Extractor:   deps.Extractor,
		Writer:      w,
		URL:         c.Config.URL,
		MaxPages:    c.Config.MaxPages,
		StrikeLimit: c.Config.StrikeLimit,
	}

	progress := func(e assemble.ProgressEvent) {
		switch e.Type {
		case assemble.ProgressFetching:
			fmt.Fprintf(deps.Stdout, "Fetching page %d: %s\n", e.Page, e.URL)
		case assemble.ProgressStopped:
			printStop(deps, e.Outcome)
		}
	}

	if _, err := a.Run(deps.Ctx, progress); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		fmt.Fprintf(deps.Stderr, "Partial output discarded; %s was not modified.\n", c.Config.OutputFile)
		return err
	}

	fmt.Fprintln(deps.Stdout, "Book parsing completed.")
	return nil
}

func printStop(deps *Dependencies, o bookfetch.Outcome) {
	switch o.Kind {
	case bookfetch.EndOfBook:
		fmt.Fprintf(deps.Stdout, "Detected end of book at page %d. Stopping.\n", o.EndPage)
	case bookfetch.FetchFailed:
		fmt.Fprintf(deps.Stdout, "Page %d does not exist. Stopping.\n", o.Page)
	case bookfetch.Ceiling:
		fmt.Fprintf(deps.Stdout, "Reached page limit %d. Stopping.\n", o.Page)
	}
}

// runConvert converts the assembled text file. A failed conversion is
// reported but leaves the text file in place and does not fail the run.
func (c *FetchCmd) runConvert(deps *Dependencies) {
	err := deps.Converter.Convert(deps.Ctx, c.Config.OutputFile, c.Config.MobiFile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Error during conversion: %v\n", err)
		return
	}
	fmt.Fprintf(deps.Stdout, "Conversion to %s completed successfully.\n", c.Config.MobiFile)
}

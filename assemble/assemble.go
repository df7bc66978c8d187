// Package assemble drives the page loop that turns an online book into a
// single text file. It fetches pages in order, streams their paragraphs to
// the output, and decides from the whole-page text when the book has ended.
package assemble

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/bookfetch"
)

// Assembler fetches book pages one at a time and writes their content.
type Assembler struct {
	Fetcher   bookfetch.Fetcher
	Extractor bookfetch.Extractor
	Writer    bookfetch.BookWriter
	URL       bookfetch.PageURL

	// MaxPages is the hard upper bound on page numbers.
	// Defaults to bookfetch.DefaultMaxPages.
	MaxPages int

	// StrikeLimit is the number of consecutive empty or repeated pages
	// that ends the book. Defaults to bookfetch.DefaultStrikeLimit.
	StrikeLimit int
}

// State is the mutable loop state of a run.
type State struct {
	// Page is the next page to fetch.
	Page int

	// LastText is the whole-page text of the previous page.
	LastText string

	// Strikes counts consecutive empty or repeated pages.
	Strikes int

	// Fetched counts pages fetched successfully.
	Fetched int

	// Paragraphs counts paragraphs written to the output.
	Paragraphs int
}

// NewState returns the state for a run starting at page 1.
func NewState() *State {
	return &State{Page: 1}
}

// Result holds the outcome of a run.
type Result struct {
	Outcome    bookfetch.Outcome
	Fetched    int
	Paragraphs int
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type    ProgressType
	Page    int
	URL     string
	Outcome bookfetch.Outcome
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressFetching ProgressType = iota
	ProgressStopped
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

func (a *Assembler) maxPages() int {
	if a.MaxPages <= 0 {
		return bookfetch.DefaultMaxPages
	}
	return a.MaxPages
}

func (a *Assembler) strikeLimit() int {
	if a.StrikeLimit <= 0 {
		return bookfetch.DefaultStrikeLimit
	}
	return a.StrikeLimit
}

// Run processes pages from 1 until a stop condition or MaxPages.
// On success the Writer is committed; on error it is aborted and the
// error returned. Exactly one of the two is called.
func (a *Assembler) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	result, err := a.run(ctx, NewState(), progress)
	if err != nil {
		_ = a.Writer.Abort()
		return nil, err
	}

	if err := a.Writer.Commit(); err != nil {
		return nil, fmt.Errorf("commit output: %w", err)
	}

	return result, nil
}

func (a *Assembler) run(ctx context.Context, st *State, progress ProgressFunc) (*Result, error) {
	if err := a.URL.Validate(); err != nil {
		return nil, err
	}

	maxPages := a.maxPages()
	for st.Page <= maxPages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if progress != nil {
			progress(ProgressEvent{
				Type: ProgressFetching,
				Page: st.Page,
				URL:  a.URL.URL(st.Page),
			})
		}

		outcome, err := a.Step(ctx, st)
		if err != nil {
			return nil, err
		}
		if outcome.Done() {
			return a.stop(st, outcome, progress), nil
		}
	}

	return a.stop(st, bookfetch.Outcome{
		Kind:    bookfetch.Ceiling,
		Page:    maxPages,
		EndPage: maxPages,
		Reason:  fmt.Sprintf("reached page limit %d", maxPages),
	}, progress), nil
}

func (a *Assembler) stop(st *State, outcome bookfetch.Outcome, progress ProgressFunc) *Result {
	if progress != nil {
		progress(ProgressEvent{
			Type:    ProgressStopped,
			Page:    outcome.Page,
			Outcome: outcome,
		})
	}
	return &Result{
		Outcome:    outcome,
		Fetched:    st.Fetched,
		Paragraphs: st.Paragraphs,
	}
}

// Step processes st.Page: it fetches the page, writes its paragraphs, and
// evaluates the stop heuristic. On Continue, st.Page is advanced.
//
// A missing page yields FetchFailed with EndPage set to the missing page.
// StrikeLimit consecutive pages whose whole-page text is blank or exactly
// equal to the previous page yield EndOfBook with EndPage set to the last
// page before the strikes began. Any other fetch, extract or write failure
// is returned as an error.
func (a *Assembler) Step(ctx context.Context, st *State) (bookfetch.Outcome, error) {
	page := st.Page

	html, err := a.Fetcher.Fetch(ctx, a.URL.URL(page))
	if err != nil {
		if bookfetch.ErrorCode(err) == bookfetch.ENOTFOUND {
			return bookfetch.Outcome{
				Kind:    bookfetch.FetchFailed,
				Page:    page,
				EndPage: page,
				Reason:  fmt.Sprintf("page %d does not exist", page),
			}, nil
		}
		return bookfetch.Outcome{}, fmt.Errorf("fetch page %d: %w", page, err)
	}
	st.Fetched++

	block, err := a.Extractor.Extract(html, page)
	if err != nil {
		return bookfetch.Outcome{}, fmt.Errorf("extract page %d: %w", page, err)
	}

	for _, p := range block.Paragraphs {
		if err := a.Writer.WriteParagraph(bookfetch.Normalize(p)); err != nil {
			return bookfetch.Outcome{}, fmt.Errorf("write page %d: %w", page, err)
		}
		st.Paragraphs++
	}

	if strings.TrimSpace(block.Text) == "" || block.Text == st.LastText {
		st.Strikes++
	} else {
		st.Strikes = 0
	}
	st.LastText = block.Text

	if limit := a.strikeLimit(); st.Strikes >= limit {
		return bookfetch.Outcome{
			Kind:    bookfetch.EndOfBook,
			Page:    page,
			EndPage: page - limit,
			Reason:  fmt.Sprintf("%d consecutive empty or repeated pages", limit),
		}, nil
	}

	st.Page++
	return bookfetch.Outcome{Kind: bookfetch.Continue, Page: page}, nil
}

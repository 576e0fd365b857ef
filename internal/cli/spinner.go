// Package cli renders the interactive progress display and terminal color
// plumbing for tsapredictor: a spinner tracking concurrent per-cycle
// refinement progress, and the color-provider glue needed by apperrors.
package cli

import (
	"time"

	"github.com/briandowns/spinner"
)

const (
	// ProgressRefreshRate is the spinner's animation and suffix-update
	// interval.
	ProgressRefreshRate = 200 * time.Millisecond
)

// Spinner abstracts the terminal spinner so DisplayProgress can be tested
// without a real tty.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                  { rs.s.Start() }
func (rs *realSpinner) Stop()                   { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

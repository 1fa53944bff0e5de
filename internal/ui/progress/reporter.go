package progress

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Reporter shows one spinner per task. It stays silent unless enabled,
// so redirected output never receives escape sequences.
type Reporter struct {
	out     *os.File
	enabled bool

	mu      sync.Mutex
	current *Spinner
}

// NewReporter returns a Reporter drawing on out. Spinners are shown only
// when out is a terminal and quiet is false.
func NewReporter(out *os.File, quiet bool) *Reporter {
	return &Reporter{
		out:     out,
		enabled: !quiet && isTerminal(out),
	}
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Enabled reports whether Start draws anything.
func (r *Reporter) Enabled() bool {
	return r.enabled
}

// Start shows a spinner labelled task, replacing any running one.
func (r *Reporter) Start(task string) {
	if !r.enabled {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current != nil {
		r.current.Stop()
	}
	r.current = NewSpinner(r.out, task)
	r.current.Start()
}

// Stop clears the running spinner, if any.
func (r *Reporter) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current != nil {
		r.current.Stop()
		r.current = nil
	}
}

package ui

import (
	"fmt"
	"sync"
	"time"
)

// Spinner animates a lightweight stdout loading indicator for non-TUI
// contexts (the report pipeline runs several sequential API calls).
type Spinner struct {
	frames   []string
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}

	mu  sync.Mutex
	msg string
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// NewSpinner creates a new spinner with the given message.
func NewSpinner(msg string) *Spinner {
	return &Spinner{
		frames:   spinnerFrames,
		interval: 80 * time.Millisecond,
		msg:      msg,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins the spinner animation in a goroutine.
func (s *Spinner) Start() {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		i := 0
		for {
			select {
			case <-s.stop:
				fmt.Printf("\r%-70s\r", "") // clear line
				return
			case <-ticker.C:
				frame := StyleChain.Render(s.frames[i%len(s.frames)])
				s.mu.Lock()
				msg := s.msg
				s.mu.Unlock()
				fmt.Printf("\r%s  %s", frame, msg)
				i++
			}
		}
	}()
}

// SetMessage swaps the message shown next to the spinner, e.g. between
// pipeline stages.
func (s *Spinner) SetMessage(msg string) {
	s.mu.Lock()
	s.msg = msg
	s.mu.Unlock()
}

// Stop halts the spinner and waits for it to finish.
func (s *Spinner) Stop() {
	close(s.stop)
	<-s.done
}

// StopWithMsg halts the spinner and prints a final message.
func (s *Spinner) StopWithMsg(msg string) {
	s.Stop()
	fmt.Println(msg)
}

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// SignalHandler cancels a context on SIGINT/SIGTERM so an in-flight
// git subprocess is killed rather than left running after the user
// interrupts a rebase.
type SignalHandler struct {
	signals  chan os.Signal
	stopCh   chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	cancel   context.CancelFunc
}

// NewSignalHandler creates a signal handler that cancels cancel on the
// first SIGINT or SIGTERM received.
func NewSignalHandler(cancel context.CancelFunc) *SignalHandler {
	return &SignalHandler{
		signals: make(chan os.Signal, 1),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
		cancel:  cancel,
	}
}

// Start begins listening for signals.
func (h *SignalHandler) Start() {
	signal.Notify(h.signals, syscall.SIGINT, syscall.SIGTERM)

	started := make(chan struct{})
	go func() {
		defer close(h.done)
		close(started)

		select {
		case sig := <-h.signals:
			fmt.Fprintf(os.Stderr, "\nreceived %v, stopping\n", sig)
			if h.cancel != nil {
				h.cancel()
			}
		case <-h.stopCh:
		}
	}()
	<-started
}

// Stop stops the signal handler and releases the OS signal channel.
func (h *SignalHandler) Stop() {
	signal.Stop(h.signals)
	h.stopOnce.Do(func() {
		close(h.stopCh)
	})
	<-h.done
}

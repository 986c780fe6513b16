// Package testutil provides shared test doubles and helpers for
// exercising the git package without a real repository.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// StubRunner is a git.Runner test double that replays queued
// responses keyed by the joined argument list. An unmatched call
// falls back to a per-key default, or fails loudly so missing stubs
// are caught instead of silently returning empty output.
type StubRunner struct {
	mu       sync.Mutex
	stubs    map[string][]stubResponse
	defaults map[string]stubResponse
	calls    []call
}

type stubResponse struct {
	out string
	err error
}

type call struct {
	dir  string
	env  []string
	args []string
}

func NewStubRunner() *StubRunner {
	return &StubRunner{
		stubs:    make(map[string][]stubResponse),
		defaults: make(map[string]stubResponse),
	}
}

// Stub queues a one-shot response for the given space-joined args.
func (s *StubRunner) Stub(args string, out string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stubs[args] = append(s.stubs[args], stubResponse{out: out, err: err})
}

// StubDefault sets a response returned every time args is seen once
// the queued one-shot stubs for it are exhausted.
func (s *StubRunner) StubDefault(args string, out string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults[args] = stubResponse{out: out, err: err}
}

func (s *StubRunner) Exec(ctx context.Context, dir string, env []string, args ...string) (string, error) {
	key := strings.Join(args, " ")
	s.mu.Lock()
	s.calls = append(s.calls, call{dir: dir, env: append([]string(nil), env...), args: append([]string(nil), args...)})
	queue := s.stubs[key]
	if len(queue) == 0 {
		if resp, ok := s.defaults[key]; ok {
			s.mu.Unlock()
			return resp.out, resp.err
		}
		s.mu.Unlock()
		return "", fmt.Errorf("unexpected git call: %s", key)
	}
	resp := queue[0]
	s.stubs[key] = queue[1:]
	s.mu.Unlock()
	return resp.out, resp.err
}

// CallsFor counts how many times args was invoked.
func (s *StubRunner) CallsFor(args ...string) int {
	key := strings.Join(args, " ")
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, c := range s.calls {
		if strings.Join(c.args, " ") == key {
			count++
		}
	}
	return count
}

// DirsFor returns the dir each invocation of args ran in, in call order.
func (s *StubRunner) DirsFor(args ...string) []string {
	key := strings.Join(args, " ")
	s.mu.Lock()
	defer s.mu.Unlock()
	var dirs []string
	for _, c := range s.calls {
		if strings.Join(c.args, " ") == key {
			dirs = append(dirs, c.dir)
		}
	}
	return dirs
}

// Copyright 2026 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

type testCase struct {
	name     string
	tag      string
	test     string
	matches  []string
	exitCode int
	timeout  time.Duration
}

func (t *testCase) reset() {
	t.timeout = 5 * time.Second
}

func (t *testCase) valid() bool {
	return t.tag != "" && t.test != "" && len(t.matches) != 0 && t.timeout > 0
}

// matcher records which of the wanted substrings showed up in the output.
type matcher struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

func newMatcher(matches []string) *matcher {
	m := &matcher{pending: make(map[string]struct{}, len(matches))}
	for _, s := range matches {
		m.pending[s] = struct{}{}
	}
	return m
}

func (m *matcher) feed(line string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for s := range m.pending {
		if strings.Contains(line, s) {
			delete(m.pending, s)
		}
	}
}

func (m *matcher) missing() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	missing := make([]string, 0, len(m.pending))
	for s := range m.pending {
		missing = append(missing, s)
	}
	return missing
}

func scanLines(w io.Writer, mu *sync.Mutex, r io.Reader, m *matcher) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		mu.Lock()
		_, _ = io.WriteString(w, line+"\n")
		mu.Unlock()

		m.feed(line)
	}
	return scanner.Err()
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	if err != nil {
		return -1
	}
	return 0
}

func runTest(w io.Writer, t testCase) bool {
	if !t.valid() {
		prErr(w, red, "Invalid test case: %+v\n", t)
		return false
	}

	prInfo(w, yellow, "Name: %s\n", t.name)
	prInfo(w, yellow, "Tags: %s\n", t.tag)
	prInfo(w, yellow, "Running: %s (matches: %d, exit: %d, timeout: %s)\n",
		t.test, len(t.matches), t.exitCode, t.timeout)

	started := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "bash", "-c", t.test)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		prErr(w, red, "Failed to get stdout pipe for %s: %v\n", t.test, err)
		return false
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		prErr(w, red, "Failed to get stderr pipe for %s: %v\n", t.test, err)
		return false
	}

	err = cmd.Start()
	if err != nil {
		prErr(w, red, "Test FAILED in %s (failed to start %s: %v)\n", time.Since(started), t.test, err)
		return false
	}

	m := newMatcher(t.matches)

	var mu sync.Mutex
	var errg errgroup.Group
	errg.Go(func() error { return scanLines(w, &mu, stdout, m) })
	errg.Go(func() error { return scanLines(w, &mu, stderr, m) })

	scanErr := errg.Wait()
	waitErr := cmd.Wait()

	if ctx.Err() != nil {
		prErr(w, red, "Test FAILED in %s (timeout of %s exceeded)\n", time.Since(started), t.timeout)
		return false
	}
	if scanErr != nil {
		prErr(w, red, "Test FAILED in %s (failed to read output: %v)\n", time.Since(started), scanErr)
		return false
	}

	if code := exitCode(waitErr); code != t.exitCode {
		prErr(w, red, "Test FAILED in %s (exit code %d, want %d)\n", time.Since(started), code, t.exitCode)
		return false
	}

	if missing := m.missing(); len(missing) != 0 {
		prErr(w, red, "Test FAILED in %s (not match: %q)\n", time.Since(started), missing)
		return false
	}

	prInfo(w, green, "Test PASSED in %s\n", time.Since(started))
	return true
}

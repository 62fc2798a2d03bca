package lox

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lox/internal/testutil"
	"github.com/leapstack-labs/lox/pkg/diag"
)

func TestCheckSource(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		ok       bool
		trailing int
		messages []string
	}{
		{name: "valid", source: "1 + 2", ok: true},
		{name: "trailing tokens", source: "1 2 3", ok: true, trailing: 2},
		{name: "parse error", source: "(1", messages: []string{"Expected ')' after expression."}},
		{
			name:     "scan and parse errors",
			source:   "@ (",
			messages: []string{"Unexpected character.", "Expected expression."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CheckSource("x.lox", tt.source)
			assert.Equal(t, tt.ok, r.OK())
			assert.Equal(t, tt.trailing, r.Trailing)
			require.Len(t, r.Diagnostics, len(tt.messages))
			for i, msg := range tt.messages {
				assert.Equal(t, msg, r.Diagnostics[i].Message)
			}
		})
	}
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 20; i++ {
		src := fmt.Sprintf("%d * (%d + 1)", i, i)
		if i%5 == 0 {
			src = fmt.Sprintf("%d * (%d +", i, i)
		}
		p := filepath.Join(dir, fmt.Sprintf("s%02d.lox", i))
		require.NoError(t, os.WriteFile(p, []byte(src), 0o600))
		paths = append(paths, p)
	}

	reports, err := CheckFiles(context.Background(), paths, testutil.NewTestLogger(t))
	require.NoError(t, err)
	require.Len(t, reports, len(paths))

	for i, r := range reports {
		assert.Equal(t, paths[i], r.Path, "reports keep input order")
		if i%5 == 0 {
			require.Len(t, r.Diagnostics, 1, r.Path)
			assert.Equal(t, diag.PhaseParse, r.Diagnostics[0].Phase)
		} else {
			assert.True(t, r.OK(), r.Path)
		}
	}

	var exitErr *ExitError
	require.True(t, errors.As(CheckExit(reports), &exitErr))
	assert.Equal(t, ExitDataError, exitErr.Code)
}

func TestCheckFiles_MissingFile(t *testing.T) {
	good := testutil.WriteScript(t, "good.lox", "1")
	missing := filepath.Join(t.TempDir(), "missing.lox")

	reports, err := CheckFiles(context.Background(), []string{good, missing}, nil)
	require.NoError(t, err)
	assert.True(t, reports[0].OK())
	assert.False(t, reports[1].OK())
	assert.Contains(t, reports[1].Error, "failed to read")

	var exitErr *ExitError
	require.True(t, errors.As(CheckExit(reports), &exitErr))
	assert.Equal(t, ExitIOError, exitErr.Code)
}

func TestCheckFiles_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := CheckFiles(ctx, []string{testutil.WriteScript(t, "a.lox", "1")}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckExit_AllOK(t *testing.T) {
	assert.NoError(t, CheckExit([]FileReport{{Path: "a"}, {Path: "b", Trailing: 1}}))
	assert.NoError(t, CheckExit(nil))
}

func TestWatch(t *testing.T) {
	path := testutil.WriteScript(t, "watched.lox", "1")
	other := filepath.Join(filepath.Dir(path), "other.lox")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu      sync.Mutex
		changed []string
	)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, []string{path}, 10*time.Millisecond, testutil.NewTestLogger(t), func(paths []string) {
			mu.Lock()
			changed = append(changed, paths...)
			mu.Unlock()
		})
	}()

	abs, err := filepath.Abs(path)
	require.NoError(t, err)

	// The watcher starts asynchronously, so keep touching the file until
	// the change is seen.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(other, []byte("2"), 0o600)
		_ = os.WriteFile(path, []byte("1 + 1"), 0o600)
		mu.Lock()
		defer mu.Unlock()
		return len(changed) > 0
	}, 5*time.Second, 50*time.Millisecond)

	mu.Lock()
	for _, p := range changed {
		assert.Equal(t, abs, p, "only watched scripts are reported")
	}
	mu.Unlock()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatch_CallsDoNotOverlap(t *testing.T) {
	path := testutil.WriteScript(t, "busy.lox", "1")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		calls    atomic.Int32
		inFlight atomic.Int32
		overlaps atomic.Int32
		late     atomic.Int32
		returned atomic.Bool
	)
	done := make(chan error, 1)
	go func() {
		err := Watch(ctx, []string{path}, time.Millisecond, testutil.NewTestLogger(t), func([]string) {
			if returned.Load() {
				late.Add(1)
			}
			if inFlight.Add(1) > 1 {
				overlaps.Add(1)
			}
			time.Sleep(20 * time.Millisecond)
			inFlight.Add(-1)
			calls.Add(1)
		})
		returned.Store(true)
		done <- err
	}()

	// Keep writing faster than a callback finishes.
	require.Eventually(t, func() bool {
		for i := range 5 {
			_ = os.WriteFile(path, []byte(strconv.Itoa(i)), 0o600)
			time.Sleep(2 * time.Millisecond)
		}
		return calls.Load() >= 3
	}, 5*time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}

	_ = os.WriteFile(path, []byte("after"), 0o600)
	time.Sleep(50 * time.Millisecond)

	assert.Zero(t, overlaps.Load(), "callbacks ran concurrently")
	assert.Zero(t, late.Load(), "callback ran after Watch returned")
	assert.Zero(t, inFlight.Load())
}

func TestWatch_MissingDirectory(t *testing.T) {
	err := Watch(context.Background(), []string{filepath.Join(t.TempDir(), "nope", "x.lox")}, time.Millisecond, nil, func([]string) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}

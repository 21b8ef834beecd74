package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/technologicalMayhem/human-date-parser/datetime"
	"github.com/technologicalMayhem/human-date-parser/entry"
	"github.com/technologicalMayhem/human-date-parser/tui"
	"github.com/technologicalMayhem/human-date-parser/watcher"
)

// Wednesday, May 8, 2024 at noon
var now = time.Date(2024, time.May, 8, 12, 0, 0, 0, time.UTC)

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	return runWithClock(t, clockwork.NewFakeClockAt(now), stdin, args...)
}

func runWithClock(t *testing.T, clock clockwork.Clock, stdin string, args ...string) result {
	t.Helper()
	cmd := NewRootCmd(clock)
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	// A nil slice would make cobra fall back to os.Args
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.ExecuteContext(context.Background())
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func TestREPL(t *testing.T) {
	res := run(t, "tomorrow 18:30\n\nbanana\nlast friday at 19:45\n")
	require.NoError(t, res.err)

	want := "Time now: 2024-05-08 12:00:00\nCalculated: 2024-05-09 18:30:00\n\n" +
		"datetime: unrecognized format: \"banana\"\n" +
		"Time now: 2024-05-08 12:00:00\nCalculated: 2024-05-03 19:45:00\n\n"
	assert.Equal(t, want, res.stdout)
}

func TestREPLFollowsClock(t *testing.T) {
	clock := clockwork.NewFakeClockAt(now)
	cmd := NewRootCmd(clock)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	var out syncBuffer
	cmd.SetIn(r)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	done := make(chan error, 1)
	go func() { done <- cmd.Execute() }()

	_, err = w.WriteString("now\n")
	require.NoError(t, err)
	require.Eventually(t, func() bool { return strings.Contains(out.String(), "Calculated: 2024-05-08 12:00:00") },
		2*time.Second, 10*time.Millisecond)

	clock.Advance(90 * time.Minute)
	_, err = w.WriteString("now\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	require.NoError(t, <-done)
	assert.Contains(t, out.String(), "Calculated: 2024-05-08 13:30:00")
}

func TestREPLJSON(t *testing.T) {
	res := run(t, "in 3 days\n3 days\n", "--json")
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 2)

	var ok, bad record
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &ok))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &bad))

	require.NotNil(t, ok.Value)
	assert.Equal(t, datetime.Date(2024, time.May, 11, 12, 0, 0), *ok.Value)
	assert.Equal(t, datetime.Date(2024, time.May, 8, 12, 0, 0), ok.Reference)
	assert.Empty(t, ok.Error)

	assert.Nil(t, bad.Value)
	assert.Equal(t, datetime.ErrConflictingModifiers.Error(), bad.Error)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		want    string
		wantErr error
	}{
		{
			name: "words joined",
			args: []string{"resolve", "next", "week", "monday"},
			want: "2024-05-13 00:00:00\n",
		},
		{
			name: "pinned reference",
			args: []string{"--ref", "2022-11-07 13:25:30", "resolve", "2 hours, 32 minutes and 7 seconds ago"},
			want: "2022-11-07 10:53:23\n",
		},
		{
			name: "relative reference",
			args: []string{"--ref", "yesterday", "resolve", "now"},
			want: "2024-05-07 12:00:00\n",
		},
		{
			name: "upcoming weekday policy",
			args: []string{"--unqualified-weekday", "upcoming", "resolve", "monday"},
			want: "2024-05-13 00:00:00\n",
		},
		{
			name: "weekday time from environment",
			args: []string{"resolve", "next friday"},
			env:  map[string]string{"HUMANDATE_WEEKDAY_TIME": "reference"},
			want: "2024-05-10 12:00:00\n",
		},
		{
			name:    "invalid component",
			args:    []string{"resolve", "2024-02-30"},
			wantErr: datetime.ErrInvalidDateComponent,
		},
		{
			name:    "unrecognized",
			args:    []string{"resolve", "banana"},
			wantErr: datetime.ErrUnrecognizedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			res := run(t, "", tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, res.err, tt.wantErr)
				assert.Empty(t, res.stdout)
				return
			}
			require.NoError(t, res.err)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestResolveJSONFailure(t *testing.T) {
	res := run(t, "", "--json", "resolve", "in", "five", "days")
	assert.ErrorIs(t, res.err, errFailures)

	var rec record
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &rec))
	assert.Equal(t, "in five days", rec.Input)
	assert.Equal(t, `datetime: invalid number: "five"`, rec.Error)
}

func TestInvalidFlags(t *testing.T) {
	res := run(t, "", "--weekday-time", "noon", "resolve", "friday")
	assert.ErrorContains(t, res.err, "invalid --weekday-time")

	res = run(t, "", "--unqualified-weekday", "sometimes", "resolve", "friday")
	assert.ErrorContains(t, res.err, "invalid --unqualified-weekday")

	res = run(t, "", "--ref", "banana", "resolve", "now")
	assert.ErrorIs(t, res.err, datetime.ErrUnrecognizedFormat)
	assert.ErrorContains(t, res.err, "invalid --ref")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plans.dates")
	content := "# plans\ntomorrow 9am  # dentist\nin 2 weeks\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	res := run(t, "", "check", path)
	require.NoError(t, res.err)
	assert.Equal(t,
		path+":2\ttomorrow 9am\t=>\t2024-05-09 09:00:00\t# dentist\n"+
			path+":3\tin 2 weeks\t=>\t2024-05-22 12:00:00\n",
		res.stdout)

	bad := filepath.Join(dir, "bad.dates")
	require.NoError(t, os.WriteFile(bad, []byte("in 2 weeks\nnext fortnight\nnow\n"), 0644))

	res = run(t, "", "check", "--sort", bad)
	assert.ErrorIs(t, res.err, errFailures)
	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "now")
	assert.Contains(t, lines[1], "in 2 weeks")
	assert.Contains(t, lines[2], "unrecognized format")

	res = run(t, "", "check", filepath.Join(dir, "missing.dates"))
	assert.Error(t, res.err)
	assert.NotErrorIs(t, res.err, errFailures)
}

func TestCheckDirectoryJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.dates"), []byte("now\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.dates"), []byte("yesterday\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), []byte("banana\n"), 0644))

	res := run(t, "", "--json", "check", dir)
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 2)
	for _, l := range lines {
		var rec record
		require.NoError(t, json.Unmarshal([]byte(l), &rec))
		assert.NotNil(t, rec.Value)
		assert.Equal(t, 1, rec.Line)
		assert.Equal(t, ".dates", filepath.Ext(rec.File))
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.dates")
	require.NoError(t, os.WriteFile(path, []byte("now\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := NewRootCmd(clockwork.NewFakeClockAt(now))
	var out syncBuffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"watch", dir})

	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool { return strings.Contains(out.String(), "2024-05-08 12:00:00") },
		2*time.Second, 10*time.Millisecond)

	// Give the watcher a moment to register before writing
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("now\novermorrow\n"), 0644))
	require.Eventually(t, func() bool { return strings.Contains(out.String(), "2024-05-10 12:00:00") },
		3*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}

func TestLogLevel(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	res := run(t, "", "--log-level", "debug", "resolve", "now")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "level=DEBUG")
	assert.Contains(t, res.stderr, "msg=configured")

	res = run(t, "", "resolve", "now")
	require.NoError(t, res.err)
	assert.Empty(t, res.stderr)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, parseLevel(" info "))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelWarn, parseLevel("bogus"))
}

func TestForwardEventsStopsWhenWatcherCloses(t *testing.T) {
	in := make(chan watcher.FileEvent, 2)
	out := make(chan tui.FileUpdateMsg, 2)
	in <- watcher.FileEvent{FilePath: "bad.dates", Err: os.ErrNotExist}
	in <- watcher.FileEvent{FilePath: "plans.dates", Entries: []*entry.Entry{{Input: "tomorrow"}}}
	close(in)

	forwardEvents(context.Background(), in, out)

	msg, ok := <-out
	require.True(t, ok)
	assert.Equal(t, "plans.dates", msg.FilePath)
	require.Len(t, msg.Entries, 1)
	_, ok = <-out
	assert.False(t, ok, "out should be closed once in is closed")
}

func TestForwardEventsStopsWhenContextEnds(t *testing.T) {
	in := make(chan watcher.FileEvent, 1)
	out := make(chan tui.FileUpdateMsg)
	in <- watcher.FileEvent{FilePath: "plans.dates"}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		forwardEvents(ctx, in, out)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("forwardEvents kept running after its context ended")
	}
	_, ok := <-out
	assert.False(t, ok, "out should be closed once the context ends")
}

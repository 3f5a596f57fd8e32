package guide_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morsuning/rust-code-guide-sub000/guide"
)

// quietLogger discards driver records unless -v is set.
func quietLogger() *log.Logger {
	if testing.Verbose() {
		return log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel, Prefix: "guide"})
	}
	return log.New(io.Discard)
}

// fakes builds n tutorials that each print one line to out.
func fakes(out io.Writer, n int) []guide.Tutorial {
	ts := make([]guide.Tutorial, n)
	for i := range ts {
		ord := i + 1
		ts[i] = guide.Tutorial{
			Ordinal: ord,
			Title:   fmt.Sprintf("t%d", ord),
			Run:     func() { fmt.Fprintf(out, "  output of %d\n", ord) },
		}
	}
	return ts
}

var bannerRe = regexp.MustCompile(`^(\d+)\. `)

// ordinals extracts the banner ordinals from a transcript, in order.
func ordinals(transcript string) []int {
	var got []int
	for _, line := range strings.Split(transcript, "\n") {
		if m := bannerRe.FindStringSubmatch(line); m != nil {
			n, _ := strconv.Atoi(m[1])
			got = append(got, n)
		}
	}
	return got
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// ── Registry ─────────────────────────────────────────────────────────────────

func TestTutorialsRegistry(t *testing.T) {
	t.Parallel()

	ts := guide.Tutorials()
	require.NoError(t, guide.Validate(ts))

	var titles []string
	for _, tu := range ts {
		titles = append(titles, tu.Title)
	}
	want := []string{
		"基础语法", "所有权系统", "结构体", "枚举", "模式匹配", "错误处理",
		"泛型", "特征", "集合", "闭包", "迭代器", "并发",
		"宏", "高级特性", "FFI", "智能指针", "异步", "面向对象特性",
	}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Errorf("titles mismatch (-want +got):\n%s", diff)
	}
}

func TestTutorialsReturnsCopy(t *testing.T) {
	t.Parallel()

	a := guide.Tutorials()
	a[0].Title = "changed"
	assert.Equal(t, "基础语法", guide.Tutorials()[0].Title)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	noop := func() {}
	tests := []struct {
		name string
		ts   []guide.Tutorial
	}{
		{"empty", nil},
		{"starts at zero", []guide.Tutorial{{Ordinal: 0, Title: "a", Run: noop}}},
		{"gap", []guide.Tutorial{{Ordinal: 1, Title: "a", Run: noop}, {Ordinal: 3, Title: "b", Run: noop}}},
		{"duplicate", []guide.Tutorial{{Ordinal: 1, Title: "a", Run: noop}, {Ordinal: 1, Title: "b", Run: noop}}},
		{"out of order", []guide.Tutorial{{Ordinal: 2, Title: "a", Run: noop}, {Ordinal: 1, Title: "b", Run: noop}}},
		{"no title", []guide.Tutorial{{Ordinal: 1, Run: noop}}},
		{"no entry", []guide.Tutorial{{Ordinal: 1, Title: "a"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := guide.Validate(tt.ts)
			assert.ErrorIs(t, err, guide.ErrInvalidRegistry)
		})
	}
}

func TestBanner(t *testing.T) {
	t.Parallel()

	for _, tu := range guide.Tutorials() {
		want := strconv.Itoa(tu.Ordinal) + ". " + tu.Title + "教程："
		assert.Equal(t, want, guide.Banner(tu))
	}
	assert.Equal(t, "15. FFI教程：", guide.Banner(guide.Tutorials()[14]))
}

// ── Driver framing ───────────────────────────────────────────────────────────

func TestRunFraming(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := guide.Run(guide.Config{Out: &out, Logger: quietLogger()}, fakes(&out, 3))
	require.NoError(t, err)

	want := strings.Join([]string{
		"Rust 代码教程库 - 主程序",
		"=======================",
		"运行各个教程模块的演示：",
		"",
		"1. t1教程：",
		"  output of 1",
		"",
		"2. t2教程：",
		"  output of 2",
		"",
		"3. t3教程：",
		"  output of 3",
		"",
		"所有教程演示完成！",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestRunEmptyTutorial(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	ts := fakes(&out, 3)
	ts[1].Run = func() {}

	require.NoError(t, guide.Run(guide.Config{Out: &out, Logger: quietLogger()}, ts))
	assert.Contains(t, out.String(), "  output of 1\n\n2. t2教程：\n\n3. t3教程：\n  output of 3\n")
}

func TestRunOrderingAndDeterminism(t *testing.T) {
	t.Parallel()

	run := func() string {
		var out bytes.Buffer
		require.NoError(t, guide.Run(guide.Config{Out: &out, Logger: quietLogger()}, fakes(&out, 18)))
		return out.String()
	}

	first := run()
	assert.Equal(t, seq(18), ordinals(first))
	assert.Equal(t, 1, strings.Count(first, guide.Ruler+"\n"))
	assert.Equal(t, 1, strings.Count(first, guide.Footer))
	assert.True(t, strings.HasSuffix(first, "\n\n"+guide.Footer+"\n"))
	assert.Equal(t, first, run())
}

func TestRunRejectsInvalidRegistry(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	ts := fakes(&out, 3)
	ts[2].Ordinal = 7

	err := guide.Run(guide.Config{Out: &out, Logger: quietLogger()}, ts)
	require.ErrorIs(t, err, guide.ErrInvalidRegistry)
	assert.Empty(t, out.String(), "nothing should be printed for a malformed registry")
}

func TestRunDoesNotRecoverPanics(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	ts := fakes(&out, 4)
	ts[1].Run = func() { panic("boom") }

	assert.PanicsWithValue(t, "boom", func() {
		_ = guide.Run(guide.Config{Out: &out, Logger: quietLogger()}, ts)
	})
	assert.Equal(t, []int{1, 2}, ordinals(out.String()))
	assert.NotContains(t, out.String(), guide.Footer)
}

type failingWriter struct{ after int }

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.after == 0 {
		return 0, errors.New("sink closed")
	}
	f.after--
	return len(p), nil
}

func TestRunReportsWriteErrors(t *testing.T) {
	t.Parallel()

	ran := 0
	ts := []guide.Tutorial{
		{Ordinal: 1, Title: "a", Run: func() { ran++ }},
		{Ordinal: 2, Title: "b", Run: func() { ran++ }},
	}

	// Header block is four lines; the fifth write is banner 1.
	err := guide.Run(guide.Config{Out: &failingWriter{after: 4}, Logger: quietLogger()}, ts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write banner 1")
	assert.Zero(t, ran)
}

func TestRunLogsEachTutorial(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})

	require.NoError(t, guide.Run(guide.Config{Out: io.Discard, Logger: logger}, fakes(io.Discard, 2)))
	assert.Equal(t, 2, strings.Count(logs.String(), "running tutorial"))
	assert.Contains(t, logs.String(), "ordinal=2")
}

// ── Process abort ────────────────────────────────────────────────────────────

const abortHelperEnv = "GUIDE_ABORT_HELPER"

// TestAbortHelper is re-executed by TestRunAbortStopsTheRun as a child
// process. Tutorial 12 prints a partial line and exits with status 3.
func TestAbortHelper(t *testing.T) {
	if os.Getenv(abortHelperEnv) != "1" {
		t.Skip("helper process only")
	}

	ts := fakes(os.Stdout, 18)
	ts[11].Run = func() {
		fmt.Println("  partial output of 12")
		os.Exit(3)
	}
	_ = guide.Run(guide.Config{Out: os.Stdout, Logger: log.New(io.Discard)}, ts)
	os.Exit(0)
}

func TestRunAbortStopsTheRun(t *testing.T) {
	t.Parallel()

	cmd := exec.Command(os.Args[0], "-test.run=^TestAbortHelper$")
	cmd.Env = append(os.Environ(), abortHelperEnv+"=1")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.ExitCode())

	got := stdout.String()
	assert.Equal(t, seq(12), ordinals(got))
	assert.Contains(t, got, "12. t12教程：\n  partial output of 12\n")
	assert.NotContains(t, got, guide.Footer)
}

// ── Real tutorials ───────────────────────────────────────────────────────────

// captureStdout redirects os.Stdout into a pipe while fn runs.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	done := make(chan string)
	go func() {
		b, _ := io.ReadAll(r)
		done <- string(b)
	}()

	fn()
	require.NoError(t, w.Close())
	return <-done
}

// TestRunAllTutorials runs the real registry end to end. It swaps os.Stdout
// and therefore must not run in parallel.
func TestRunAllTutorials(t *testing.T) {
	var runErr error
	got := captureStdout(t, func() {
		runErr = guide.Run(guide.Config{Out: os.Stdout, Logger: quietLogger()}, guide.Tutorials())
	})
	require.NoError(t, runErr)

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, []string{guide.Header, guide.Ruler, guide.Preamble, ""}, lines[:4])
	assert.Equal(t, guide.Footer, lines[len(lines)-1])
	assert.Equal(t, "", lines[len(lines)-2])

	assert.Equal(t, seq(18), ordinals(got))
	assert.Equal(t, 1, strings.Count(got, guide.Ruler+"\n"))

	// Banners are exact and in order.
	pos := -1
	for _, tu := range guide.Tutorials() {
		idx := strings.Index(got, "\n"+guide.Banner(tu)+"\n")
		require.Greater(t, idx, pos, "banner %d out of order", tu.Ordinal)
		pos = idx
	}
}

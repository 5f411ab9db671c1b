package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"wikitext/internal/diag"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestParseDir_SortedAndComplete(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"b.wiki":        "= B =\n",
		"a.wiki":        "= A =\n",
		"nested/c.wiki": "* one\n* two\n",
		"skip.txt":      "not wikitext",
	})

	batch, err := ParseDir(context.Background(), dir, ".wiki", 2, nil)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.wiki"),
		filepath.Join(dir, "b.wiki"),
		filepath.Join(dir, "nested", "c.wiki"),
	}
	if len(batch.Results) != len(want) {
		t.Fatalf("batch holds %d results, want %d", len(batch.Results), len(want))
	}
	for i, res := range batch.Results {
		if res.Path != want[i] {
			t.Errorf("result %d path = %s, want %s", i, res.Path, want[i])
		}
		if res.Err != nil {
			t.Errorf("result %d failed: %v", i, res.Err)
		}
		if res.Tree == nil {
			t.Errorf("result %d has no tree", i)
		}
	}
	if n := batch.ErrorCount(); n != 0 {
		t.Errorf("ErrorCount = %d, want 0", n)
	}
}

func TestParseDir_CapturesPerFileErrors(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"good.wiki": "fine\n",
		"bad.wiki":  "{{x",
	})

	batch, err := ParseDir(context.Background(), dir, ".wiki", 1, nil)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if n := batch.ErrorCount(); n != 1 {
		t.Fatalf("ErrorCount = %d, want 1", n)
	}
	// Отсортированный порядок: bad.wiki раньше good.wiki.
	bad, good := batch.Results[0], batch.Results[1]
	var perr *diag.ParseError
	if !errors.As(bad.Err, &perr) {
		t.Errorf("bad.Err = %T, want *diag.ParseError", bad.Err)
	}
	if bad.Tree != nil {
		t.Error("failed file still produced a tree")
	}
	if good.Err != nil || good.Tree == nil {
		t.Errorf("good file: err=%v tree=%v", good.Err, good.Tree)
	}
}

func TestParseDir_EmptyDir(t *testing.T) {
	batch, err := ParseDir(context.Background(), t.TempDir(), ".wiki", 4, nil)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if len(batch.Results) != 0 {
		t.Errorf("batch holds %d results, want none", len(batch.Results))
	}
}

func TestParseDir_HonorsCancellation(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.wiki": "x\n",
		"b.wiki": "y\n",
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParseDir(ctx, dir, ".wiki", 1, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestParseDir_EmitsEvents(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"good.wiki": "fine\n",
		"bad.wiki":  "{{x",
	})
	ch := make(chan Event, 64)

	_, err := ParseDir(context.Background(), dir, ".wiki", 1, ChannelSink{Ch: ch})
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}

	queued := map[string]bool{}
	final := map[string]Event{}
	for len(ch) > 0 {
		ev := <-ch
		switch ev.Status {
		case StatusQueued:
			queued[ev.File] = true
		case StatusDone, StatusError:
			final[ev.File] = ev
		}
	}

	goodPath := filepath.Join(dir, "good.wiki")
	badPath := filepath.Join(dir, "bad.wiki")
	for _, path := range []string{goodPath, badPath} {
		if !queued[path] {
			t.Errorf("no queued event for %s", path)
		}
	}
	if ev := final[goodPath]; ev.Status != StatusDone || ev.Stage != StageTransform {
		t.Errorf("good final event = %+v, want done at transform", ev)
	}
	if ev := final[badPath]; ev.Status != StatusError || ev.Stage != StageParse || ev.Err == nil {
		t.Errorf("bad final event = %+v, want error at parse", ev)
	}
}

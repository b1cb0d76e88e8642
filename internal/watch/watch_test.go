package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	got := Dirs("b/x.yaml", "a/y.yaml", "b/z.yaml", "w.json")
	assert.Equal(t, []string{".", "a", "b"}, got)
}

func TestRelevant(t *testing.T) {
	w := &Watcher{exts: map[string]bool{".yaml": true}}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: "s/unit.yaml", Op: fsnotify.Write}, true},
		{"upper-case extension", fsnotify.Event{Name: "s/UNIT.YAML", Op: fsnotify.Create}, true},
		{"other extension", fsnotify.Event{Name: "s/notes.txt", Op: fsnotify.Write}, false},
		{"chmod only", fsnotify.Event{Name: "s/unit.yaml", Op: fsnotify.Chmod}, false},
		{"swap file", fsnotify.Event{Name: "s/.unit.yaml.swp", Op: fsnotify.Write}, false},
		{"backup file", fsnotify.Event{Name: "s/unit.yaml~", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.relevant(tt.event))
		})
	}
}

func TestRun_BatchesChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := New(nil, 200*time.Millisecond, dir)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	batches := make(chan []string, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(paths []string) { batches <- paths })
	}()

	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "b.yaml")
	require.NoError(t, os.WriteFile(a, []byte("id: social-1\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("id: social-2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644))

	select {
	case paths := <-batches:
		assert.Equal(t, []string{a, b}, paths)
	case <-ctx.Done():
		t.Fatal("no change batch delivered")
	}

	cancel()
	assert.NoError(t, <-done)
}

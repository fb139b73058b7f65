package inifile

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentSaveSamePath verifies that saves from two handles bound to
// the same path are strictly serialized: the final file is one handle's
// complete output, never an interleaved mixture.
func TestConcurrentSaveSamePath(t *testing.T) {
	t.Parallel()

	td := t.TempDir()
	path := filepath.Join(td, "shared.ini")

	a, err := Load(path, UTF8)
	require.NoError(t, err)
	defer a.Close() //nolint:errcheck

	b, err := Load(path, UTF8)
	require.NoError(t, err)
	defer b.Close() //nolint:errcheck

	for i := range 32 {
		a.SetValue("A", "Key"+strconv.Itoa(i), "from-a")
		b.SetValue("B", "Key"+strconv.Itoa(i), "from-b")
	}

	var wg sync.WaitGroup
	for _, h := range []*File{a, b} {
		wg.Add(1)
		go func(h *File) {
			defer wg.Done()

			for range 50 {
				assert.NoError(t, h.Save())
			}
		}(h)
	}
	wg.Wait()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	wantA := "[A]\n"
	wantB := "[B]\n"
	for i := range 32 {
		wantA += "Key" + strconv.Itoa(i) + "=from-a\n"
		wantB += "Key" + strconv.Itoa(i) + "=from-b\n"
	}

	got := string(raw)
	if got != wantA && got != wantB {
		t.Fatalf("file is neither handle's complete output:\n%s", got)
	}
}

// TestConcurrentSaveDistinctPaths verifies that saves to different paths do
// not block or corrupt each other.
func TestConcurrentSaveDistinctPaths(t *testing.T) {
	t.Parallel()

	td := t.TempDir()

	var wg sync.WaitGroup
	paths := make([]string, 8)
	for i := range paths {
		paths[i] = filepath.Join(td, "config"+strconv.Itoa(i)+".ini")

		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			f, err := Load(paths[i], UTF8)
			if !assert.NoError(t, err) {
				return
			}
			defer f.Close() //nolint:errcheck

			f.SetValue("S", "Index", strconv.Itoa(i))
			assert.NoError(t, f.Save())
		}(i)
	}
	wg.Wait()

	for i, path := range paths {
		f, err := Load(path, UTF8)
		require.NoError(t, err)

		v, ok := f.GetValue("S", "Index")
		assert.True(t, ok)
		assert.Equal(t, strconv.Itoa(i), v)

		require.NoError(t, f.Close())
	}
}

// TestConcurrentLoadSamePath verifies that concurrent loads of one file are
// serialized and each sees a complete document.
func TestConcurrentLoadSamePath(t *testing.T) {
	t.Parallel()

	td := t.TempDir()
	path := filepath.Join(td, "shared.ini")

	seed, err := Load(path, UTF8)
	require.NoError(t, err)
	seed.SetValue("S", "K", "v")
	require.NoError(t, seed.Save())
	require.NoError(t, seed.Close())

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			f, err := Load(path, UTF8)
			if !assert.NoError(t, err) {
				return
			}
			defer f.Close() //nolint:errcheck

			v, ok := f.GetValue("S", "K")
			assert.True(t, ok)
			assert.Equal(t, "v", v)
		}()
	}
	wg.Wait()
}

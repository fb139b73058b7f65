package inifile

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func benchInput() string {
	return "; settings\n[Database]\nHost=localhost\nPort=5432\nName=\"my db\"\n\n[Logging]\nLevel=debug\nFile=/var/log/app.log\n"
}

func BenchmarkLoad(b *testing.B) {
	td := b.TempDir()
	path := filepath.Join(td, "settings.ini")

	if err := os.WriteFile(path, []byte(benchInput()), 0o644); err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		f, err := Load(path, UTF8)
		if err != nil {
			b.Fatal(err)
		}
		if f.IsEmpty() {
			b.Fatal("empty config")
		}
		if err := f.Close(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGetValue(b *testing.B) {
	f := New()
	f.SetValue("Database", "Host", "localhost")
	f.SetValue("Database", "Port", "5432")

	for b.Loop() {
		if _, ok := f.GetValue("Database", "Host"); !ok {
			b.Fatal("missing key")
		}
	}
}

func BenchmarkSetValue(b *testing.B) {
	f := New()

	b.ResetTimer()

	for i := range b.N {
		f.SetValue("Database", "Host", strconv.Itoa(i))
	}
}

func BenchmarkSave(b *testing.B) {
	td := b.TempDir()
	path := filepath.Join(td, "settings.ini")

	g, err := Load(path, UTF8)
	if err != nil {
		b.Fatal(err)
	}
	defer g.Close() //nolint:errcheck

	for i := range 16 {
		g.SetValue("S", "Key"+strconv.Itoa(i), "value")
	}

	b.ResetTimer()

	for b.Loop() {
		if err := g.Save(); err != nil {
			b.Fatal(err)
		}
	}
}

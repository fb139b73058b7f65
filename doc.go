// Package inifile implements an in-memory model and persistence layer for INI
// configuration files: sections, key-value pairs, section comments, per-key
// comments, quoted values and a pluggable text encoding. Files are loaded
// whole, mutated in memory and written back in a canonical layout while
// keeping the comments attached to the structure.
//
// The format is deliberately small. Section headers are [Name] lines, entries
// are split on the first '=' with whitespace trimmed on both sides, and a
// value fully wrapped in one pair of double quotes has them stripped on read.
// Comment lines start with ';', '#' or '/'. Lines that match none of these
// are silently skipped, never an error.
//
// # Usage
//
// Load a file (a missing file yields an empty document, so "create on first
// save" works naturally), mutate it and write it back:
//
//	f, err := inifile.Load("app/settings.ini", inifile.ShiftJIS)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer f.Close()
//
//	host, ok := f.GetValue("Database", "Host")
//	if !ok {
//		f.SetValue("Database", "Host", "localhost")
//	}
//	f.SetQuotedValue("Database", "Name", "my db")
//	if err := f.Save(); err != nil {
//		log.Fatal(err)
//	}
//
// # Comments
//
// Two kinds of comments are modeled. Section comments are raw lines rendered
// immediately before a section header; add them with SetComment (or
// SetCommentWithPrefix for '#' or '//' delimiters). Key comments are attached
// to an existing entry with AddKeyComment and always render as "; <comment>"
// before the key line, regardless of the delimiter originally used — saving
// normalizes them.
//
// Comment lines found before the first section header of a source file have
// no section to attach to and are dropped on parse.
//
// # Encodings
//
// The text codec is an injected golang.org/x/text encoding.Encoding. The
// default is ShiftJIS, matching the legacy Windows tooling these files tend
// to come from; pass inifile.UTF8 (or any other codec) to override.
//
// # Concurrency
//
// Load and Save against the same path are serialized across all handles in
// the process by a reference-counted per-path lock; operations on different
// paths never block each other. Call Close when done with a handle to
// release its entry in the lock registry. A single handle is not safe for
// concurrent mutation from multiple goroutines.
//
// # Error handling
//
// Probing for missing data is not an error: GetValue, RemoveKey,
// RemoveSection and RemoveComment report absence through their return
// values. Use errors.Is to detect the real failure cases:
//
//	if err := f.Save(); err != nil {
//		if errors.Is(err, inifile.ErrNoPath) {
//			// bind a path with SaveTo first
//		}
//	}
//
//	if err := f.AddKeyComment("Misc", "Key", "note"); err != nil {
//		if errors.Is(err, inifile.ErrNotFound) {
//			// create the key before commenting it
//		}
//	}
//
// # Known limitations
//
// * No nested sections, arrays, multi-line values or duplicate keys
// * Saving always produces the canonical layout; original whitespace and
//   blank-line placement are not preserved
// * Locking is per-process only; concurrent writers in different processes
//   are not coordinated
package inifile

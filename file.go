package inifile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopasspw/gopass/pkg/debug"
	"golang.org/x/text/encoding"
)

// File represents one INI file as a mutable in-memory document.
//
// File handles reading and writing a single file while preserving the
// comments attached to its sections and keys. Serialization always produces
// the canonical layout (see serializeDocument); the original byte layout is
// not retained.
//
// Fields:
// - path: File path this handle is bound to ("" until Load or SaveTo)
// - enc: Text codec used for reading and writing (ShiftJIS by default)
// - doc: The owned document model, never shared with another handle
// - lock: Reference-counted per-path lock shared with other handles on the same path
//
// Load and Save on the same path from different handles are serialized by a
// process-wide per-path lock. The in-memory mutation methods take no lock:
// the document is owned exclusively by this handle, but a single handle is
// not safe for concurrent use from multiple goroutines. Callers sharing one
// handle must provide their own synchronization.
//
// Typical usage:
//
//	f, err := inifile.Load("settings.ini", inifile.ShiftJIS)
//	if err != nil { ... }
//	defer f.Close()
//	v, ok := f.GetValue("Database", "Host")
//	f.SetValue("Database", "Port", "5432")
//	if err := f.Save(); err != nil { ... }
type File struct {
	path string
	enc  encoding.Encoding
	doc  *document
	lock *pathLock
}

// New returns an empty unbound handle using the default encoding. Bind it
// to a file with Load or SaveTo.
func New() *File {
	return &File{
		enc: ShiftJIS,
		doc: newDocument(),
	}
}

// Load reads and parses the file at path into a new handle. A missing file
// is not an error: the handle starts with an empty document and the file is
// created on the first Save. A nil encoding selects ShiftJIS.
func Load(path string, enc encoding.Encoding) (*File, error) {
	f := New()
	if err := f.Load(path, enc); err != nil {
		f.Close() //nolint:errcheck

		return nil, err
	}

	return f, nil
}

// Parse builds an unbound handle from already-decoded text. It never fails;
// unrecognized lines are silently skipped.
func Parse(r io.Reader) *File {
	f := New()

	lines := make([]string, 0, 128)
	s := bufio.NewScanner(r)
	for s.Scan() {
		lines = append(lines, s.Text())
	}

	doc, stats := parseLines(lines)
	f.doc = doc

	debug.V(3).Log("parsed %d sections, %d entries, %d comments (%d lines ignored)",
		stats.sections, stats.entries, stats.comments, stats.ignored)

	return f
}

// Load re-binds the handle to path and replaces its document with the
// parsed file contents. A missing file yields an empty document. A nil
// encoding selects ShiftJIS.
func (f *File) Load(path string, enc encoding.Encoding) error {
	f.rebind(path)
	f.enc = defaultEncoding(enc)

	f.lock.acquire()
	defer f.lock.release()

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		debug.V(1).Log("config %s does not exist, starting empty", path)
		f.doc = newDocument()

		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config from %s: %w", path, err)
	}

	text, err := decodeText(raw, f.enc)
	if err != nil {
		return fmt.Errorf("failed to read config from %s: %w", path, err)
	}

	doc, stats := parseLines(strings.Split(text, "\n"))
	f.doc = doc

	debug.V(2).Log("loaded %s: %d sections, %d entries (%d lines ignored)",
		path, stats.sections, stats.entries, stats.ignored)

	return nil
}

// Save writes the document to the bound path, creating missing parent
// directories. It fails with ErrNoPath if the handle was never bound.
func (f *File) Save() error {
	if f.path == "" {
		return ErrNoPath
	}

	return f.flush()
}

// SaveTo re-binds the handle to path and writes the document there.
// Subsequent Save calls target the new path.
func (f *File) SaveTo(path string) error {
	f.rebind(path)

	return f.Save()
}

// Close releases this handle's reference on its path lock. Using the handle
// for further Load or Save calls after Close is invalid; the in-memory
// accessors keep working.
func (f *File) Close() error {
	releasePathLock(f.path, f.lock)
	f.lock = nil

	return nil
}

// rebind swaps the handle's registry reference over to a new path. The old
// path's entry is released, possibly dropping it from the registry.
func (f *File) rebind(path string) {
	if path == f.path && f.lock != nil {
		return
	}

	pl := acquirePathLock(path)
	releasePathLock(f.path, f.lock)
	f.path = path
	f.lock = pl
}

func (f *File) flush() error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w %q for %q: %w", ErrCreateConfigDir, dir, f.path, err)
	}

	f.lock.acquire()
	defer f.lock.release()

	raw, err := encodeText(strings.Join(serializeDocument(f.doc), "\n"), f.enc)
	if err != nil {
		return fmt.Errorf("%w to %q: %w", ErrWriteConfig, f.path, err)
	}

	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		return fmt.Errorf("%w to %q: %w", ErrWriteConfig, f.path, err)
	}

	debug.V(1).Log("wrote config to %s", f.path)

	return nil
}

// GetValue returns the value stored for key in section. A missing section
// or key is signaled by the second return value, not an error.
func (f *File) GetValue(section, key string) (string, bool) {
	return f.doc.get(section, key)
}

// SetValue stores a key-value pair, creating the section on first use.
// Overwriting an existing key discards any comment attached to it via
// AddKeyComment.
func (f *File) SetValue(section, key, value string) {
	debug.V(3).Log("set [%s] %s = %s", section, key, value)

	f.doc.set(section, key, value)
}

// SetQuotedValue stores value wrapped in a pair of double quotes. The
// quotes become part of the stored data: GetValue returns them, and Save
// writes them out verbatim.
func (f *File) SetQuotedValue(section, key, value string) {
	f.SetValue(section, key, `"`+value+`"`)
}

// RemoveKey deletes key from section and reports whether it was present.
// With removeEmptySection set, deleting the last key also removes the
// section and its comments.
func (f *File) RemoveKey(section, key string, removeEmptySection bool) bool {
	debug.V(3).Log("remove [%s] %s (prune: %t)", section, key, removeEmptySection)

	return f.doc.removeKey(section, key, removeEmptySection)
}

// RemoveSection deletes a whole section including its comment lines and
// reports whether it was present.
func (f *File) RemoveSection(section string) bool {
	debug.V(3).Log("remove section [%s]", section)

	return f.doc.removeSection(section)
}

// AddKeyComment attaches a comment to an existing key, replacing any
// previous one. On Save it is rendered as "; <comment>" on the line before
// the key. Unlike the other lookup methods this fails with ErrNotFound when
// the section or key does not exist.
func (f *File) AddKeyComment(section, key, comment string) error {
	if !f.doc.setEntryComment(section, key, comment) {
		return fmt.Errorf("%w: [%s] %s", ErrNotFound, section, key)
	}

	return nil
}

// SetComment appends a ";"-prefixed comment line to the lines rendered
// before the section header. The section itself need not exist yet: the
// comment is held and only written once the section is created (a comment
// for a section that never materializes is silently dropped on Save).
func (f *File) SetComment(section, comment string) {
	f.SetCommentWithPrefix(section, comment, ";")
}

// SetCommentWithPrefix is SetComment with an explicit delimiter, e.g. "#"
// or "//". Note that RemoveComment only matches ";"-prefixed lines.
func (f *File) SetCommentWithPrefix(section, comment, prefix string) {
	f.doc.appendComment(section, prefix+comment)
}

// RemoveComment removes the first section comment line that exactly equals
// ";" + comment, reporting whether one was found. Comments added with a
// different prefix are not matched.
func (f *File) RemoveComment(section, comment string) bool {
	return f.doc.removeCommentLine(section, ";"+comment)
}

// ClearAllComments drops the section comments of every section. Per-key
// comments set with AddKeyComment are kept.
func (f *File) ClearAllComments() {
	f.doc.clearComments()
}

// Sections returns the section names in insertion order.
func (f *File) Sections() []string {
	return append([]string(nil), f.doc.names...)
}

// Keys returns the key names of a section in insertion order, or nil if the
// section does not exist.
func (f *File) Keys(section string) []string {
	return f.doc.keysOf(section)
}

// HasSection reports whether the section exists.
func (f *File) HasSection(section string) bool {
	_, ok := f.doc.sections[section]

	return ok
}

// IsEmpty returns true if the handle holds no sections.
func (f *File) IsEmpty() bool {
	return f == nil || f.doc == nil || len(f.doc.names) == 0
}

// Path returns the currently bound file path, or "" for an unbound handle.
func (f *File) Path() string {
	return f.path
}

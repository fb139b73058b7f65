package inifile

import "slices"

// entry is one key-value pair within a section. The comment, if any, is
// rendered as "; <comment>" on the line before the key.
type entry struct {
	value   string
	comment string
}

// iniSection holds the entries of one [name] block. Keys are unique and
// their insertion order is preserved for serialization.
type iniSection struct {
	keys    []string
	entries map[string]*entry
}

// document is the in-memory representation of one INI file: sections in
// insertion order plus the comment lines rendered before each section
// header. Go maps do not preserve insertion order, so both levels keep an
// explicit key slice next to the lookup map.
type document struct {
	names    []string
	sections map[string]*iniSection
	comments map[string][]string
}

func newDocument() *document {
	return &document{
		sections: make(map[string]*iniSection, 8),
		comments: make(map[string][]string, 4),
	}
}

// ensure returns the section with the given name, creating it at the end of
// the section order on first use.
func (d *document) ensure(name string) *iniSection {
	if s, ok := d.sections[name]; ok {
		return s
	}

	s := &iniSection{
		entries: make(map[string]*entry, 8),
	}
	d.sections[name] = s
	d.names = append(d.names, name)

	return s
}

// set stores a key-value pair, creating the section if needed. Overwriting
// an existing key discards any comment previously attached to it.
func (d *document) set(name, key, value string) {
	s := d.ensure(name)
	if e, ok := s.entries[key]; ok {
		e.value = value
		e.comment = ""

		return
	}

	s.entries[key] = &entry{value: value}
	s.keys = append(s.keys, key)
}

func (d *document) get(name, key string) (string, bool) {
	s, ok := d.sections[name]
	if !ok {
		return "", false
	}

	e, ok := s.entries[key]
	if !ok {
		return "", false
	}

	return e.value, true
}

// removeKey deletes a key from a section. With prune set, a section left
// empty is removed entirely, together with its comment lines.
func (d *document) removeKey(name, key string, prune bool) bool {
	s, ok := d.sections[name]
	if !ok {
		return false
	}

	if _, ok := s.entries[key]; !ok {
		return false
	}

	delete(s.entries, key)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == key })

	if prune && len(s.keys) == 0 {
		d.removeSection(name)
	}

	return true
}

// removeSection deletes a section and its comment lines. Comment lines for
// a section that never existed are left untouched.
func (d *document) removeSection(name string) bool {
	if _, ok := d.sections[name]; !ok {
		return false
	}

	delete(d.sections, name)
	delete(d.comments, name)
	d.names = slices.DeleteFunc(d.names, func(n string) bool { return n == name })

	return true
}

// setEntryComment attaches a comment to an existing key, replacing any
// previous one. It reports whether the section and key exist.
func (d *document) setEntryComment(name, key, comment string) bool {
	s, ok := d.sections[name]
	if !ok {
		return false
	}

	e, ok := s.entries[key]
	if !ok {
		return false
	}

	e.comment = comment

	return true
}

// appendComment adds one raw comment line (delimiter included) to the lines
// rendered before the section header. The section itself need not exist.
func (d *document) appendComment(name, line string) {
	d.comments[name] = append(d.comments[name], line)
}

// removeCommentLine removes the first comment line exactly matching line.
func (d *document) removeCommentLine(name, line string) bool {
	cs, ok := d.comments[name]
	if !ok {
		return false
	}

	i := slices.Index(cs, line)
	if i < 0 {
		return false
	}

	d.comments[name] = slices.Delete(cs, i, i+1)

	return true
}

// clearComments drops every section comment line. Per-key entry comments
// are not affected.
func (d *document) clearComments() {
	d.comments = make(map[string][]string, 4)
}

func (d *document) keysOf(name string) []string {
	s, ok := d.sections[name]
	if !ok {
		return nil
	}

	return slices.Clone(s.keys)
}

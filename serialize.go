package inifile

// serializeDocument renders the canonical text layout: sections in
// insertion order, each as its comment lines, the [name] header, then the
// keys in insertion order, followed by one blank line (also after the last
// section). Entry comments are always rendered with a ";" delimiter, no
// matter how they were originally written. Values are emitted as stored;
// quoting is never re-applied.
func serializeDocument(d *document) []string {
	lines := make([]string, 0, 64)

	for _, name := range d.names {
		lines = append(lines, d.comments[name]...)
		lines = append(lines, "["+name+"]")

		s := d.sections[name]
		for _, key := range s.keys {
			e := s.entries[key]
			if e.comment != "" {
				lines = append(lines, "; "+e.comment)
			}
			lines = append(lines, key+"="+e.value)
		}

		lines = append(lines, "")
	}

	return lines
}

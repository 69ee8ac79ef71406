package index

// ReleaseStats reports how many nodes a Release call tore down. Each owned
// node is counted exactly once, which makes "everything was freed, nothing
// twice" observable under a garbage collector.
type ReleaseStats struct {
	Sections int
	Fields   int
}

// Release tears down the entire owned tree: every section in chain order,
// each section's fields before the section itself. Node text is scrubbed and
// the ownership links are cut, so memory retained only through the context
// becomes collectable and any pointer a caller kept reads as empty.
//
// Releasing an empty context is a no-op and returns zero stats. After a
// Release the context must not be repopulated until Reset is called.
func (c *ParseContext) Release() ReleaseStats {
	var stats ReleaseStats

	// Detach the chain up front; the walk below is its sole owner. The
	// iterative walk reads nothing from a node after scrubbing it, and a
	// long chain costs no call-stack depth.
	sections := c.sections
	c.sections = nil

	for i, s := range sections {
		stats.Fields += releaseFields(s)
		s.Name = ""
		sections[i] = nil
		stats.Sections++
	}
	return stats
}

// releaseFields scrubs a section's field chain front to back and cuts the
// section's ownership of it, returning the number of fields released.
func releaseFields(s *Section) int {
	fields := s.fields
	s.fields = nil

	for i, f := range fields {
		f.Key, f.Subkey, f.Value = "", "", ""
		fields[i] = nil
	}
	return len(fields)
}

// Reset returns the context to the canonical empty state so it may be
// populated again. On a still-populated context it abandons the owned chain
// without scrubbing it; use Release for an orderly teardown.
func (c *ParseContext) Reset() {
	c.sections = nil
}

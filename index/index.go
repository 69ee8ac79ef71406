// Package index holds the in-memory representation of a parsed
// configuration index: an ordered collection of named sections, each holding
// an ordered collection of key/subkey/value fields. A textual-index parser
// populates it through the Append/Prepend calls; lookup layers traverse it;
// the owning caller tears the whole tree down with Release.
package index

// Field is a single key/subkey/value entry within a section.
// Subkey is optional; the empty string means the key has no subkey.
type Field struct {
	Key    string
	Subkey string
	Value  string
}

// Section is a named group of fields. It is the exclusive owner of every
// field created under it; fields keep their insertion order.
type Section struct {
	Name string

	fields []*Field
}

// AppendField creates a field and links it at the end of this section's
// chain. The field is allocated here, so it can never end up owned by two
// sections.
func (s *Section) AppendField(key, subkey, value string) *Field {
	f := &Field{Key: key, Subkey: subkey, Value: value}
	s.fields = append(s.fields, f)
	return f
}

// PrependField creates a field and links it at the head of this section's
// chain. Which end the parser links at is its choice; traversal follows
// whatever order it established.
func (s *Section) PrependField(key, subkey, value string) *Field {
	f := &Field{Key: key, Subkey: subkey, Value: value}
	s.fields = append([]*Field{f}, s.fields...)
	return f
}

// Fields returns this section's field chain in traversal order. The slice is
// the section's own chain; callers must not modify it.
func (s *Section) Fields() []*Field {
	return s.fields
}

// NumFields returns the length of this section's field chain.
func (s *Section) NumFields() int {
	return len(s.fields)
}

// ParseContext is the top-level owning handle for one parsed index.
// Ownership is strictly tree-shaped: the context owns its sections, each
// section owns its fields, and nothing is shared between contexts.
//
// Lifecycle: New → populate → Release, exactly once. A released context must
// not be repopulated without an intervening Reset.
type ParseContext struct {
	sections []*Section
}

// New returns the canonical empty context, ready for the parser to populate.
func New() *ParseContext {
	return &ParseContext{}
}

// AppendSection creates a section and links it at the end of the chain.
func (c *ParseContext) AppendSection(name string) *Section {
	s := &Section{Name: name}
	c.sections = append(c.sections, s)
	return s
}

// PrependSection creates a section and links it at the head of the chain.
func (c *ParseContext) PrependSection(name string) *Section {
	s := &Section{Name: name}
	c.sections = append([]*Section{s}, c.sections...)
	return s
}

// Sections returns the section chain in traversal order. The slice is the
// context's own chain; callers must not modify it.
func (c *ParseContext) Sections() []*Section {
	return c.sections
}

// NumSections returns the length of the section chain.
func (c *ParseContext) NumSections() int {
	return len(c.sections)
}

package example

// Record is a single usage example: a display name and
// the command invocation it demonstrates. Text may span
// several lines.
type Record struct {
	// Name is the human readable description.
	Name string `json:"name" yaml:"name"`
	// Text is the shell-like command invocation.
	Text string `json:"text" yaml:"text"`
	// Crafted marks an example that was hand tuned
	// by the generator. Nil when the field is absent.
	Crafted *bool `json:"crafted,omitempty" yaml:"crafted,omitempty"`
}

// IsCrafted reports whether the record carries
// crafted=true.
func (r Record) IsCrafted() bool {
	return r.Crafted != nil && *r.Crafted
}

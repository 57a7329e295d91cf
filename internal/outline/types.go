package outline

// Outline is a parsed signage document: an ordered list of content blocks
// plus identifying metadata. Block order is append order downstream; the
// parser never reorders.
type Outline struct {
	Version string  `yaml:"version" validate:"required,outline_version"`
	Name    string  `yaml:"name" validate:"required,min=1,max=100"`
	Blocks  []Block `yaml:"blocks" validate:"required,min=1,dive"`
}

// Block is one outline record. Text carries the payload for title, header
// and paragraph blocks; Items carries list entries. The validator enforces
// that each kind uses the matching payload field.
type Block struct {
	Kind  string   `yaml:"kind" validate:"required,oneof=title header paragraph list"`
	Text  string   `yaml:"text,omitempty"`
	Items []string `yaml:"items,omitempty"`
}

package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes every top-level block a project file may contain.
type fileRoot struct {
	Locals   []*localsBlock  `hcl:"locals,block"`
	Programs []*programBlock `hcl:"program,block"`
}

// localsBlock is evaluated attribute by attribute, so its body is kept raw.
type localsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// programBlock is one `program "<name>" { ... }` block. Attributes are kept as
// expressions and evaluated once all locals are known.
type programBlock struct {
	Name       string         `hcl:"name,label"`
	Source     hcl.Expression `hcl:"source,optional"`
	SourceFile hcl.Expression `hcl:"source_file,optional"`
	Output     hcl.Expression `hcl:"output,optional"`
}

// parsedFile pairs a decoded file with its path.
type parsedFile struct {
	path string
	root fileRoot
}

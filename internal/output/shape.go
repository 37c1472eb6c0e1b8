package output

// Shape names an output layout.
type Shape string

const (
	ShapeMirroredTree Shape = "mirrored-tree"
	ShapeBundle       Shape = "single-bundle"
	ShapeSymlink      Shape = "symlink"
)

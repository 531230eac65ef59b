package geom

// Object is a named node in a mesh tree. It owns a set of faces in local
// coordinates, a local position and rotation relative to its parent, and an
// ordered list of child objects. The tree is strictly hierarchical: children
// never reference their parent, so there are no cycles.
//
// Objects are built once by a generation layer and read by the renderer;
// none of the renderer entry points mutate them.
type Object struct {
	Name     string
	Position Vector
	Rotation Rotation

	faces    []Face
	children []*Object
}

// NewObject creates an empty object node.
func NewObject(name string, position Vector, rotation Rotation) *Object {
	return &Object{Name: name, Position: position, Rotation: rotation}
}

// AddFace validates and appends a face built from the given boundary points.
func (o *Object) AddFace(points ...Vector) error {
	f, err := NewFace(points...)
	if err != nil {
		return err
	}
	o.faces = append(o.faces, f)
	return nil
}

// Attach appends a child object.
func (o *Object) Attach(child *Object) {
	o.children = append(o.children, child)
}

// Faces returns the object's own faces, in local coordinates.
func (o *Object) Faces() []Face {
	return o.faces
}

// Children returns the child objects in insertion order.
func (o *Object) Children() []*Object {
	return o.children
}

// TransformVector maps a point from the object's local frame into its
// parent's frame: rotate by the object's rotation, then translate by its
// position.
func (o *Object) TransformVector(v Vector) Vector {
	return v.Rotate(o.Rotation).Add(o.Position)
}

// TransformLine maps a line from the object's local frame into its parent's
// frame.
func (o *Object) TransformLine(l Line) Line {
	return l.Rotate(o.Rotation).Translate(o.Position)
}

// TransformFace maps a face from the object's local frame into its parent's
// frame.
func (o *Object) TransformFace(f Face) Face {
	return f.Rotate(o.Rotation).Translate(o.Position)
}

// Walk visits the object and its descendants pre-order (self before
// children) and reports each node's depth below the receiver.
func (o *Object) Walk(visit func(obj *Object, depth int)) {
	o.walk(visit, 0)
}

func (o *Object) walk(visit func(obj *Object, depth int), depth int) {
	visit(o, depth)
	for _, child := range o.children {
		child.walk(visit, depth+1)
	}
}

package math

// ContainmentType is the verdict of a containment query between two volumes.
type ContainmentType int

const (
	// Disjoint means the volumes do not touch.
	Disjoint ContainmentType = iota
	// Contains means the second volume lies entirely inside the first.
	Contains
	// Intersects means the volumes partially overlap.
	Intersects
)

func (c ContainmentType) String() string {
	switch c {
	case Disjoint:
		return "Disjoint"
	case Contains:
		return "Contains"
	case Intersects:
		return "Intersects"
	default:
		return "ContainmentType(?)"
	}
}

// PlaneIntersectionType classifies a point or volume against a plane.
type PlaneIntersectionType int

const (
	// Front is the side the plane normal points to.
	Front PlaneIntersectionType = iota
	// Back is the side opposite the normal.
	Back
	// Intersecting means the plane passes through the volume.
	Intersecting
)

func (p PlaneIntersectionType) String() string {
	switch p {
	case Front:
		return "Front"
	case Back:
		return "Back"
	case Intersecting:
		return "Intersecting"
	default:
		return "PlaneIntersectionType(?)"
	}
}

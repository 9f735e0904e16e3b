package game

import (
	"hurricane/utils"
	"hurricane/world"
)

// Visited is an immutable set of vertices some agent has already stood on.
// A House in the set has had its people claimed.
type Visited struct {
	tags map[world.Tag]struct{}
}

func NewVisited(tags ...world.Tag) Visited {
	v := Visited{tags: make(map[world.Tag]struct{}, len(tags))}
	for _, tag := range tags {
		v.tags[tag] = struct{}{}
	}
	return v
}

func (v Visited) Contains(tag world.Tag) bool {
	_, ok := v.tags[tag]
	return ok
}

// With returns a set that also contains tag. The receiver is left untouched.
func (v Visited) With(tag world.Tag) Visited {
	if v.Contains(tag) {
		return v
	}
	tags := make(map[world.Tag]struct{}, len(v.tags)+1)
	for t := range v.tags {
		tags[t] = struct{}{}
	}
	tags[tag] = struct{}{}
	return Visited{tags: tags}
}

func (v Visited) Len() int {
	return len(v.tags)
}

// Tags returns the members in ascending order.
func (v Visited) Tags() []world.Tag {
	return utils.SortedKeys(v.tags)
}

func (v Visited) Equal(other Visited) bool {
	if v.Len() != other.Len() {
		return false
	}
	for t := range v.tags {
		if !other.Contains(t) {
			return false
		}
	}
	return true
}

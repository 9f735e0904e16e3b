package world

import (
	"errors"
	"fmt"
	"sort"
)

// Tag identifies a vertex. Tags are positive.
type Tag int

type Kind int

const (
	House Kind = iota
	Shelter
)

func (k Kind) String() string {
	if k == Shelter {
		return "Shelter"
	}
	return "House"
}

var ErrNoSuchEdge = errors.New("no such edge")

// World is the read-only view of the graph consumed by the search.
type World interface {
	Adjacent(tag Tag) []Tag
	EdgeWeight(a, b Tag) (float64, error)
	IsHouse(tag Tag) bool
	IsShelter(tag Tag) bool
	PayloadAt(tag Tag) int
	Deadline() float64
	SlowdownFactor() float64
}

type Vertex struct {
	Tag     Tag
	Kind    Kind
	Payload int // People waiting, Houses only
}

type Edge struct {
	A, B    Tag
	Weight  float64
	Blocked bool
}

func (e *Edge) connects(a, b Tag) bool {
	return (e.A == a && e.B == b) || (e.A == b && e.B == a)
}

// Graph is the evacuation map: vertices, weighted edges and the global deadline.
type Graph struct {
	Vertices map[Tag]*Vertex
	Edges    []*Edge
	deadline float64
	k        float64
}

// NewGraph creates an empty graph with the given deadline and slowdown factor.
func NewGraph(deadline, k float64) *Graph {
	return &Graph{
		Vertices: make(map[Tag]*Vertex),
		deadline: deadline,
		k:        k,
	}
}

// AddHouse adds (or replaces) a House holding payload people.
func (g *Graph) AddHouse(tag Tag, payload int) {
	g.Vertices[tag] = &Vertex{Tag: tag, Kind: House, Payload: payload}
}

// AddShelter adds (or replaces) a Shelter.
func (g *Graph) AddShelter(tag Tag) {
	g.Vertices[tag] = &Vertex{Tag: tag, Kind: Shelter}
}

// AddEdge adds an undirected edge between two existing vertices.
func (g *Graph) AddEdge(a, b Tag, weight float64) error {
	if _, ok := g.Vertices[a]; !ok {
		return fmt.Errorf("add edge %d-%d: unknown vertex %d", a, b, a)
	}
	if _, ok := g.Vertices[b]; !ok {
		return fmt.Errorf("add edge %d-%d: unknown vertex %d", a, b, b)
	}
	if weight <= 0 {
		return fmt.Errorf("add edge %d-%d: weight must be positive, got %v", a, b, weight)
	}
	g.Edges = append(g.Edges, &Edge{A: a, B: b, Weight: weight})
	return nil
}

// Block marks the edge between a and b as impassable.
func (g *Graph) Block(a, b Tag) error {
	e := g.edge(a, b)
	if e == nil {
		return fmt.Errorf("block %d-%d: %w", a, b, ErrNoSuchEdge)
	}
	e.Blocked = true
	return nil
}

func (g *Graph) edge(a, b Tag) *Edge {
	for _, e := range g.Edges {
		if e.connects(a, b) {
			return e
		}
	}
	return nil
}

// Adjacent returns the neighbours of tag over unblocked edges, in ascending order.
func (g *Graph) Adjacent(tag Tag) []Tag {
	adjacent := []Tag{}
	for _, e := range g.Edges {
		if e.Blocked {
			continue
		}
		switch tag {
		case e.A:
			adjacent = appendUnique(adjacent, e.B)
		case e.B:
			adjacent = appendUnique(adjacent, e.A)
		}
	}
	sort.Slice(adjacent, func(i, j int) bool { return adjacent[i] < adjacent[j] })
	return adjacent
}

// appendUnique keeps parallel edges from producing duplicate neighbours.
func appendUnique(tags []Tag, tag Tag) []Tag {
	for _, t := range tags {
		if t == tag {
			return tags
		}
	}
	return append(tags, tag)
}

// EdgeWeight returns the base weight of the unblocked edge a-b.
func (g *Graph) EdgeWeight(a, b Tag) (float64, error) {
	e := g.edge(a, b)
	if e == nil || e.Blocked {
		return 0, fmt.Errorf("edge %d-%d: %w", a, b, ErrNoSuchEdge)
	}
	return e.Weight, nil
}

func (g *Graph) IsHouse(tag Tag) bool {
	v, ok := g.Vertices[tag]
	return ok && v.Kind == House
}

func (g *Graph) IsShelter(tag Tag) bool {
	v, ok := g.Vertices[tag]
	return ok && v.Kind == Shelter
}

// PayloadAt returns the people waiting at a House, 0 for anything else.
func (g *Graph) PayloadAt(tag Tag) int {
	if v, ok := g.Vertices[tag]; ok && v.Kind == House {
		return v.Payload
	}
	return 0
}

func (g *Graph) Deadline() float64 { return g.deadline }

func (g *Graph) SlowdownFactor() float64 { return g.k }

// Cost is the time to traverse u-v while carrying people:
// weight(u, v) * (1 + k*carried).
func Cost(w World, u, v Tag, carried int) (float64, error) {
	weight, err := w.EdgeWeight(u, v)
	if err != nil {
		return 0, err
	}
	return weight * (1 + w.SlowdownFactor()*float64(carried)), nil
}

package types

import "sort"

/*
SurfaceElement is one record from the surfaceelements section of a Netgen
neutral mesh file. The leading fields are carried through unexamined except
for BCNr, which groups elements into named material sets. Node ids are
1-based references into the points section.
*/
type SurfaceElement struct {
	Index  int // 1-based position in file order, fixes the element number in the output deck
	SurfNr int
	BCNr   int // material id
	DomIn  int
	DomOut int
	Nodes  []int
}

// Material maps a material id to the set name used in the output decks.
type Material struct {
	ID   int
	Name string
}

// NodeSet is an unordered collection of unique 1-based node ids.
type NodeSet map[int]struct{}

func (ns NodeSet) Add(ids ...int) {
	for _, id := range ids {
		ns[id] = struct{}{}
	}
}

func (ns NodeSet) Contains(id int) (found bool) {
	_, found = ns[id]
	return
}

// Sorted returns the member ids in ascending order for deterministic output.
func (ns NodeSet) Sorted() (ids []int) {
	ids = make([]int, 0, len(ns))
	for id := range ns {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return
}

// BCMAP collects boundary node sets keyed by edge segment tag.
type BCMAP map[int]NodeSet

// AddEdge adds both endpoint nodes of an edge segment to the set for tag.
func (bm BCMAP) AddEdge(tag, nodeA, nodeB int) {
	if _, ok := bm[tag]; !ok {
		bm[tag] = make(NodeSet)
	}
	bm[tag].Add(nodeA, nodeB)
}

// Tags returns the boundary tags in ascending order.
func (bm BCMAP) Tags() (tags []int) {
	tags = make([]int, 0, len(bm))
	for tag := range bm {
		tags = append(tags, tag)
	}
	sort.Ints(tags)
	return
}

// NodesOfMaterial unions the node ids of every element carrying matID.
func NodesOfMaterial(elements []SurfaceElement, matID int) (ns NodeSet) {
	ns = make(NodeSet)
	for _, e := range elements {
		if e.BCNr == matID {
			ns.Add(e.Nodes...)
		}
	}
	return
}

// ElementsOfMaterial lists the element numbers carrying matID, ascending.
// Element numbers follow file order, so no re-sort is needed.
func ElementsOfMaterial(elements []SurfaceElement, matID int) (elnums []int) {
	for _, e := range elements {
		if e.BCNr == matID {
			elnums = append(elnums, e.Index)
		}
	}
	return
}

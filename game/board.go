package game

import "sort"

// Board is the game board: a simple undirected graph over integer node
// IDs. Boards are write-once: build from an edge list, then query.
type Board struct {
	adjacency map[int]map[int]bool
	numEdges  int
}

// NewBoard builds a board from an edge list. Every endpoint becomes a
// node; duplicate edges are idempotent.
func NewBoard(edges [][2]int) *Board {
	b := &Board{adjacency: make(map[int]map[int]bool)}
	for _, e := range edges {
		b.addEdge(e[0], e[1])
	}
	return b
}

func (b *Board) addEdge(u, v int) {
	if b.adjacency[u] == nil {
		b.adjacency[u] = make(map[int]bool)
	}
	if b.adjacency[v] == nil {
		b.adjacency[v] = make(map[int]bool)
	}
	if !b.adjacency[u][v] {
		b.numEdges++
	}
	b.adjacency[u][v] = true
	b.adjacency[v][u] = true
}

// Neighbors returns the neighbours of node in ascending order. Unknown
// nodes have no neighbours.
func (b *Board) Neighbors(node int) []int {
	adjacent := b.adjacency[node]
	neighbors := make([]int, 0, len(adjacent))
	for n := range adjacent {
		neighbors = append(neighbors, n)
	}
	sort.Ints(neighbors)
	return neighbors
}

func (b *Board) HasNode(node int) bool {
	_, ok := b.adjacency[node]
	return ok
}

func (b *Board) HasEdge(u, v int) bool {
	return b.adjacency[u][v]
}

// Nodes returns all node IDs in ascending order.
func (b *Board) Nodes() []int {
	nodes := make([]int, 0, len(b.adjacency))
	for n := range b.adjacency {
		nodes = append(nodes, n)
	}
	sort.Ints(nodes)
	return nodes
}

func (b *Board) NumNodes() int { return len(b.adjacency) }

func (b *Board) NumEdges() int { return b.numEdges }

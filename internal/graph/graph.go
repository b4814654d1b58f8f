// Package graph derives the line-of-sight visibility graph over blank
// cells and the centrality ordering used by the move engine's
// tie-breaks.
package graph

import "github.com/glowgrid/akari/internal/board"

// Node is one blank cell. Nodes live in the Graph's arena and refer to
// each other by integer id, never by pointer.
type Node struct {
	ID        int
	Row       int
	Col       int
	Neighbors []int
	Degree    int
}

type Graph struct {
	Nodes  []Node
	idGrid [][]int // -1 for walls
}

// Build scans each blank cell's four rays; the first blank encountered
// before any wall becomes a neighbor. The result is an undirected simple
// graph that depends only on the wall layout, so it is rebuilt on new
// puzzles and never on bulb or mark changes.
func Build(b *board.Board) *Graph {
	g := &Graph{idGrid: make([][]int, b.Rows)}
	for r := 0; r < b.Rows; r++ {
		g.idGrid[r] = make([]int, b.Cols)
		for c := 0; c < b.Cols; c++ {
			g.idGrid[r][c] = -1
		}
	}
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.Grid[r][c].Kind != board.Blank {
				continue
			}
			id := len(g.Nodes)
			g.idGrid[r][c] = id
			g.Nodes = append(g.Nodes, Node{ID: id, Row: r, Col: c})
		}
	}
	for i := range g.Nodes {
		n := &g.Nodes[i]
		for _, d := range board.Directions {
			nr, nc := n.Row+d.Row, n.Col+d.Col
			for b.InBounds(nr, nc) {
				if b.Grid[nr][nc].IsWall() {
					break
				}
				if b.Grid[nr][nc].Kind == board.Blank {
					g.addEdge(n, g.idGrid[nr][nc])
					break
				}
				nr += d.Row
				nc += d.Col
			}
		}
	}
	return g
}

func (g *Graph) addEdge(n *Node, neighbor int) {
	for _, existing := range n.Neighbors {
		if existing == neighbor {
			return
		}
	}
	n.Neighbors = append(n.Neighbors, neighbor)
	n.Degree++
}

// NodeAt returns the node id for (r, c), or -1 if the cell is a wall.
func (g *Graph) NodeAt(r int, c int) int {
	return g.idGrid[r][c]
}

func (g *Graph) Size() int {
	return len(g.Nodes)
}

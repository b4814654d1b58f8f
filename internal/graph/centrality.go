package graph

// Centrality accumulates, for every BFS source, the number of shortest
// paths from that source reaching each other node. This is a raw
// path-count metric, not normalized betweenness; it only ever feeds
// tie-breaks, so the exact formula is kept for reproducibility rather
// than corrected to the textbook definition.
func (g *Graph) Centrality() []float64 {
	scores := make([]float64, len(g.Nodes))
	dist := make([]int, len(g.Nodes))
	paths := make([]int64, len(g.Nodes))
	queue := make([]int, 0, len(g.Nodes))

	for source := range g.Nodes {
		for i := range dist {
			dist[i] = -1
			paths[i] = 0
		}
		dist[source] = 0
		paths[source] = 1
		queue = append(queue[:0], source)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nb := range g.Nodes[cur].Neighbors {
				if dist[nb] == -1 {
					dist[nb] = dist[cur] + 1
					paths[nb] = paths[cur]
					queue = append(queue, nb)
				} else if dist[nb] == dist[cur]+1 {
					paths[nb] += paths[cur]
				}
			}
		}
		for i := range g.Nodes {
			if i != source {
				scores[i] += float64(paths[i])
			}
		}
	}
	return scores
}

// Ranking is a strict total order over nodes: ascending centrality, ties
// resolved by the stable sort preserving node-id order.
type Ranking struct {
	Scores []float64
	Order  []int // node ids, ascending centrality
	Rank   []int // Rank[id] = position of id in Order
}

// Rank computes centrality and sorts node ids with an explicit merge
// sort. Merge sort is used deliberately: its stability is what makes the
// rank order reproducible when scores tie.
func (g *Graph) RankNodes() *Ranking {
	rk := &Ranking{
		Scores: g.Centrality(),
		Order:  make([]int, len(g.Nodes)),
		Rank:   make([]int, len(g.Nodes)),
	}
	for i := range rk.Order {
		rk.Order[i] = i
	}
	mergeSortByScore(rk.Order, rk.Scores)
	for pos, id := range rk.Order {
		rk.Rank[id] = pos
	}
	return rk
}

func mergeSortByScore(ids []int, scores []float64) {
	if len(ids) <= 1 {
		return
	}
	mid := len(ids) / 2
	left := append([]int(nil), ids[:mid]...)
	right := append([]int(nil), ids[mid:]...)
	mergeSortByScore(left, scores)
	mergeSortByScore(right, scores)
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if scores[left[i]] <= scores[right[j]] {
			ids[k] = left[i]
			i++
		} else {
			ids[k] = right[j]
			j++
		}
		k++
	}
	for i < len(left) {
		ids[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		ids[k] = right[j]
		j++
		k++
	}
}

package network

import (
	"container/heap"
	"pickup-route-service/internal/domain"
)

// dijkstra computes the shortest distance from source to every city it can
// reach, together with each reached city's predecessor on that path.
// Unreached cities are absent from both maps.
//
// It uses the lazy decrease-key strategy: improved distances are pushed as new
// queue entries and stale entries are skipped when popped.
func (n *RoadNetwork) dijkstra(source domain.City) (map[domain.City]int, map[domain.City]domain.City) {
	dist := make(map[domain.City]int, len(n.adjacency))
	prev := make(map[domain.City]domain.City, len(n.adjacency))
	dist[source] = 0

	pq := make(cityQueue, 0, len(n.adjacency))
	heap.Push(&pq, &queueItem{city: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*queueItem)
		if item.dist > dist[item.city] {
			continue
		}

		for neighbor, w := range n.adjacency[item.city] {
			candidate := item.dist + w
			if best, ok := dist[neighbor]; ok && candidate >= best {
				continue
			}
			dist[neighbor] = candidate
			prev[neighbor] = item.city
			heap.Push(&pq, &queueItem{city: neighbor, dist: candidate})
		}
	}

	return dist, prev
}

type queueItem struct {
	city domain.City
	dist int
}

// cityQueue is a min-heap of tentative distances.
type cityQueue []*queueItem

func (q cityQueue) Len() int           { return len(q) }
func (q cityQueue) Less(i, j int) bool { return q[i].dist < q[j].dist }
func (q cityQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *cityQueue) Push(x any) { *q = append(*q, x.(*queueItem)) }

func (q *cityQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// Package network stores the undirected road graph and answers
// shortest-distance queries between cities.
//
// Single-source Dijkstra results are memoized per source city; the whole
// memo is dropped whenever a road is added, so query results never depend
// on whether they were served from the cache. A RoadNetwork is meant for a
// single owner: build it, then plan on it. It is not safe to add roads
// while another goroutine queries it.
package network

import (
	"fmt"
	"math"
	"pickup-route-service/internal/domain"
	"slices"
)

// Unreachable is the distance reported for pairs with no connecting path.
// It is larger than any real distance so comparisons stay total.
const Unreachable = math.MaxInt

type RoadNetwork struct {
	adjacency map[domain.City]map[domain.City]int
	distances map[domain.City]map[domain.City]int
	// predecessors[source][city] is the city before city on the shortest path from source.
	predecessors map[domain.City]map[domain.City]domain.City
}

func New() *RoadNetwork {
	return &RoadNetwork{
		adjacency:    make(map[domain.City]map[domain.City]int),
		distances:    make(map[domain.City]map[domain.City]int),
		predecessors: make(map[domain.City]map[domain.City]domain.City),
	}
}

// AddEdge adds an undirected road between a and b.
// If the pair is already connected the shorter of the two weights is kept.
// A rejected road leaves the network unmodified.
func (n *RoadNetwork) AddEdge(a, b domain.City, distance int) error {
	if distance < 0 || distance > domain.MaxRoadDistance {
		return fmt.Errorf("add road %s-%s: %w: got %d", a, b, domain.ErrInvalidDistance, distance)
	}

	if a == "" || b == "" {
		return fmt.Errorf("add road %q-%q: %w", a, b, domain.ErrInvalidCity)
	}

	n.link(a, b, distance)
	n.link(b, a, distance)

	// Any cached row may now be stale.
	clear(n.distances)
	clear(n.predecessors)
	return nil
}

func (n *RoadNetwork) link(from, to domain.City, distance int) {
	neighbors, ok := n.adjacency[from]
	if !ok {
		neighbors = make(map[domain.City]int)
		n.adjacency[from] = neighbors
	}

	if existing, ok := neighbors[to]; ok && existing <= distance {
		return
	}
	neighbors[to] = distance
}

// ShortestDistance returns the length of the shortest path between a and b,
// or Unreachable when either city is unknown or no path exists.
func (n *RoadNetwork) ShortestDistance(a, b domain.City) int {
	if a == b {
		return 0
	}

	row := n.row(a)
	d, ok := row[b]
	if !ok {
		return Unreachable
	}
	return d
}

// Path returns the cities along the shortest path from a to b, both ends
// included. It returns nil when b cannot be reached from a.
func (n *RoadNetwork) Path(a, b domain.City) []domain.City {
	if a == b {
		return []domain.City{a}
	}

	if _, ok := n.row(a)[b]; !ok {
		return nil
	}

	prev := n.predecessors[a]
	path := []domain.City{b}
	for c := b; c != a; {
		c = prev[c]
		path = append(path, c)
	}
	slices.Reverse(path)
	return path
}

// row returns the memoized distances from source, running Dijkstra on a miss.
func (n *RoadNetwork) row(source domain.City) map[domain.City]int {
	if row, ok := n.distances[source]; ok {
		return row
	}

	if _, known := n.adjacency[source]; !known {
		return nil
	}

	dist, prev := n.dijkstra(source)
	n.distances[source] = dist
	n.predecessors[source] = prev
	return dist
}

// ConnectedCities returns a copy of the roads leaving city, keyed by neighbor.
// Unknown cities have no neighbors.
func (n *RoadNetwork) ConnectedCities(city domain.City) map[domain.City]int {
	out := make(map[domain.City]int, len(n.adjacency[city]))
	for neighbor, d := range n.adjacency[city] {
		out[neighbor] = d
	}
	return out
}

func (n *RoadNetwork) HasCity(city domain.City) bool {
	_, ok := n.adjacency[city]
	return ok
}

// Cities returns every known city in lexicographic order.
func (n *RoadNetwork) Cities() []domain.City {
	return domain.SortedCities(n.adjacency)
}

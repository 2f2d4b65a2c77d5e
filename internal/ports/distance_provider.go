package ports

import "pickup-route-service/internal/domain"

// Contract for answering road-network distance queries during planning.
// Implementations report unreachable pairs with a sentinel distance larger
// than any real one, never with an error.
type DistanceProvider interface {
	// Return the shortest road distance between two cities.
	ShortestDistance(from domain.City, to domain.City) int
	// Return the cities one road away from city, with the road lengths.
	ConnectedCities(city domain.City) map[domain.City]int
}

package board

import "fmt"

// UnknownRoomError reports a reference to a room that was never registered.
type UnknownRoomError struct {
	Room string
}

func (e *UnknownRoomError) Error() string {
	return fmt.Sprintf("unknown room %q", e.Room)
}

// Graph is the undirected map of rooms. Rooms are registered once during setup
// and the graph is immutable afterwards; a new game builds a new Graph.
//
// Adjacency is kept as ordered slices rather than sets so that Neighbors and
// ShortestPath enumerate in insertion order, which makes tie-breaking between
// equal-length paths deterministic.
type Graph struct {
	names     []string
	adjacency map[string][]string
}

// NewGraph creates an empty room graph.
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string][]string),
	}
}

// AddRoom registers a room. Registering the same name twice has no effect.
func (g *Graph) AddRoom(name string) {
	if _, ok := g.adjacency[name]; ok {
		return
	}
	g.names = append(g.names, name)
	g.adjacency[name] = nil
}

// Contains reports whether a room was registered.
func (g *Graph) Contains(name string) bool {
	_, ok := g.adjacency[name]
	return ok
}

// Rooms returns all registered room names in registration order.
func (g *Graph) Rooms() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// Connect adds a bidirectional edge between a and b. Connecting an already
// connected pair is a no-op. Both rooms must have been registered.
func (g *Graph) Connect(a, b string) error {
	if !g.Contains(a) {
		return &UnknownRoomError{Room: a}
	}
	if !g.Contains(b) {
		return &UnknownRoomError{Room: b}
	}
	if g.connected(a, b) {
		return nil
	}
	g.adjacency[a] = append(g.adjacency[a], b)
	g.adjacency[b] = append(g.adjacency[b], a)
	return nil
}

func (g *Graph) connected(a, b string) bool {
	for _, n := range g.adjacency[a] {
		if n == b {
			return true
		}
	}
	return false
}

// Neighbors returns the rooms directly connected to name, in the order the
// connections were made. An unknown or isolated room yields an empty slice;
// unknown names deliberately do not error so that display code can probe
// freely (callers that need existence checks use Contains).
func (g *Graph) Neighbors(name string) []string {
	adj := g.adjacency[name]
	out := make([]string, len(adj))
	copy(out, adj)
	return out
}

// Adjacent reports whether a and b share an edge.
func (g *Graph) Adjacent(a, b string) bool {
	return g.connected(a, b)
}

// ShortestPath runs a breadth-first search from start to end and returns the
// room sequence including both endpoints. The second return value is false
// when either room is unknown or no path exists. ShortestPath(X, X) is [X].
func (g *Graph) ShortestPath(start, end string) ([]string, bool) {
	if !g.Contains(start) || !g.Contains(end) {
		return nil, false
	}
	if start == end {
		return []string{start}, true
	}

	// Mark on enqueue so a room is never queued twice, which also guarantees
	// termination on cyclic maps.
	visited := map[string]bool{start: true}
	parent := make(map[string]string)
	queue := []string{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range g.adjacency[current] {
			if visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = current
			if next == end {
				return rebuildPath(parent, start, end), true
			}
			queue = append(queue, next)
		}
	}
	return nil, false
}

func rebuildPath(parent map[string]string, start, end string) []string {
	var reversed []string
	for at := end; at != start; at = parent[at] {
		reversed = append(reversed, at)
	}
	reversed = append(reversed, start)

	path := make([]string, len(reversed))
	for i, room := range reversed {
		path[len(path)-1-i] = room
	}
	return path
}

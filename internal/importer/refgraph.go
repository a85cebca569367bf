package importer

// referenceGraph is the table-level graph of foreign key edges
type referenceGraph struct {
	tables []string
	edges  map[string][]string
	self   map[string]bool
}

func newReferenceGraph() *referenceGraph {
	return &referenceGraph{
		edges: make(map[string][]string),
		self:  make(map[string]bool),
	}
}

func (g *referenceGraph) addTable(table string) {
	if _, ok := g.edges[table]; !ok {
		g.edges[table] = nil
		g.tables = append(g.tables, table)
	}
}

func (g *referenceGraph) addEdge(from, to string) {
	g.addTable(from)
	g.addTable(to)
	if from == to {
		g.self[from] = true
		return
	}
	for _, existing := range g.edges[from] {
		if existing == to {
			return
		}
	}
	g.edges[from] = append(g.edges[from], to)
}

// selfReferences returns the tables with a foreign key to themselves
func (g *referenceGraph) selfReferences() []string {
	var tables []string
	for _, table := range g.tables {
		if g.self[table] {
			tables = append(tables, table)
		}
	}
	return tables
}

// findCycle returns the first cycle between distinct tables, closed by
// repeating its first table, or nil. Self references are not cycles here.
func (g *referenceGraph) findCycle() []string {
	visited := make(map[string]bool)
	onPath := make(map[string]bool)
	var path []string
	var cycle []string

	var visit func(string) bool
	visit = func(table string) bool {
		if onPath[table] {
			for i, t := range path {
				if t == table {
					cycle = append(append([]string{}, path[i:]...), table)
					break
				}
			}
			return true
		}
		if visited[table] {
			return false
		}

		onPath[table] = true
		path = append(path, table)
		for _, dep := range g.edges[table] {
			if visit(dep) {
				return true
			}
		}
		path = path[:len(path)-1]
		onPath[table] = false
		visited[table] = true
		return false
	}

	for _, table := range g.tables {
		if !visited[table] && visit(table) {
			return cycle
		}
	}
	return nil
}

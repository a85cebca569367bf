package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferenceGraph(t *testing.T) {
	tests := []struct {
		name      string
		edges     [][2]string
		wantSelf  []string
		wantCycle []string
	}{
		{
			name:  "acyclic chain",
			edges: [][2]string{{"order_items", "orders"}, {"orders", "users"}, {"order_items", "products"}},
		},
		{
			name:     "self reference only",
			edges:    [][2]string{{"employees", "employees"}},
			wantSelf: []string{"employees"},
		},
		{
			name:      "two table cycle",
			edges:     [][2]string{{"a", "b"}, {"b", "a"}},
			wantCycle: []string{"a", "b", "a"},
		},
		{
			name:      "cycle behind a prefix",
			edges:     [][2]string{{"x", "a"}, {"a", "b"}, {"b", "c"}, {"c", "a"}, {"c", "c"}},
			wantSelf:  []string{"c"},
			wantCycle: []string{"a", "b", "c", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newReferenceGraph()
			for _, e := range tt.edges {
				g.addEdge(e[0], e[1])
			}
			assert.Equal(t, tt.wantSelf, g.selfReferences())
			assert.Equal(t, tt.wantCycle, g.findCycle())
		})
	}
}

// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package assemble

import "github.com/akhenakh/topology/planar"

// Graph is the set of snapped boundary lines passed to a Layer. Vertices
// are node sites; every edge is one whole line running from Src to Dst.
type Graph struct {
	Vertices []planar.Coord
	Edges    []GraphEdge

	// Incident edges per vertex. A closed line appears twice at its node.
	incident [][]int32
}

// GraphEdge is a boundary line between two node sites.
type GraphEdge struct {
	Src, Dst int32
	// Input is the index of the line in the Builder input.
	Input int32
}

// IsLoop reports whether the edge starts and ends at the same site.
func (e GraphEdge) IsLoop() bool { return e.Src == e.Dst }

// NewGraph creates a new graph.
func NewGraph(vertices []planar.Coord, edges []GraphEdge) *Graph {
	g := &Graph{
		Vertices: vertices,
		Edges:    edges,
	}
	g.computeAdjacency()
	return g
}

func (g *Graph) computeAdjacency() {
	g.incident = make([][]int32, len(g.Vertices))
	for i, e := range g.Edges {
		g.incident[e.Src] = append(g.incident[e.Src], int32(i))
		g.incident[e.Dst] = append(g.incident[e.Dst], int32(i))
	}
}

// IncidentEdges returns the indices of edges touching vertex v.
func (g *Graph) IncidentEdges(v int32) []int32 {
	if int(v) >= len(g.incident) {
		return nil
	}
	return g.incident[v]
}

// NumVertices returns the number of vertices.
func (g *Graph) NumVertices() int { return len(g.Vertices) }

// Vertex returns the vertex at index.
func (g *Graph) Vertex(i int32) planar.Coord { return g.Vertices[i] }

// NumEdges returns the number of edges.
func (g *Graph) NumEdges() int { return len(g.Edges) }

// Edge returns the edge at index.
func (g *Graph) Edge(i int32) GraphEdge { return g.Edges[i] }

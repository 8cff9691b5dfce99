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

import (
	"github.com/akhenakh/topology/feature"
	"github.com/akhenakh/topology/planar"
	"github.com/akhenakh/topology/topoerr"
)

// Layer consumes the line graph produced by a Builder.
type Layer interface {
	Build(g *Graph, inputs []Line) error
}

// Ring is a closed ring joined from boundary lines, together with the
// references that reproduce it.
type Ring struct {
	Ring planar.Ring
	Refs []feature.Reference
}

// RingLayer joins the graph edges end to end into closed rings.
type RingLayer struct {
	rings *[]Ring
}

// NewRingLayer creates a layer that writes the assembled rings to rings.
func NewRingLayer(rings *[]Ring) *RingLayer {
	return &RingLayer{rings: rings}
}

// Build walks the graph, starting a new ring at every unused edge and
// following unused edges until the walk returns to its starting node.
// Every edge must end up in exactly one ring.
func (l *RingLayer) Build(g *Graph, inputs []Line) error {
	// Every node of a set of closed rings joins an even number of line ends.
	for v := int32(0); v < int32(g.NumVertices()); v++ {
		if n := len(g.IncidentEdges(v)); n%2 != 0 {
			return topoerr.BadRequest("node %v joins %d line ends, rings need an even number", g.Vertex(v), n)
		}
	}

	var rings []Ring
	used := make([]bool, g.NumEdges())

	for i := range g.Edges {
		if used[i] {
			continue
		}

		if e := g.Edge(int32(i)); e.IsLoop() {
			// A closed line is a ring by itself.
			used[i] = true
			in := inputs[e.Input]
			r := Ring{
				Ring: appendLine(nil, g, e, in.Coords, false),
				Refs: []feature.Reference{{TargetID: in.ID}},
			}
			if r.Ring.NumVertices() < 3 {
				return topoerr.BadRequest("line %q forms a degenerate ring", in.ID)
			}
			rings = append(rings, r)
			continue
		}

		start := g.Edges[i].Src
		curr := int32(i)
		reversed := false
		var r Ring

		for {
			used[curr] = true
			edge := g.Edge(curr)
			in := inputs[edge.Input]
			r.Refs = append(r.Refs, feature.Reference{TargetID: in.ID, Reversed: reversed})
			r.Ring = appendLine(r.Ring, g, edge, in.Coords, reversed)

			next := edge.Dst
			if reversed {
				next = edge.Src
			}
			if next == start {
				break
			}

			nextIdx := int32(-1)
			for _, cand := range g.IncidentEdges(next) {
				if !used[cand] {
					nextIdx = cand
					break
				}
			}
			if nextIdx < 0 {
				return topoerr.BadRequest("line %q ends at %v without a continuation", in.ID, g.Vertex(next))
			}
			curr = nextIdx
			// Leave the node along the candidate, walking it backwards when
			// it ends at the node.
			reversed = g.Edge(curr).Src != next
		}

		if r.Ring.NumVertices() < 3 {
			return topoerr.BadRequest("lines %v form a degenerate ring", r.Refs)
		}
		rings = append(rings, r)
	}

	*l.rings = rings
	return nil
}

// appendLine appends the line's coordinates, in walk direction, to ring.
// Line end points are replaced by their node sites so snapped joints match.
func appendLine(ring planar.Ring, g *Graph, edge GraphEdge, coords planar.LineString, reversed bool) planar.Ring {
	seg := coords.Copy()
	seg[0], seg[len(seg)-1] = g.Vertex(edge.Src), g.Vertex(edge.Dst)
	if reversed {
		seg = seg.Reverse()
	}
	if len(ring) == 0 {
		return append(ring, seg...)
	}
	return append(ring, seg[1:]...)
}

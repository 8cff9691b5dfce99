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

package feature

import (
	"github.com/akhenakh/topology/planar"
	"github.com/akhenakh/topology/topoerr"
)

// ResolveRing concatenates the sign corrected coordinates of the referenced
// lines. Each line must start where the previous one ended and the last
// line must end where the first one started. A single closed line forms a
// ring by itself.
func ResolveRing(refs []Reference, lines map[string]Feature) (planar.Ring, error) {
	var ring planar.Ring
	for _, ref := range refs {
		f, ok := lines[ref.TargetID]
		if !ok {
			return nil, topoerr.ReferenceNotFound(ref.TargetID)
		}
		ls, ok := f.LineString()
		if !ok || len(ls) < 2 {
			return nil, topoerr.UnsupportedGeometry("reference %s is not a line", ref)
		}
		if ref.Reversed {
			ls = ls.Reverse()
		}
		if len(ring) == 0 {
			ring = append(ring, ls...)
			continue
		}
		if ring[len(ring)-1] != ls[0] {
			return nil, topoerr.BadRequest("reference %s does not continue the ring at %v", ref, ring[len(ring)-1])
		}
		ring = append(ring, ls[1:]...)
	}
	if !ring.IsClosed() {
		return nil, topoerr.BadRequest("references %v do not form a closed ring", refs)
	}
	return ring, nil
}

// MaterializePolygon rebuilds the polygon geometry of f from its references
// and the given line features.
func MaterializePolygon(f Feature, lines []Feature) (planar.Polygon, error) {
	if f.References == nil || len(f.References.Exterior) == 0 {
		return planar.Polygon{}, topoerr.BadRequest("polygon %q has no exterior references", f.ID())
	}
	idx := Index(lines)
	shell, err := ResolveRing(f.References.Exterior, idx)
	if err != nil {
		return planar.Polygon{}, err
	}
	p := planar.Polygon{Shell: shell}
	for _, refs := range f.References.Interiors {
		hole, err := ResolveRing(refs, idx)
		if err != nil {
			return planar.Polygon{}, err
		}
		p.Holes = append(p.Holes, hole)
	}
	return p, nil
}

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

package topology

import (
	"github.com/akhenakh/topology/feature"
	"github.com/akhenakh/topology/planar"
	"github.com/akhenakh/topology/topoerr"
)

// HoleEdit is a planned change to the holes of a polygon.
type HoleEdit struct {
	// Operation is Edit for a hole changed in place, Insert for a new hole
	// and Delete for a removed one.
	Operation feature.EditOperation
	// Feature is the polygon being edited.
	Feature feature.Feature
	// Ring is the new hole ring for Edit and Insert, and the removed ring
	// for Delete.
	Ring planar.Ring
	// Index is the position of the existing hole for Edit and Delete.
	Index *int
	// Affected holds the currently known line features.
	Affected []feature.Feature
}

// PlanHoleEdits compares the holes of poly with those of newGeom.
//
// With as many holes as before, every new hole with no identical old hole
// is matched to the old hole with the nearest centroid among those not yet
// matched, and becomes an in-place Edit. With more holes, every new hole
// absent from the old ones is an Insert. With fewer, every old hole absent
// from the new ones is a Delete.
func (e *Engine) PlanHoleEdits(poly feature.Feature, newGeom planar.Polygon, candidates []feature.Feature) ([]HoleEdit, error) {
	p, ok := poly.Polygon()
	if !ok {
		return nil, topoerr.UnsupportedGeometry("can only edit the holes of a polygon, got %v", kindOf(poly))
	}
	oldHoles, newHoles := p.Holes, newGeom.Holes

	var plan []HoleEdit
	switch {
	case len(newHoles) == len(oldHoles):
		// Old holes that no longer exist as such, by position.
		var pool []int
		for i, h := range oldHoles {
			if !containsShape(newHoles, h) {
				pool = append(pool, i)
			}
		}
		for _, h := range newHoles {
			if containsShape(oldHoles, h) {
				continue
			}
			if len(pool) == 0 {
				return nil, topoerr.BadRequest("no hole left to match %v", h)
			}
			best := nearestHole(oldHoles, pool, h.Centroid())
			idx := pool[best]
			pool = append(pool[:best], pool[best+1:]...)
			plan = append(plan, HoleEdit{Operation: feature.Edit, Feature: poly, Ring: h, Index: &idx, Affected: candidates})
		}
	case len(newHoles) > len(oldHoles):
		for _, h := range newHoles {
			if !containsShape(oldHoles, h) {
				plan = append(plan, HoleEdit{Operation: feature.Insert, Feature: poly, Ring: h, Affected: candidates})
			}
		}
	default:
		for i, h := range oldHoles {
			if !containsShape(newHoles, h) {
				idx := i
				plan = append(plan, HoleEdit{Operation: feature.Delete, Feature: poly, Ring: h, Index: &idx, Affected: candidates})
			}
		}
	}
	return plan, nil
}

// ApplyHoleEdit applies one planned hole change.
func (e *Engine) ApplyHoleEdit(req HoleEdit) (resp feature.Response, err error) {
	defer func() { e.observe("apply_hole_edit", req.Feature.ID(), err) }()

	p, ok := req.Feature.Polygon()
	if !ok {
		return feature.Response{}, topoerr.UnsupportedGeometry("can only edit the holes of a polygon, got %v", kindOf(req.Feature))
	}
	switch req.Operation {
	case feature.Edit:
		return e.editHole(req, p)
	case feature.Insert:
		return e.insertHole(req, p)
	case feature.Delete:
		return e.deleteHole(req, p)
	}
	return feature.Response{}, topoerr.BadRequest("unknown hole edit operation %v", req.Operation)
}

func (e *Engine) editHole(req HoleEdit, p planar.Polygon) (feature.Response, error) {
	if req.Index == nil {
		return feature.Response{}, topoerr.BadRequest("Missing index")
	}
	idx := *req.Index
	interiors := req.Feature.Interiors()
	if idx < 0 || idx >= len(p.Holes) || idx >= len(interiors) {
		return feature.Response{}, topoerr.BadRequest("hole index %d out of range", idx)
	}

	lines := referencedLines(interiors[idx], req.Affected)
	edits, err := ringEdits(p.Holes[idx], req.Ring, lines)
	if err != nil {
		return feature.Response{}, err
	}
	switch {
	case len(edits) == 0:
		return feature.Response{Valid: true}, nil
	case len(edits) > 1:
		return feature.Response{}, topoerr.BadRequest("Multiple edits found. Not supported")
	}

	e.log.Debug("editing hole", "polygon", req.Feature.ID(), "hole", idx,
		"line", edits[0].line.ID(), "edit", edits[0].op, "index", edits[0].index)
	return e.apply(edits[0], req.Feature, req.Affected)
}

// insertHole creates a line for the new ring and references it from the
// polygon. The line keeps the ring coordinates as given; a counter-clockwise
// ring is referenced reversed.
func (e *Engine) insertHole(req HoleEdit, p planar.Polygon) (feature.Response, error) {
	ring := req.Ring.Clone()
	if !ring.IsClosed() {
		return feature.Response{}, topoerr.BadRequest("hole %v is not a closed ring", ring)
	}

	id := e.newID()
	line := feature.New(planar.LineString(ring), id).WithOperation(feature.Create)
	ref := feature.Reference{TargetID: id, Reversed: ring.IsCCW()}

	geom := p.Copy()
	geom.Holes = append(geom.Holes, ring.Clone())
	interiors := append(req.Feature.Interiors(), []feature.Reference{ref})

	poly := req.Feature.
		WithGeometry(geom.Normalized()).
		WithReferences(req.Feature.Exterior(), interiors).
		WithOperation(feature.Replace)

	e.log.Debug("inserted hole", "polygon", poly.ID(), "line", id, "reference", ref)
	return feature.Response{Affected: []feature.Feature{poly, line}, Valid: true}, nil
}

// deleteHole drops the ring and its references from the polygon. The line
// features themselves are left alone.
func (e *Engine) deleteHole(req HoleEdit, p planar.Polygon) (feature.Response, error) {
	hole := -1
	for i, h := range p.Holes {
		if h.SameShape(req.Ring) {
			hole = i
			break
		}
	}
	if hole < 0 && req.Index != nil {
		hole = *req.Index
	}
	if hole < 0 || hole >= len(p.Holes) {
		return feature.Response{}, topoerr.BadRequest("hole %v not found", req.Ring)
	}

	interiors := req.Feature.Interiors()
	entry := referenceEntry(interiors, req.Ring, req.Affected)
	if entry < 0 {
		entry = hole
	}
	if entry < len(interiors) {
		interiors = append(interiors[:entry], interiors[entry+1:]...)
	}

	geom := p.Copy()
	geom.Holes = append(geom.Holes[:hole], geom.Holes[hole+1:]...)
	if len(geom.Holes) == 0 {
		geom.Holes = nil
	}
	poly := req.Feature.
		WithGeometry(geom).
		WithReferences(req.Feature.Exterior(), interiors).
		WithOperation(feature.Replace)

	e.log.Debug("deleted hole", "polygon", poly.ID(), "hole", hole)
	return feature.Response{Affected: []feature.Feature{poly}, Valid: true}, nil
}

// referenceEntry returns the position of the hole reference list pointing
// at a candidate line whose geometry is ring, or -1.
func referenceEntry(interiors [][]feature.Reference, ring planar.Ring, candidates []feature.Feature) int {
	for _, c := range candidates {
		ls, ok := c.LineString()
		if !ok || !planar.Ring(ls).SameShape(ring) {
			continue
		}
		for i, refs := range interiors {
			for _, ref := range refs {
				if ref.TargetID == c.ID() {
					return i
				}
			}
		}
	}
	return -1
}

func containsShape(rings []planar.Ring, r planar.Ring) bool {
	for _, o := range rings {
		if o.SameShape(r) {
			return true
		}
	}
	return false
}

// nearestHole returns the position in pool of the hole whose centroid is
// closest to c. Ties go to the first.
func nearestHole(holes []planar.Ring, pool []int, c planar.Coord) int {
	best, bestDist := 0, holes[pool[0]].Centroid().Distance(c)
	for i := 1; i < len(pool); i++ {
		if d := holes[pool[i]].Centroid().Distance(c); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

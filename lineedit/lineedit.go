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

// Package lineedit applies point level edits to boundary lines and keeps
// the polygons referencing them in sync.
package lineedit

import (
	"github.com/akhenakh/topology/feature"
	"github.com/akhenakh/topology/planar"
	"github.com/akhenakh/topology/topoerr"
)

// Editor applies a single point level edit to a line feature.
//
// Moving an end node of an open line also moves the coinciding end node of
// every other line in the affected set, so lines meeting at that node stay
// joined. Every polygon in the affected set that references a changed line
// is rebuilt from its references.
type Editor struct{}

// New returns a line editor.
func New() *Editor {
	return &Editor{}
}

// ApplyEdit edits req.Target and returns the changed line(s) followed by
// the rebuilt polygons, all tagged Replace.
func (e *Editor) ApplyEdit(req feature.LineEdit) (feature.Response, error) {
	line, ok := req.Target.LineString()
	if !ok {
		return feature.Response{}, topoerr.UnsupportedGeometry("can only edit lines, got %v", kindOf(req.Target))
	}
	coords := line.Copy()
	n := len(coords)
	closed := coords.IsClosed()

	// Nodes moved by this edit, old position to new position.
	moved := map[planar.Coord]planar.Coord{}

	switch req.Operation {
	case feature.Edit:
		if req.Index < 0 || req.Index >= n {
			return feature.Response{}, topoerr.BadRequest("index %d out of range [0, %d)", req.Index, n)
		}
		old := coords[req.Index]
		coords[req.Index] = req.Coord
		isEnd := req.Index == 0 || req.Index == n-1
		switch {
		case closed && isEnd:
			coords[0], coords[n-1] = req.Coord, req.Coord
		case isEnd:
			moved[old] = req.Coord
		}
	case feature.Insert:
		if req.Index <= 0 || req.Index >= n {
			return feature.Response{}, topoerr.BadRequest("insert index %d out of range (0, %d)", req.Index, n)
		}
		coords = append(coords[:req.Index], append(planar.LineString{req.Coord}, coords[req.Index:]...)...)
	case feature.Delete:
		if req.Index < 0 || req.Index >= n {
			return feature.Response{}, topoerr.BadRequest("index %d out of range [0, %d)", req.Index, n)
		}
		isEnd := req.Index == 0 || req.Index == n-1
		switch {
		case closed && isEnd:
			// The next vertex becomes the closing node.
			coords = append(coords[1:n-1], coords[1])
		case isEnd:
			return feature.Response{}, topoerr.BadRequest("cannot delete end node %v of open line %q", coords[req.Index], req.Target.ID())
		default:
			coords = append(coords[:req.Index], coords[req.Index+1:]...)
		}
		if (closed && len(coords) < 4) || len(coords) < 2 {
			return feature.Response{}, topoerr.BadRequest("deleting vertex %d leaves line %q degenerate", req.Index, req.Target.ID())
		}
	default:
		return feature.Response{}, topoerr.BadRequest("unknown line edit operation %v", req.Operation)
	}

	target := req.Target.WithGeometry(coords).WithOperation(feature.Replace)
	changed := []feature.Feature{target}

	// Lines other than the target, with shared nodes already moved.
	var others []feature.Feature
	for _, f := range req.Affected {
		ls, ok := f.LineString()
		if !ok || f.ID() == target.ID() {
			continue
		}
		if shifted, ok := moveNodes(ls, moved); ok {
			f = f.WithGeometry(shifted).WithOperation(feature.Replace)
			changed = append(changed, f)
		}
		others = append(others, f)
	}

	lines := append([]feature.Feature{target}, others...)
	resp := feature.Response{Affected: changed, Valid: true}
	for _, f := range req.Affected {
		if _, ok := f.Polygon(); !ok || !referencesAny(f, changed) {
			continue
		}
		p, err := feature.MaterializePolygon(f, lines)
		if err != nil {
			return feature.Response{}, err
		}
		resp.Affected = append(resp.Affected, f.WithGeometry(p).WithOperation(feature.Replace))
	}
	return resp, nil
}

// moveNodes moves the end nodes of ls found in moved. It reports whether
// anything changed.
func moveNodes(ls planar.LineString, moved map[planar.Coord]planar.Coord) (planar.LineString, bool) {
	if len(moved) == 0 || len(ls) == 0 {
		return ls, false
	}
	out := ls.Copy()
	changed := false
	for _, i := range []int{0, len(out) - 1} {
		if to, ok := moved[ls[i]]; ok {
			out[i] = to
			changed = true
		}
	}
	return out, changed
}

func referencesAny(p feature.Feature, lines []feature.Feature) bool {
	for _, l := range lines {
		if p.References.Refers(l.ID()) {
			return true
		}
	}
	return false
}

func kindOf(f feature.Feature) string {
	if f.Geometry == nil {
		return "no geometry"
	}
	return f.Geometry.Kind().String()
}

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
	"github.com/akhenakh/topology/ringdiff"
	"github.com/akhenakh/topology/topoerr"
)

// pointEdit is one coordinate level change of a boundary line.
type pointEdit struct {
	line  feature.Feature
	op    feature.EditOperation
	index int
	coord planar.Coord
}

// ringEdits turns the difference between two versions of a ring into point
// edits against the lines that make up the old ring. Moves and deletions
// target the first line holding the old coordinate; insertions target the
// line holding both new ring neighbours of the inserted coordinate.
func ringEdits(oldRing, newRing planar.Ring, lines []feature.Feature) ([]pointEdit, error) {
	diff := ringdiff.Diff(oldRing, newRing)
	if diff.IsEmpty() {
		return nil, nil
	}

	var edits []pointEdit
	for _, p := range diff.Pairs {
		line, idx, ok := lineWith(lines, p.Old)
		if !ok {
			return nil, topoerr.Newf(topoerr.ErrReferenceNotFound, "no referenced line contains %v", p.Old)
		}
		e := pointEdit{line: line, op: feature.Delete, index: idx}
		if p.Matched {
			e.op, e.coord = feature.Edit, p.New
		}
		edits = append(edits, e)
	}

	for _, c := range diff.Unclaimed() {
		i := newRing.IndexOf(c)
		prev, next := newRing.Vertex(i-1), newRing.Vertex(i+1)
		if !oldRing.Contains(prev) || !oldRing.Contains(next) {
			return nil, topoerr.NotImplemented("inserting %v next to other changed vertices", c)
		}
		line, idx, ok := lineWithSegment(lines, prev, next)
		if !ok {
			return nil, topoerr.Newf(topoerr.ErrReferenceNotFound, "no referenced line has segment %v %v", prev, next)
		}
		edits = append(edits, pointEdit{line: line, op: feature.Insert, index: idx, coord: c})
	}
	return edits, nil
}

// lineWith returns the first line holding c and the index of c in it.
func lineWith(lines []feature.Feature, c planar.Coord) (feature.Feature, int, bool) {
	for _, l := range lines {
		ls, ok := l.LineString()
		if !ok {
			continue
		}
		if i := planar.Ring(ls).IndexOf(c); i >= 0 {
			return l, i, true
		}
	}
	return feature.Feature{}, 0, false
}

// lineWithSegment returns the first line where a and b are consecutive, in
// either order, and the index between them.
func lineWithSegment(lines []feature.Feature, a, b planar.Coord) (feature.Feature, int, bool) {
	for _, l := range lines {
		ls, ok := l.LineString()
		if !ok {
			continue
		}
		for i := 0; i+1 < len(ls); i++ {
			if (ls[i] == a && ls[i+1] == b) || (ls[i] == b && ls[i+1] == a) {
				return l, i + 1, true
			}
		}
	}
	return feature.Feature{}, 0, false
}

// editedLines counts the distinct lines targeted by edits.
func editedLines(edits []pointEdit) int {
	seen := map[string]bool{}
	for _, e := range edits {
		seen[e.line.ID()] = true
	}
	return len(seen)
}

// referencedLines returns the candidates referenced by refs, in reference
// order. Unknown ids are skipped.
func referencedLines(refs []feature.Reference, candidates []feature.Feature) []feature.Feature {
	index := feature.Index(candidates)
	var out []feature.Feature
	for _, ref := range refs {
		if l, ok := index[ref.TargetID]; ok {
			out = append(out, l)
		}
	}
	return out
}

// apply hands a single point edit to the line editor. The polygon and the
// other candidates are passed along so the editor can rebuild the polygon
// and keep shared nodes joined.
func (e *Engine) apply(edit pointEdit, poly feature.Feature, candidates []feature.Feature) (feature.Response, error) {
	affected := []feature.Feature{poly}
	for _, c := range candidates {
		if id := c.ID(); id != edit.line.ID() && id != poly.ID() {
			affected = append(affected, c)
		}
	}
	return e.lines.ApplyEdit(feature.LineEdit{
		Target:    edit.line,
		Operation: edit.op,
		Index:     edit.index,
		Coord:     edit.coord,
		Affected:  affected,
	})
}

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

// Request is a feature to resolve together with the currently known
// features it may reference.
type Request struct {
	Feature    feature.Feature
	Candidates []feature.Feature
}

// Resolve routes req on the operation of its feature.
//
// Create decomposes a polygon with coordinates into a polygon referencing
// new boundary lines, passes points and lines through, and assembles an
// empty polygon from the lines its references name. Erase and Replace are
// not supported; a feature without operation is an invalid request.
func (e *Engine) Resolve(req Request) (resp feature.Response, err error) {
	f := req.Feature
	defer func() { e.observe("resolve", f.ID(), err) }()

	switch f.Operation {
	case feature.Create:
		return e.create(req)
	case feature.Erase:
		return feature.Response{}, topoerr.NotImplemented("erasing feature %q", f.ID())
	case feature.Replace:
		return feature.Response{}, topoerr.NotImplemented("replacing feature %q as a whole", f.ID())
	}
	return feature.Response{}, topoerr.InvalidRequest("feature %q has no operation", f.ID())
}

func (e *Engine) create(req Request) (feature.Response, error) {
	f := req.Feature
	if f.Geometry == nil {
		return feature.Response{}, topoerr.InvalidRequest("feature %q has no geometry", f.ID())
	}
	if !f.Geometry.IsEmpty() {
		if p, ok := f.Polygon(); ok {
			return e.decompose(f, p)
		}
		return feature.Response{Affected: []feature.Feature{f.Clone()}, Valid: true}, nil
	}

	if _, ok := f.Polygon(); !ok {
		return feature.Response{}, topoerr.InvalidRequest("empty %v cannot be assembled", f.Geometry.Kind())
	}
	if len(f.Exterior()) == 0 {
		return feature.Response{}, topoerr.InvalidRequest("empty polygon %q has no exterior references", f.ID())
	}

	index := feature.Index(req.Candidates)
	seen := map[string]bool{}
	var lines []feature.Feature
	for _, id := range f.References.IDs() {
		if seen[id] {
			continue
		}
		seen[id] = true
		l, ok := index[id]
		if !ok {
			return feature.Response{}, topoerr.ReferenceNotFound(id)
		}
		lines = append(lines, l)
	}
	e.log.Debug("assembling polygon", "feature", f.ID(), "lines", len(lines))
	return e.assembler.Assemble(lines, nil)
}

// decompose splits p into one new line per ring. Lines keep the ring
// coordinates as given; the references are reversed where needed so the
// polygon shell runs counter-clockwise and its holes clockwise, which is
// also how the returned polygon geometry is stored.
func (e *Engine) decompose(f feature.Feature, p planar.Polygon) (feature.Response, error) {
	if !p.Shell.IsClosed() {
		return feature.Response{}, topoerr.BadRequest("shell of %q is not a closed ring", f.ID())
	}
	for i, h := range p.Holes {
		if !h.IsClosed() {
			return feature.Response{}, topoerr.BadRequest("hole %d of %q is not a closed ring", i, f.ID())
		}
	}

	poly := f.EnsureLocalID(e.newID)
	shell := e.newLine(p.Shell)
	exterior := []feature.Reference{{TargetID: shell.ID(), Reversed: !p.Shell.IsCCW()}}
	lines := []feature.Feature{shell}

	var interiors [][]feature.Reference
	for _, h := range p.Holes {
		hole := e.newLine(h)
		interiors = append(interiors, []feature.Reference{{TargetID: hole.ID(), Reversed: h.IsCCW()}})
		lines = append(lines, hole)
	}

	poly = poly.
		WithGeometry(p.Normalized()).
		WithReferences(exterior, interiors).
		WithOperation(feature.Create)

	e.log.Debug("decomposed polygon", "feature", poly.ID(), "lines", len(lines))
	return feature.Response{Affected: append([]feature.Feature{poly}, lines...), Valid: true}, nil
}

func (e *Engine) newLine(r planar.Ring) feature.Feature {
	return feature.New(planar.LineString(r.Clone()), e.newID()).WithOperation(feature.Create)
}

// CreatePolygonFromLines assembles a new polygon from lines. hint, when
// set, helps pick the shell among ambiguous rings.
func (e *Engine) CreatePolygonFromLines(lines []feature.Feature, hint *planar.Coord) (resp feature.Response, err error) {
	defer func() { e.observe("create_from_lines", "", err) }()
	return e.assembler.Assemble(lines, hint)
}

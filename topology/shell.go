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

// EditShell applies the change from the polygon's current shell to
// newShell as a single point edit of one of the lines the shell references.
//
// candidates holds the currently known line features; only those
// referenced by the shell are considered. An unchanged shell yields a valid
// response with no affected features. Changes touching more than one line,
// or more than one vertex, fail with ErrNotImplemented.
func (e *Engine) EditShell(poly feature.Feature, newShell planar.Ring, candidates []feature.Feature) (resp feature.Response, err error) {
	defer func() { e.observe("edit_shell", poly.ID(), err) }()

	p, ok := poly.Polygon()
	if !ok {
		return feature.Response{}, topoerr.UnsupportedGeometry("can only edit the shell of a polygon, got %v", kindOf(poly))
	}

	lines := referencedLines(poly.Exterior(), candidates)
	edits, err := ringEdits(p.Shell, newShell, lines)
	if err != nil {
		return feature.Response{}, err
	}
	switch {
	case len(edits) == 0:
		return feature.Response{Valid: true}, nil
	case editedLines(edits) > 1:
		return feature.Response{}, topoerr.NotImplemented("shell edit spans %d lines", editedLines(edits))
	case len(edits) > 1:
		return feature.Response{}, topoerr.NotImplemented("%d simultaneous edits on line %q", len(edits), edits[0].line.ID())
	}

	e.log.Debug("editing shell", "polygon", poly.ID(), "line", edits[0].line.ID(),
		"edit", edits[0].op, "index", edits[0].index)
	return e.apply(edits[0], poly, candidates)
}

func kindOf(f feature.Feature) string {
	if f.Geometry == nil {
		return "no geometry"
	}
	return f.Geometry.Kind().String()
}

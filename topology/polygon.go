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

// EditPolygonRequest asks for a resolved polygon to take the geometry
// Edited.
type EditPolygonRequest struct {
	Feature    feature.Feature
	Edited     planar.Polygon
	Candidates []feature.Feature
}

// EditPolygon applies a shell change, if any, and then every planned hole
// change in turn. Each step sees the polygon and lines produced by the
// previous ones. The response lists every feature touched, once, with its
// latest state.
func (e *Engine) EditPolygon(req EditPolygonRequest) (resp feature.Response, err error) {
	defer func() { e.observe("edit_polygon", req.Feature.ID(), err) }()

	p, ok := req.Feature.Polygon()
	if !ok {
		return feature.Response{}, topoerr.UnsupportedGeometry("can only edit a polygon, got %v", kindOf(req.Feature))
	}

	st := &editState{
		poly:       req.Feature,
		candidates: append([]feature.Feature(nil), req.Candidates...),
	}

	if !ringdiff.Diff(p.Shell, req.Edited.Shell).IsEmpty() {
		r, err := e.EditShell(st.poly, req.Edited.Shell, st.candidates)
		if err != nil {
			return feature.Response{}, err
		}
		st.merge(r)
	}

	plan, err := e.PlanHoleEdits(st.poly, req.Edited, st.candidates)
	if err != nil {
		return feature.Response{}, err
	}
	for _, h := range plan {
		h.Feature, h.Affected = st.poly, st.candidates
		r, err := e.ApplyHoleEdit(h)
		if err != nil {
			return feature.Response{}, err
		}
		st.merge(r)
	}
	return feature.Response{Affected: st.affected, Valid: true}, nil
}

type editState struct {
	poly       feature.Feature
	candidates []feature.Feature
	affected   []feature.Feature
}

// merge folds a step response into the state. A feature created by an
// earlier step stays tagged Create.
func (s *editState) merge(r feature.Response) {
	for _, f := range r.Affected {
		id := f.ID()
		if i := indexOf(s.affected, id); i >= 0 {
			if s.affected[i].Operation == feature.Create {
				f = f.WithOperation(feature.Create)
			}
			s.affected[i] = f
		} else {
			s.affected = append(s.affected, f)
		}

		if id == s.poly.ID() {
			s.poly = f
			continue
		}
		if i := indexOf(s.candidates, id); i >= 0 {
			s.candidates[i] = f
		} else {
			s.candidates = append(s.candidates, f)
		}
	}
}

func indexOf(fs []feature.Feature, id string) int {
	for i, f := range fs {
		if f.ID() == id {
			return i
		}
	}
	return -1
}

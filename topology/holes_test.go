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
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/akhenakh/topology/feature"
	"github.com/akhenakh/topology/planar"
	"github.com/akhenakh/topology/topoerr"
)

func TestInsertHole(t *testing.T) {
	tests := []struct {
		name    string
		ring    string
		wantRef string
	}{
		{"clockwise", cwHoleWKT, "n1"},
		{"counter-clockwise", ccwHoleWKT, "-n1"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			eight, poly := makeClosedLinePolygon()
			e := newTestEngine()
			p, _ := poly.Polygon()
			edited := p.Copy()
			edited.Holes = append(edited.Holes, parseRing(test.ring))

			plan, err := e.PlanHoleEdits(poly, edited, []feature.Feature{eight})
			if err != nil {
				t.Fatalf("PlanHoleEdits() error = %v", err)
			}
			if len(plan) != 1 || plan[0].Operation != feature.Insert {
				t.Fatalf("PlanHoleEdits() = %v, want one Insert", plan)
			}

			resp, err := e.ApplyHoleEdit(plan[0])
			if err != nil {
				t.Fatalf("ApplyHoleEdit() error = %v", err)
			}
			if len(resp.Affected) != 2 {
				t.Fatalf("ApplyHoleEdit() returned %d features, want 2", len(resp.Affected))
			}
			gotPoly, line := resp.Affected[0], resp.Affected[1]
			if gotPoly.Operation != feature.Replace {
				t.Errorf("polygon operation = %v, want Replace", gotPoly.Operation)
			}
			if line.Operation != feature.Create || line.ID() != "n1" {
				t.Errorf("line = %q/%v, want n1/Create", line.ID(), line.Operation)
			}
			if ls, _ := line.LineString(); !planar.Ring(ls).Equal(parseRing(test.ring)) {
				t.Errorf("line coordinates = %v, want %v", ls, test.ring)
			}

			want := [][]feature.Reference{feature.ParseReferences([]string{test.wantRef})}
			if diff := cmp.Diff(want, gotPoly.Interiors()); diff != "" {
				t.Errorf("interior references mismatch (-want +got):\n%s", diff)
			}
			gp, _ := gotPoly.Polygon()
			if len(gp.Holes) != 1 || gp.Holes[0].IsCCW() {
				t.Errorf("holes = %v, want one clockwise hole", gp.Holes)
			}
			materialized, err := feature.MaterializePolygon(gotPoly, []feature.Feature{eight, line})
			if err != nil {
				t.Fatalf("MaterializePolygon() error = %v", err)
			}
			if !materialized.Equal(gp) {
				t.Errorf("references reproduce %v, want %v", materialized, gp)
			}
		})
	}
}

func TestInsertHoleKeepsExisting(t *testing.T) {
	eight, h1, h2, poly := makeHolePolygon()
	e := newTestEngine()
	p, _ := poly.Polygon()
	edited := p.Copy()
	edited.Holes = append(edited.Holes, parseRing("LINESTRING (2 6, 2 8, 4 8, 4 6, 2 6)"))

	plan, err := e.PlanHoleEdits(poly, edited, []feature.Feature{eight, h1, h2})
	if err != nil {
		t.Fatalf("PlanHoleEdits() error = %v", err)
	}
	resp, err := e.ApplyHoleEdit(plan[0])
	if err != nil {
		t.Fatalf("ApplyHoleEdit() error = %v", err)
	}
	if got := len(resp.WithOperation(feature.Create)); got != 1 {
		t.Errorf("%d created features, want 1", got)
	}
	if got := len(resp.Affected[0].Interiors()); got != 3 {
		t.Errorf("%d hole reference lists, want 3", got)
	}
}

func TestDeleteOnlyHole(t *testing.T) {
	eight, h1, poly := makeOneHolePolygon()
	e := newTestEngine()
	p, _ := poly.Polygon()

	plan, err := e.PlanHoleEdits(poly, planar.Polygon{Shell: p.Shell}, []feature.Feature{eight, h1})
	if err != nil {
		t.Fatalf("PlanHoleEdits() error = %v", err)
	}
	if len(plan) != 1 || plan[0].Operation != feature.Delete {
		t.Fatalf("PlanHoleEdits() = %v, want one Delete", plan)
	}
	resp, err := e.ApplyHoleEdit(plan[0])
	if err != nil {
		t.Fatalf("ApplyHoleEdit() error = %v", err)
	}
	if len(resp.Affected) != 1 {
		t.Fatalf("ApplyHoleEdit() returned %v, want the polygon only", resp.Affected)
	}
	got := resp.Affected[0]
	if got.Operation != feature.Replace {
		t.Errorf("polygon operation = %v, want Replace", got.Operation)
	}
	if n := len(got.Interiors()); n != 0 {
		t.Errorf("%d hole reference lists left, want 0", n)
	}
	if gp, _ := got.Polygon(); len(gp.Holes) != 0 {
		t.Errorf("holes = %v, want none", gp.Holes)
	}
}

func TestDeleteOneOfTwoHoles(t *testing.T) {
	eight, h1, h2, poly := makeHolePolygon()
	e := newTestEngine()
	p, _ := poly.Polygon()
	edited := planar.Polygon{Shell: p.Shell, Holes: []planar.Ring{p.Holes[0]}}

	plan, err := e.PlanHoleEdits(poly, edited, []feature.Feature{eight, h1, h2})
	if err != nil {
		t.Fatalf("PlanHoleEdits() error = %v", err)
	}
	if len(plan) != 1 || plan[0].Operation != feature.Delete || *plan[0].Index != 1 {
		t.Fatalf("PlanHoleEdits() = %v, want Delete of hole 1", plan)
	}
	resp, err := e.ApplyHoleEdit(plan[0])
	if err != nil {
		t.Fatalf("ApplyHoleEdit() error = %v", err)
	}
	got := resp.Affected[0]
	want := [][]feature.Reference{feature.ParseReferences([]string{"h1"})}
	if diff := cmp.Diff(want, got.Interiors()); diff != "" {
		t.Errorf("interior references mismatch (-want +got):\n%s", diff)
	}
	if gp, _ := got.Polygon(); !gp.Equal(edited) {
		t.Errorf("polygon = %v, want %v", gp, edited)
	}
}

func TestEditHoleInPlace(t *testing.T) {
	eight, h1, poly := makeOneHolePolygon()
	e := newTestEngine()
	p, _ := poly.Polygon()
	moved := parseRing("LINESTRING (2 2, 2 4, 5 5, 4 2, 2 2)")
	edited := planar.Polygon{Shell: p.Shell, Holes: []planar.Ring{moved}}

	plan, err := e.PlanHoleEdits(poly, edited, []feature.Feature{eight, h1})
	if err != nil {
		t.Fatalf("PlanHoleEdits() error = %v", err)
	}
	if len(plan) != 1 || plan[0].Operation != feature.Edit || *plan[0].Index != 0 {
		t.Fatalf("PlanHoleEdits() = %v, want Edit of hole 0", plan)
	}
	resp, err := e.ApplyHoleEdit(plan[0])
	if err != nil {
		t.Fatalf("ApplyHoleEdit() error = %v", err)
	}
	lines := resp.Lines()
	if len(lines) != 1 || lines[0].Operation != feature.Replace {
		t.Fatalf("Lines() = %v, want one Replace line", lines)
	}
	if diff := cmp.Diff(planar.LineString(moved), lineByID(t, lines, "h1")); diff != "" {
		t.Errorf("hole line mismatch (-want +got):\n%s", diff)
	}
	polys := resp.Polygons()
	if len(polys) != 1 || polys[0].Operation != feature.Replace {
		t.Fatalf("Polygons() = %v, want one Replace polygon", polys)
	}
	if gp, _ := polys[0].Polygon(); !gp.Equal(edited) {
		t.Errorf("polygon = %v, want %v", gp, edited)
	}
}

func TestApplyHoleEditRejects(t *testing.T) {
	eight, h1, poly := makeOneHolePolygon()
	zero := 0
	tests := []struct {
		name    string
		req     HoleEdit
		want    error
		wantMsg string
	}{
		{
			name:    "missing index",
			req:     HoleEdit{Operation: feature.Edit, Feature: poly, Ring: parseRing(cwHoleWKT)},
			want:    topoerr.ErrBadRequest,
			wantMsg: "Missing index",
		},
		{
			name: "multiple edits",
			req: HoleEdit{
				Operation: feature.Edit,
				Feature:   poly,
				Ring:      parseRing("LINESTRING (2 2, 2 5, 5 5, 4 2, 2 2)"),
				Index:     &zero,
				Affected:  []feature.Feature{eight, h1},
			},
			want:    topoerr.ErrBadRequest,
			wantMsg: "Multiple edits found. Not supported",
		},
		{
			name: "not a polygon",
			req:  HoleEdit{Operation: feature.Insert, Feature: h1, Ring: parseRing(cwHoleWKT)},
			want: topoerr.ErrUnsupportedGeometry,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := newTestEngine().ApplyHoleEdit(test.req)
			if !errors.Is(err, test.want) {
				t.Fatalf("ApplyHoleEdit() error = %v, want %v", err, test.want)
			}
			if !strings.Contains(err.Error(), test.wantMsg) {
				t.Errorf("ApplyHoleEdit() error = %q, want it to contain %q", err, test.wantMsg)
			}
		})
	}
}

func TestPlanHoleEditsMatchesNearestHole(t *testing.T) {
	eight, h1, h2, poly := makeHolePolygon()
	p, _ := poly.Polygon()
	// Both holes changed, listed in the opposite order.
	edited := planar.Polygon{Shell: p.Shell, Holes: []planar.Ring{
		parseRing("LINESTRING (6 6, 6 8, 8 9, 8 6, 6 6)"),
		parseRing("LINESTRING (2 2, 2 4, 4 5, 4 2, 2 2)"),
	}}

	plan, err := newTestEngine().PlanHoleEdits(poly, edited, []feature.Feature{eight, h1, h2})
	if err != nil {
		t.Fatalf("PlanHoleEdits() error = %v", err)
	}
	type step struct {
		Op    feature.EditOperation
		Index int
	}
	var got []step
	for _, h := range plan {
		got = append(got, step{h.Operation, *h.Index})
	}
	want := []step{{feature.Edit, 1}, {feature.Edit, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PlanHoleEdits() mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanHoleEditsUnchanged(t *testing.T) {
	eight, h1, h2, poly := makeHolePolygon()
	p, _ := poly.Polygon()
	// Same holes, different starting vertex and direction.
	edited := planar.Polygon{Shell: p.Shell, Holes: []planar.Ring{p.Holes[0], p.Holes[1].Reverse()}}
	plan, err := newTestEngine().PlanHoleEdits(poly, edited, []feature.Feature{eight, h1, h2})
	if err != nil {
		t.Fatalf("PlanHoleEdits() error = %v", err)
	}
	if len(plan) != 0 {
		t.Errorf("PlanHoleEdits() = %v, want no edits", plan)
	}
}

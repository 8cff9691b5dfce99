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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/akhenakh/topology/feature"
	"github.com/akhenakh/topology/planar"
	"github.com/akhenakh/topology/topoerr"
)

func TestEditShellSingleLine(t *testing.T) {
	tests := []struct {
		name      string
		newShell  string
		wantLine  planar.LineString
		wantCount int
	}{
		{
			name:      "move vertex",
			newShell:  "LINESTRING (0 0, 11 0, 10 10, 0 10, 0 0)",
			wantLine:  planar.LineString{{0, 0}, {11, 0}, {10, 10}, {0, 10}, {0, 0}},
			wantCount: 5,
		},
		{
			name:      "move closing vertex",
			newShell:  "LINESTRING (-1 -1, 10 0, 10 10, 0 10, -1 -1)",
			wantLine:  planar.LineString{{-1, -1}, {10, 0}, {10, 10}, {0, 10}, {-1, -1}},
			wantCount: 5,
		},
		{
			name:      "insert vertex",
			newShell:  "LINESTRING (0 0, 10 0, 10 5, 10 10, 0 10, 0 0)",
			wantLine:  planar.LineString{{0, 0}, {10, 0}, {10, 5}, {10, 10}, {0, 10}, {0, 0}},
			wantCount: 6,
		},
		{
			name:      "delete vertex",
			newShell:  "LINESTRING (0 0, 10 0, 10 10, 0 0)",
			wantLine:  planar.LineString{{0, 0}, {10, 0}, {10, 10}, {0, 0}},
			wantCount: 4,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			eight, poly := makeClosedLinePolygon()
			resp, err := newTestEngine().EditShell(poly, parseRing(test.newShell), []feature.Feature{eight})
			if err != nil {
				t.Fatalf("EditShell() error = %v", err)
			}
			if !resp.Valid {
				t.Error("EditShell() response is not valid")
			}

			lines := resp.Lines()
			if len(lines) != 1 || lines[0].Operation != feature.Replace {
				t.Fatalf("Lines() = %v, want one Replace line", lines)
			}
			got := lineByID(t, lines, "8")
			if len(got) != test.wantCount {
				t.Errorf("edited line has %d coordinates, want %d", len(got), test.wantCount)
			}
			if diff := cmp.Diff(test.wantLine, got); diff != "" {
				t.Errorf("edited line mismatch (-want +got):\n%s", diff)
			}

			polys := resp.Polygons()
			if len(polys) != 1 || polys[0].Operation != feature.Replace {
				t.Fatalf("Polygons() = %v, want one Replace polygon", polys)
			}
			if diff := cmp.Diff(poly.Exterior(), polys[0].Exterior()); diff != "" {
				t.Errorf("references changed (-want +got):\n%s", diff)
			}
			if p, _ := polys[0].Polygon(); !p.Shell.Equal(planar.Ring(test.wantLine)) {
				t.Errorf("polygon shell = %v, want %v", p.Shell, test.wantLine)
			}
		})
	}
}

func TestEditShellTwoLinesInteriorVertex(t *testing.T) {
	l1, l2, poly := makeTwoLinePolygon()
	newShell := parseRing("LINESTRING (0 0, 12 0, 10 10, 0 10, 0 0)")

	resp, err := newTestEngine().EditShell(poly, newShell, []feature.Feature{l1, l2})
	if err != nil {
		t.Fatalf("EditShell() error = %v", err)
	}
	lines := resp.Lines()
	if len(lines) != 1 || lines[0].ID() != "1" {
		t.Fatalf("Lines() = %v, want only line 1", lines)
	}
	want := planar.LineString{{0, 0}, {12, 0}, {10, 10}}
	if diff := cmp.Diff(want, lineByID(t, lines, "1")); diff != "" {
		t.Errorf("line 1 mismatch (-want +got):\n%s", diff)
	}
	if p, _ := resp.Polygons()[0].Polygon(); !p.Shell.Equal(newShell) {
		t.Errorf("polygon shell = %v, want %v", p.Shell, newShell)
	}
}

func TestEditShellSharedVertex(t *testing.T) {
	l1, l2, poly := makeTwoLinePolygon()
	newShell := parseRing("LINESTRING (0 0, 10 0, 11 11, 0 10, 0 0)")

	resp, err := newTestEngine().EditShell(poly, newShell, []feature.Feature{l1, l2})
	if err != nil {
		t.Fatalf("EditShell() error = %v", err)
	}
	if got := len(resp.WithOperation(feature.Replace)); got != 3 {
		t.Errorf("%d Replace features, want 3", got)
	}
	lines := resp.Lines()
	if len(lines) != 2 {
		t.Fatalf("Lines() = %v, want 2 lines", lines)
	}
	if diff := cmp.Diff(planar.LineString{{0, 0}, {10, 0}, {11, 11}}, lineByID(t, lines, "1")); diff != "" {
		t.Errorf("line 1 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(planar.LineString{{11, 11}, {0, 10}, {0, 0}}, lineByID(t, lines, "2")); diff != "" {
		t.Errorf("line 2 mismatch (-want +got):\n%s", diff)
	}
	if p, _ := resp.Polygons()[0].Polygon(); !p.Shell.Equal(newShell) {
		t.Errorf("polygon shell = %v, want %v", p.Shell, newShell)
	}
}

func TestEditShellUnchanged(t *testing.T) {
	l1, l2, poly := makeTwoLinePolygon()
	p, _ := poly.Polygon()
	resp, err := newTestEngine().EditShell(poly, p.Shell, []feature.Feature{l1, l2})
	if err != nil {
		t.Fatalf("EditShell() error = %v", err)
	}
	if !resp.Valid || len(resp.Affected) != 0 {
		t.Errorf("EditShell() = %+v, want valid response without features", resp)
	}
}

func TestEditShellRejects(t *testing.T) {
	l1, l2, poly := makeTwoLinePolygon()
	eight, poly8 := makeClosedLinePolygon()
	tests := []struct {
		name       string
		poly       feature.Feature
		newShell   string
		candidates []feature.Feature
		want       error
	}{
		{
			name:       "not a polygon",
			poly:       l1,
			newShell:   "LINESTRING (0 0, 10 0, 10 10, 0 0)",
			candidates: []feature.Feature{l1},
			want:       topoerr.ErrUnsupportedGeometry,
		},
		{
			name:       "two lines",
			poly:       poly,
			newShell:   "LINESTRING (0 0, 12 0, 10 10, -1 10, 0 0)",
			candidates: []feature.Feature{l1, l2},
			want:       topoerr.ErrNotImplemented,
		},
		{
			name:       "two vertices on one line",
			poly:       poly8,
			newShell:   "LINESTRING (0 0, 12 0, 10 10, -1 10, 0 0)",
			candidates: []feature.Feature{eight},
			want:       topoerr.ErrNotImplemented,
		},
		{
			name:       "line not among candidates",
			poly:       poly,
			newShell:   "LINESTRING (0 0, 12 0, 10 10, 0 10, 0 0)",
			candidates: []feature.Feature{l2},
			want:       topoerr.ErrReferenceNotFound,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := newTestEngine().EditShell(test.poly, parseRing(test.newShell), test.candidates)
			if !errors.Is(err, test.want) {
				t.Errorf("EditShell() error = %v, want %v", err, test.want)
			}
		})
	}
}

func TestEditShellDoesNotMutateInputs(t *testing.T) {
	l1, l2, poly := makeTwoLinePolygon()
	before := []feature.Feature{l1.Clone(), l2.Clone(), poly.Clone()}
	_, err := newTestEngine().EditShell(poly, parseRing("LINESTRING (0 0, 10 0, 11 11, 0 10, 0 0)"), []feature.Feature{l1, l2})
	if err != nil {
		t.Fatalf("EditShell() error = %v", err)
	}
	if diff := cmp.Diff(before, []feature.Feature{l1, l2, poly}); diff != "" {
		t.Errorf("inputs mutated (-before +after):\n%s", diff)
	}
}

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

// Package assemble builds polygons from collections of boundary lines.
//
// Lines are joined at their end nodes into closed rings. The ring that
// encloses all others becomes the shell, the rest become holes, and the
// returned polygon references the lines it was built from, with reversal
// flags set so the shell runs counter-clockwise and holes clockwise.
package assemble

import (
	"github.com/akhenakh/topology/feature"
	"github.com/akhenakh/topology/planar"
	"github.com/akhenakh/topology/topoerr"
)

// Options configures an Assembler.
type Options struct {
	// SnapRadius is the distance under which line end points are treated
	// as the same node. Zero requires exact equality.
	SnapRadius float64
	// NewID generates the local id of assembled polygons. Defaults to
	// feature.NewLocalID.
	NewID func() string
}

// DefaultOptions returns exact node matching and uuid local ids.
func DefaultOptions() *Options {
	return &Options{NewID: feature.NewLocalID}
}

// Assembler turns a set of boundary lines into a single polygon.
type Assembler struct {
	opts Options
}

// NewAssembler creates an assembler. A nil opts uses DefaultOptions.
func NewAssembler(opts *Options) *Assembler {
	if opts == nil {
		opts = DefaultOptions()
	}
	a := &Assembler{opts: *opts}
	if a.opts.NewID == nil {
		a.opts.NewID = feature.NewLocalID
	}
	return a
}

// Assemble joins lines into a polygon. centroidHint, when non-nil, picks
// the shell among rings whose nesting is ambiguous.
//
// The response lists the new polygon, tagged Create, followed by the
// input lines unchanged.
func (a *Assembler) Assemble(lines []feature.Feature, centroidHint *planar.Coord) (feature.Response, error) {
	if len(lines) == 0 {
		return feature.Response{}, topoerr.BadRequest("no lines to assemble")
	}

	b := NewBuilder(BuilderOptions{
		SnapFunction: NewIdentitySnapFunction(a.opts.SnapRadius),
	})
	var rings []Ring
	b.StartLayer(NewRingLayer(&rings))

	for _, f := range lines {
		id, err := f.LocalID()
		if err != nil {
			return feature.Response{}, err
		}
		if id == "" {
			return feature.Response{}, topoerr.MissingAttribute("line without local id")
		}
		ls, ok := f.LineString()
		if !ok {
			return feature.Response{}, topoerr.UnsupportedGeometry("feature %q is not a line", id)
		}
		if err := b.AddLine(id, ls); err != nil {
			return feature.Response{}, err
		}
	}
	if err := b.Build(); err != nil {
		return feature.Response{}, err
	}

	geoms := make([]planar.Ring, len(rings))
	for i, r := range rings {
		geoms[i] = r.Ring
	}
	relations, err := NewNestingQuery(geoms, &NestingQueryOptions{CentroidHint: centroidHint}).ComputeNesting()
	if err != nil {
		return feature.Response{}, err
	}

	var (
		poly      planar.Polygon
		exterior  []feature.Reference
		interiors [][]feature.Reference
	)
	for i, rel := range relations {
		if !rel.IsShell() {
			continue
		}
		poly.Shell, exterior = orient(rings[i], true)
		for _, h := range rel.Holes {
			ring, refs := orient(rings[h], false)
			poly.Holes = append(poly.Holes, ring)
			interiors = append(interiors, refs)
		}
	}

	out := feature.New(poly, a.opts.NewID()).
		WithReferences(exterior, interiors).
		WithOperation(feature.Create)

	resp := feature.Response{Affected: []feature.Feature{out}, Valid: true}
	resp.Affected = append(resp.Affected, lines...)
	return resp, nil
}

// orient returns the ring and its references running counter-clockwise
// when ccw is set, clockwise otherwise.
func orient(r Ring, ccw bool) (planar.Ring, []feature.Reference) {
	if r.Ring.IsCCW() == ccw {
		return r.Ring, r.Refs
	}
	return r.Ring.Reverse(), feature.ReverseReferences(r.Refs)
}

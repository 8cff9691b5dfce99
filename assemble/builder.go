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

package assemble

import (
	"github.com/akhenakh/topology/planar"
	"github.com/akhenakh/topology/topoerr"
)

// Builder is a tool for assembling rings from boundary lines.
// It snaps line end points into shared node sites and hands the resulting
// line graph to its layers.
type Builder struct {
	opts   BuilderOptions
	layers []Layer
	inputs []Line
}

// Line is a builder input: a boundary line and its local id.
type Line struct {
	ID     string
	Coords planar.LineString
}

// BuilderOptions controls the behavior of a Builder.
type BuilderOptions struct {
	SnapFunction SnapFunction
}

// NewBuilder creates a new Builder with the given options.
func NewBuilder(opts BuilderOptions) *Builder {
	if opts.SnapFunction == nil {
		opts.SnapFunction = NewIdentitySnapFunction(0)
	}
	return &Builder{
		opts: opts,
	}
}

// StartLayer starts a new output layer.
func (b *Builder) StartLayer(layer Layer) {
	b.layers = append(b.layers, layer)
}

// AddLine adds a boundary line to the builder.
func (b *Builder) AddLine(id string, coords planar.LineString) error {
	if len(coords) < 2 {
		return topoerr.BadRequest("line %q has %d coordinates, need at least 2", id, len(coords))
	}
	b.inputs = append(b.inputs, Line{ID: id, Coords: coords.Copy()})
	return nil
}

// Build snaps end points and assembles the lines into layers.
func (b *Builder) Build() error {
	// Map every line end point to a site (unique output node). Interior
	// vertices are never snapped.
	var sites []planar.Coord
	siteOf := func(c planar.Coord) int32 {
		snapped := b.opts.SnapFunction.SnapPoint(c)
		for i, site := range sites {
			if sitesAreClose(snapped, site, b.opts.SnapFunction.SnapRadius()) {
				return int32(i)
			}
		}
		sites = append(sites, snapped)
		return int32(len(sites) - 1)
	}

	edges := make([]GraphEdge, 0, len(b.inputs))
	for i, in := range b.inputs {
		edges = append(edges, GraphEdge{
			Src:   siteOf(in.Coords[0]),
			Dst:   siteOf(in.Coords[len(in.Coords)-1]),
			Input: int32(i),
		})
	}

	g := NewGraph(sites, edges)
	for _, layer := range b.layers {
		if err := layer.Build(g, b.inputs); err != nil {
			return err
		}
	}
	return nil
}

func sitesAreClose(a, b planar.Coord, radius float64) bool {
	if radius == 0 {
		return a == b
	}
	return a.Distance(b) <= radius
}

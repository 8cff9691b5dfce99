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

// NestingQueryOptions for NestingQuery.
type NestingQueryOptions struct {
	// CentroidHint, when set, picks the shell among rings containing it
	// if the rings alone do not settle which one is the shell.
	CentroidHint *planar.Coord
}

// RingRelation models the parent/child relationship between rings.
type RingRelation struct {
	ParentID int   // -1 if shell, otherwise index of the shell
	Holes    []int // Indices of rings that are holes of this ring
}

// IsShell returns true if the ring has no parent.
func (r RingRelation) IsShell() bool {
	return r.ParentID < 0
}

// IsHole returns true if the ring has a parent.
func (r RingRelation) IsHole() bool {
	return !r.IsShell()
}

// NestingQuery determines which of a set of rings is the shell of a single
// polygon; all other rings become its holes.
type NestingQuery struct {
	rings   []planar.Ring
	options NestingQueryOptions
}

// NewNestingQuery creates a new query for the given rings.
func NewNestingQuery(rings []planar.Ring, opts *NestingQueryOptions) *NestingQuery {
	if opts == nil {
		opts = &NestingQueryOptions{}
	}
	return &NestingQuery{
		rings:   rings,
		options: *opts,
	}
}

// ComputeNesting returns one relation per ring.
func (q *NestingQuery) ComputeNesting() ([]RingRelation, error) {
	if len(q.rings) == 0 {
		return nil, topoerr.BadRequest("no rings to nest")
	}
	shell, err := q.shell()
	if err != nil {
		return nil, err
	}
	relations := make([]RingRelation, len(q.rings))
	for i := range relations {
		if i == shell {
			relations[i].ParentID = -1
			continue
		}
		relations[i].ParentID = shell
		relations[shell].Holes = append(relations[shell].Holes, i)
	}
	return relations, nil
}

func (q *NestingQuery) shell() (int, error) {
	if len(q.rings) == 1 {
		return 0, nil
	}

	bounds := make([]planar.Rect, len(q.rings))
	areas := make([]float64, len(q.rings))
	for i, r := range q.rings {
		bounds[i] = r.Bound()
		areas[i] = r.Area()
	}

	// A ring encloses another when its bounds contain the other's bounds
	// and it is strictly larger.
	var candidates []int
	for i := range q.rings {
		enclosesAll := true
		for j := range q.rings {
			if i != j && !(bounds[i].ContainsRect(bounds[j]) && areas[i] > areas[j]) {
				enclosesAll = false
				break
			}
		}
		if enclosesAll {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	if hint := q.options.CentroidHint; hint != nil {
		best := -1
		for i, r := range q.rings {
			if !bounds[i].ContainsCoord(*hint) || !r.ContainsPoint(*hint) {
				continue
			}
			if best < 0 || areas[i] > areas[best] {
				best = i
			}
		}
		if best >= 0 {
			return best, nil
		}
	}
	return -1, topoerr.BadRequest("cannot determine the shell among %d rings", len(q.rings))
}

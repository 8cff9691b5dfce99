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

// Package ringdiff computes the point level corrections that turn one ring
// into another.
//
// A ring that had one vertex moved shows up as one deleted and one inserted
// coordinate. Diff pairs every deleted coordinate with the closest inserted
// one so that the move can be applied as a single edit of a boundary line.
//
// The pairing is greedy and does not consume candidates: two deleted
// coordinates may pair with the same inserted coordinate. Inserted
// coordinates that no pair claims are reported by Result.Unclaimed.
package ringdiff

import (
	"math"

	"github.com/akhenakh/topology/planar"
)

// Pair matches a coordinate removed from the old ring with the closest
// coordinate added in the new ring. Without a match the removal is a pure
// deletion.
type Pair struct {
	Old     planar.Coord
	New     planar.Coord
	Matched bool
}

// Result is the difference between two rings.
type Result struct {
	// Deleted lists coordinates of the old ring missing from the new one,
	// in old ring order, each once.
	Deleted []planar.Coord
	// Inserted lists coordinates of the new ring missing from the old one,
	// in new ring order, each once.
	Inserted []planar.Coord
	// Pairs holds one pair per deleted coordinate, in the same order.
	Pairs []Pair
}

// Diff compares two closed rings by coordinate value.
func Diff(oldRing, newRing planar.Ring) Result {
	res := Result{
		Deleted:  notIn(oldRing, newRing),
		Inserted: notIn(newRing, oldRing),
	}
	for _, c := range res.Deleted {
		p := Pair{Old: c}
		p.New, p.Matched = closest(res.Inserted, c)
		res.Pairs = append(res.Pairs, p)
	}
	return res
}

// IsEmpty reports whether both rings hold the same coordinates.
func (r Result) IsEmpty() bool {
	return len(r.Deleted) == 0 && len(r.Inserted) == 0
}

// Unclaimed returns the inserted coordinates that no pair matched, in new
// ring order. These are vertex insertions rather than moves.
func (r Result) Unclaimed() []planar.Coord {
	claimed := make(map[planar.Coord]bool, len(r.Pairs))
	for _, p := range r.Pairs {
		if p.Matched {
			claimed[p.New] = true
		}
	}
	var out []planar.Coord
	for _, c := range r.Inserted {
		if !claimed[c] {
			out = append(out, c)
		}
	}
	return out
}

// notIn returns the distinct coordinates of a that do not occur in b.
func notIn(a, b planar.Ring) []planar.Coord {
	var out []planar.Coord
	for _, c := range a.Distinct() {
		if !b.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// closest returns the candidate nearest to c. Ties go to the first
// candidate in order.
func closest(candidates []planar.Coord, c planar.Coord) (planar.Coord, bool) {
	best, bestDist := planar.Coord{}, math.Inf(1)
	found := false
	for _, cand := range candidates {
		if d := cand.Distance(c); d < bestDist {
			best, bestDist, found = cand, d, true
		}
	}
	return best, found
}

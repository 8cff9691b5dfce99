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

package planar

import "math"

// Ring is an ordered closed sequence of coordinates: the first coordinate
// is repeated as the last one.
type Ring []Coord

// IsClosed reports whether the ring has at least four coordinates and
// ends where it starts.
func (r Ring) IsClosed() bool {
	return len(r) >= 4 && r[0] == r[len(r)-1]
}

// NumVertices returns the number of distinct ring positions, i.e. the
// length without the closing coordinate.
func (r Ring) NumVertices() int {
	if len(r) == 0 {
		return 0
	}
	if r[0] == r[len(r)-1] {
		return len(r) - 1
	}
	return len(r)
}

// Vertex returns the i-th ring position, wrapping around so that
// Vertex(-1) is the last distinct vertex.
func (r Ring) Vertex(i int) Coord {
	n := r.NumVertices()
	return r[((i%n)+n)%n]
}

// Clone returns a copy of the ring.
func (r Ring) Clone() Ring {
	if r == nil {
		return nil
	}
	out := make(Ring, len(r))
	copy(out, r)
	return out
}

// Reverse returns the ring traversed in the opposite direction.
func (r Ring) Reverse() Ring {
	out := make(Ring, len(r))
	for i, c := range r {
		out[len(r)-1-i] = c
	}
	return out
}

// SignedArea returns the shoelace area of the ring, positive when the ring
// is counter-clockwise.
func (r Ring) SignedArea() float64 {
	if len(r) < 3 {
		return 0
	}
	var sum float64
	o := r[0]
	for i := 1; i+1 < len(r); i++ {
		sum += cross(o, r[i], r[i+1])
	}
	return sum / 2
}

// Area returns the absolute area enclosed by the ring.
func (r Ring) Area() float64 {
	return math.Abs(r.SignedArea())
}

// IsCCW reports whether the ring is counter-clockwise.
func (r Ring) IsCCW() bool {
	return r.SignedArea() > 0
}

// Equal reports whether both rings hold the same coordinates in the same
// order starting at the same position.
func (r Ring) Equal(o Ring) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if r[i] != o[i] {
			return false
		}
	}
	return true
}

// SameShape reports whether o describes the same closed ring as r,
// regardless of the starting vertex and of the traversal direction.
func (r Ring) SameShape(o Ring) bool {
	n := r.NumVertices()
	if n != o.NumVertices() {
		return false
	}
	if n == 0 {
		return true
	}
	for start := 0; start < n; start++ {
		if o.Vertex(start) != r[0] {
			continue
		}
		forward, backward := true, true
		for i := 0; i < n && (forward || backward); i++ {
			if forward && o.Vertex(start+i) != r[i] {
				forward = false
			}
			if backward && o.Vertex(start-i) != r[i] {
				backward = false
			}
		}
		if forward || backward {
			return true
		}
	}
	return false
}

// Contains reports whether c is one of the ring coordinates.
func (r Ring) Contains(c Coord) bool {
	return r.IndexOf(c) >= 0
}

// IndexOf returns the index of the first occurrence of c, or -1.
func (r Ring) IndexOf(c Coord) int {
	for i, rc := range r {
		if rc == c {
			return i
		}
	}
	return -1
}

// Distinct returns the ring coordinates in ring order with every
// coordinate listed once.
func (r Ring) Distinct() []Coord {
	var out []Coord
	seen := make(map[Coord]bool, len(r))
	for _, c := range r {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// Centroid returns the mean of the distinct ring vertices.
func (r Ring) Centroid() Coord {
	n := r.NumVertices()
	if n == 0 {
		return Coord{}
	}
	xs, ys := splitXY(r[:n])
	sx, sy := BaseSumCoords(xs, ys)
	return Coord{X: sx / float64(n), Y: sy / float64(n)}
}

// Bound returns the bounding rectangle of the ring.
func (r Ring) Bound() Rect {
	if len(r) == 0 {
		return Rect{}
	}
	xs, ys := splitXY(r)
	minX, maxX := BaseBatchMinMax(xs)
	minY, maxY := BaseBatchMinMax(ys)
	return Rect{Lo: Coord{minX, minY}, Hi: Coord{maxX, maxY}}
}

// ContainsPoint reports whether p lies strictly inside the ring, using ray
// casting. Points on the boundary may be reported either way.
func (r Ring) ContainsPoint(p Coord) bool {
	inside := false
	n := r.NumVertices()
	for i := 0; i < n; i++ {
		a, b := r.Vertex(i), r.Vertex(i+1)
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

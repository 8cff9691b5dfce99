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

// Package planar implements the two dimensional geometry used by the
// boundary topology packages: coordinates, closed rings, and the three
// feature geometries (Point, LineString and Polygon).
//
// Coordinates compare by value. Two rings are the same ring when they hold
// the same coordinates in the same cyclic order, in either direction.
package planar

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/spatial/r2"
)

// Coord is a 2D coordinate.
type Coord struct {
	X, Y float64
}

// Vec returns the coordinate as a gonum vector.
func (c Coord) Vec() r2.Vec {
	return r2.Vec{X: c.X, Y: c.Y}
}

// Distance returns the Euclidean distance between c and o.
func (c Coord) Distance(o Coord) float64 {
	return r2.Norm(r2.Sub(c.Vec(), o.Vec()))
}

func (c Coord) String() string {
	return fmt.Sprintf("%s %s", formatFloat(c.X), formatFloat(c.Y))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// cross returns the z component of (a - o) x (b - o).
func cross(o, a, b Coord) float64 {
	return r2.Cross(r2.Sub(a.Vec(), o.Vec()), r2.Sub(b.Vec(), o.Vec()))
}

// Rect is an axis aligned bounding rectangle.
type Rect struct {
	Lo, Hi Coord
}

// ContainsRect reports whether o lies inside r, boundary included.
func (r Rect) ContainsRect(o Rect) bool {
	return r.Lo.X <= o.Lo.X && r.Lo.Y <= o.Lo.Y && r.Hi.X >= o.Hi.X && r.Hi.Y >= o.Hi.Y
}

// ContainsCoord reports whether c lies inside r, boundary included.
func (r Rect) ContainsCoord(c Coord) bool {
	return c.X >= r.Lo.X && c.X <= r.Hi.X && c.Y >= r.Lo.Y && c.Y <= r.Hi.Y
}

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

import "strings"

// Kind identifies the geometry held by a feature.
type Kind int

const (
	KindPoint Kind = iota
	KindLineString
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindLineString:
		return "LineString"
	case KindPolygon:
		return "Polygon"
	}
	return "Unknown"
}

// Geometry is one of Point, LineString or Polygon. Collections are not
// geometries in this model.
type Geometry interface {
	Kind() Kind
	IsEmpty() bool
	// Clone returns a deep copy of the geometry.
	Clone() Geometry
	// Equal reports coordinate for coordinate equality.
	Equal(o Geometry) bool
	String() string

	privateInterface()
}

var (
	_ Geometry = Point{}
	_ Geometry = LineString(nil)
	_ Geometry = Polygon{}
)

// Point is a single coordinate. A Point is never empty.
type Point struct {
	Coord
}

func (p Point) Kind() Kind      { return KindPoint }
func (p Point) IsEmpty() bool   { return false }
func (p Point) Clone() Geometry { return p }
func (p Point) String() string  { return "POINT (" + p.Coord.String() + ")" }

func (p Point) privateInterface() {}

func (p Point) Equal(o Geometry) bool {
	op, ok := o.(Point)
	return ok && op.Coord == p.Coord
}

// LineString is an open or closed sequence of coordinates.
type LineString []Coord

func (l LineString) Kind() Kind    { return KindLineString }
func (l LineString) IsEmpty() bool { return len(l) == 0 }

func (l LineString) privateInterface() {}

func (l LineString) Clone() Geometry {
	return l.Copy()
}

// Copy returns a copy of the line as a LineString.
func (l LineString) Copy() LineString {
	if l == nil {
		return nil
	}
	out := make(LineString, len(l))
	copy(out, l)
	return out
}

func (l LineString) Equal(o Geometry) bool {
	ol, ok := o.(LineString)
	return ok && Ring(l).Equal(Ring(ol))
}

// IsClosed reports whether the line ends where it starts.
func (l LineString) IsClosed() bool {
	return len(l) > 1 && l[0] == l[len(l)-1]
}

// Reverse returns the line traversed in the opposite direction.
func (l LineString) Reverse() LineString {
	return LineString(Ring(l).Reverse())
}

func (l LineString) String() string {
	if l.IsEmpty() {
		return "LINESTRING EMPTY"
	}
	return "LINESTRING " + formatCoords(l)
}

// Polygon is a shell with zero or more holes. The zero Polygon is empty.
type Polygon struct {
	Shell Ring
	Holes []Ring
}

func (p Polygon) Kind() Kind    { return KindPolygon }
func (p Polygon) IsEmpty() bool { return len(p.Shell) == 0 }

func (p Polygon) privateInterface() {}

func (p Polygon) Clone() Geometry {
	return p.Copy()
}

// Copy returns a deep copy of the polygon.
func (p Polygon) Copy() Polygon {
	out := Polygon{Shell: p.Shell.Clone()}
	if p.Holes != nil {
		out.Holes = make([]Ring, len(p.Holes))
		for i, h := range p.Holes {
			out.Holes[i] = h.Clone()
		}
	}
	return out
}

func (p Polygon) Equal(o Geometry) bool {
	op, ok := o.(Polygon)
	if !ok || !p.Shell.Equal(op.Shell) || len(p.Holes) != len(op.Holes) {
		return false
	}
	for i := range p.Holes {
		if !p.Holes[i].Equal(op.Holes[i]) {
			return false
		}
	}
	return true
}

// Normalized returns the polygon with a counter-clockwise shell and
// clockwise holes. Rings already oriented are left untouched.
func (p Polygon) Normalized() Polygon {
	out := p.Copy()
	if len(out.Shell) > 0 && !out.Shell.IsCCW() {
		out.Shell = out.Shell.Reverse()
	}
	for i, h := range out.Holes {
		if h.IsCCW() {
			out.Holes[i] = h.Reverse()
		}
	}
	return out
}

func (p Polygon) String() string {
	if p.IsEmpty() {
		return "POLYGON EMPTY"
	}
	parts := []string{formatCoords(p.Shell)}
	for _, h := range p.Holes {
		parts = append(parts, formatCoords(h))
	}
	return "POLYGON (" + strings.Join(parts, ", ") + ")"
}

func formatCoords(cs []Coord) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range cs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

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

package feature

import "strings"

// ReversedPrefix marks a signed reference string whose line must be
// traversed backwards.
const ReversedPrefix = "-"

// Reference points from a polygon to one of its boundary lines.
type Reference struct {
	TargetID string
	// Reversed means the line's coordinates are traversed in reverse to
	// obtain the ring's direction.
	Reversed bool
}

// ParseReference parses a signed reference string such as "-id".
func ParseReference(s string) Reference {
	return Reference{TargetID: StripSign(s), Reversed: HasReversedSign(s)}
}

// String returns the signed reference string.
func (r Reference) String() string {
	if r.Reversed {
		return ReversedPrefix + r.TargetID
	}
	return r.TargetID
}

// Flip returns the reference with the opposite direction.
func (r Reference) Flip() Reference {
	return Reference{TargetID: r.TargetID, Reversed: !r.Reversed}
}

// StripSign returns the local id of a signed reference string.
func StripSign(s string) string {
	return strings.TrimPrefix(s, ReversedPrefix)
}

// HasReversedSign reports whether a signed reference string is reversed.
func HasReversedSign(s string) bool {
	return strings.HasPrefix(s, ReversedPrefix)
}

// ParseReferences parses a list of signed reference strings.
func ParseReferences(ss []string) []Reference {
	if ss == nil {
		return nil
	}
	refs := make([]Reference, len(ss))
	for i, s := range ss {
		refs[i] = ParseReference(s)
	}
	return refs
}

// ReverseReferences returns refs describing the same ring traversed in the
// opposite direction: the order is reversed and every sign flipped.
func ReverseReferences(refs []Reference) []Reference {
	out := make([]Reference, len(refs))
	for i, r := range refs {
		out[len(refs)-1-i] = r.Flip()
	}
	return out
}

// References lists the boundary lines of a polygon: one list for the shell
// and one list per hole.
type References struct {
	Exterior  []Reference
	Interiors [][]Reference
}

// Clone returns a deep copy of the references.
func (r *References) Clone() *References {
	if r == nil {
		return nil
	}
	out := &References{Exterior: cloneRefs(r.Exterior)}
	if r.Interiors != nil {
		out.Interiors = make([][]Reference, len(r.Interiors))
		for i, hole := range r.Interiors {
			out.Interiors[i] = cloneRefs(hole)
		}
	}
	return out
}

// IDs returns every referenced local id, shell first, without signs.
func (r *References) IDs() []string {
	if r == nil {
		return nil
	}
	var ids []string
	for _, ref := range r.Exterior {
		ids = append(ids, ref.TargetID)
	}
	for _, hole := range r.Interiors {
		for _, ref := range hole {
			ids = append(ids, ref.TargetID)
		}
	}
	return ids
}

// Refers reports whether id is referenced by the shell or a hole.
func (r *References) Refers(id string) bool {
	for _, other := range r.IDs() {
		if other == id {
			return true
		}
	}
	return false
}

func cloneRefs(refs []Reference) []Reference {
	if refs == nil {
		return nil
	}
	out := make([]Reference, len(refs))
	copy(out, refs)
	return out
}

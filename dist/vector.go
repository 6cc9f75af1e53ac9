/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dist

import "github.com/fentec-project/randvar/source"

// Vector is an ordered composition of distributions sampled as one
// unit. Sampling a Vector draws one independent variate per child,
// in child order. A Vector produces a slice rather than a scalar,
// so it is composed with other Vectors through Extend and Join,
// which always concatenate children flat, never nest.
type Vector struct {
	children []Dist
}

// Compose returns a Vector with one child per argument, in argument
// order.
func Compose(children ...Dist) *Vector {
	c := make([]Dist, len(children))
	copy(c, children)

	return &Vector{children: c}
}

// Extend returns a new Vector with the given distributions appended
// after the receiver's children. The receiver is not modified.
func (v *Vector) Extend(children ...Dist) *Vector {
	c := make([]Dist, 0, len(v.children)+len(children))
	c = append(c, v.children...)
	c = append(c, children...)

	return &Vector{children: c}
}

// Join returns a new Vector whose children are the receiver's
// children followed by the children of the given vectors, left to
// right. The result is flat regardless of how the operands were
// built.
func (v *Vector) Join(others ...*Vector) *Vector {
	n := len(v.children)
	for _, o := range others {
		n += len(o.children)
	}

	c := make([]Dist, 0, n)
	c = append(c, v.children...)
	for _, o := range others {
		c = append(c, o.children...)
	}

	return &Vector{children: c}
}

// Len returns the dimensionality of the vector.
func (v *Vector) Len() int {
	return len(v.children)
}

// At returns the child at position i.
func (v *Vector) At(i int) Dist {
	return v.children[i]
}

// Sample returns a slice with one fresh variate per child, in child
// order. Every call resamples every position; no shared randomness
// between positions, no caching between calls.
func (v *Vector) Sample(src source.Source) ([]float64, error) {
	if len(v.children) == 0 {
		return nil, ErrEmpty
	}

	out := make([]float64, len(v.children))
	var err error
	for i, d := range v.children {
		out[i], err = d.Sample(src)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

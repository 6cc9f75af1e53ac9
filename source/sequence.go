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

package source

import "github.com/pkg/errors"

// Sequence replays a fixed script of uniform values and fails with
// ErrDepleted once the script is exhausted. It exists for tests and
// replay scenarios where every draw must be prescribed exactly.
// Not safe for concurrent use.
type Sequence struct {
	values []float64
	pos    int
}

// NewSequence returns an instance of the Sequence source replaying
// the given values in order. Each value must lie in [0, 1).
func NewSequence(values ...float64) (*Sequence, error) {
	for i, v := range values {
		if v < 0 || v >= 1 {
			return nil, errors.Wrapf(ErrBadValue, "value %v at position %d", v, i)
		}
	}
	vals := make([]float64, len(values))
	copy(vals, values)

	return &Sequence{values: vals}, nil
}

// Float64 returns the next scripted value.
func (s *Sequence) Float64() (float64, error) {
	if s.pos >= len(s.values) {
		return 0, errors.Wrapf(ErrDepleted, "after %d draws", s.pos)
	}
	v := s.values[s.pos]
	s.pos++
	return v, nil
}

// NonzeroFloat64 returns the next scripted value strictly greater
// than 0, skipping over scripted zeros.
func (s *Sequence) NonzeroFloat64() (float64, error) {
	return nonzero(s)
}

// Remaining reports how many scripted values are left.
func (s *Sequence) Remaining() int {
	return len(s.values) - s.pos
}

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

import "math/rand"

// Pseudo draws uniform values from a seeded math/rand generator.
// The stream is fully determined by the seed, which makes Pseudo the
// source of choice for simulations and statistical tests. Not safe
// for concurrent use; give each goroutine its own instance.
type Pseudo struct {
	r *rand.Rand
}

// NewPseudo returns an instance of the Pseudo source seeded with
// the given seed.
func NewPseudo(seed int64) *Pseudo {
	return &Pseudo{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a fresh uniform value in [0, 1).
func (p *Pseudo) Float64() (float64, error) {
	return p.r.Float64(), nil
}

// NonzeroFloat64 returns a fresh uniform value in (0, 1).
func (p *Pseudo) NonzeroFloat64() (float64, error) {
	return nonzero(p)
}

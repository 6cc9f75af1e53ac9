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

import (
	"github.com/pkg/errors"

	"github.com/fentec-project/randvar/source"
)

// DefaultWeight is the weight given to an arm when none is set.
const DefaultWeight = 1

// arm is one weighted alternative inside an Alternative.
type arm struct {
	d      Dist
	weight float64
}

// Alternative picks among weighted alternative distributions at
// sampling time by roulette-wheel selection: each arm is chosen
// with probability proportional to its weight, and the chosen arm
// is sampled recursively. Arms keep insertion order, which is the
// tie-break order of the selection walk.
//
// Or and SetWeight mutate the Alternative in place and are not safe
// for concurrent use with Sample or with each other; callers
// needing that must synchronize externally.
type Alternative struct {
	arms []arm
}

// Either returns an Alternative with one arm per argument, in
// argument order, each with DefaultWeight.
func Either(first Dist, rest ...Dist) *Alternative {
	arms := make([]arm, 0, 1+len(rest))
	arms = append(arms, arm{d: first, weight: DefaultWeight})
	for _, d := range rest {
		arms = append(arms, arm{d: d, weight: DefaultWeight})
	}

	return &Alternative{arms: arms}
}

// Or appends an arm with DefaultWeight to the same Alternative and
// returns the receiver, so chained calls extend one flat arm set
// instead of nesting alternatives.
func (a *Alternative) Or(d Dist) *Alternative {
	a.arms = append(a.arms, arm{d: d, weight: DefaultWeight})
	return a
}

// Len returns the number of arms.
func (a *Alternative) Len() int {
	return len(a.arms)
}

// Weight returns the weight of arm i.
func (a *Alternative) Weight(i int) float64 {
	return a.arms[i].weight
}

// SetWeight sets the weight of arm i. It requires w > 0. The change
// affects only subsequent samples.
func (a *Alternative) SetWeight(i int, w float64) error {
	if i < 0 || i >= len(a.arms) {
		return errors.Wrapf(ErrBadParam, "arm index %d of %d", i, len(a.arms))
	}
	if w <= 0 {
		return errors.Wrapf(ErrBadParam, "arm weight %v", w)
	}

	a.arms[i].weight = w
	return nil
}

// Sample selects an arm by roulette wheel and samples it. The walk
// subtracts arm weights from a draw in [0, total) in insertion
// order; the first arm driving the remainder to or below zero wins.
func (a *Alternative) Sample(src source.Source) (float64, error) {
	if len(a.arms) == 0 {
		return 0, ErrEmpty
	}

	total := 0.0
	for _, m := range a.arms {
		total += m.weight
	}

	u, err := src.Float64()
	if err != nil {
		return 0, err
	}

	r := u * total
	for _, m := range a.arms {
		r -= m.weight
		if r <= 0 {
			return m.d.Sample(src)
		}
	}
	// Rounding can leave a sliver of remainder after the last arm.
	return a.arms[len(a.arms)-1].d.Sample(src)
}

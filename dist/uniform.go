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

// Default parameters of the Uniform distribution.
const (
	DefaultUniformMin = 0
	DefaultUniformMax = 1
)

// Uniform generates variates distributed uniformly over the
// interval [min, max).
type Uniform struct {
	min float64
	max float64
}

// NewUniform returns an instance of the Uniform generator over
// [min, max). It requires min < max.
func NewUniform(min, max float64) (*Uniform, error) {
	if min >= max {
		return nil, errors.Wrapf(ErrBadParam, "uniform bounds [%v, %v)", min, max)
	}

	return &Uniform{
		min: min,
		max: max,
	}, nil
}

// Sample returns a fresh variate in [min, max).
func (u *Uniform) Sample(src source.Source) (float64, error) {
	v, err := src.Float64()
	if err != nil {
		return 0, err
	}
	return (u.max-u.min)*v + u.min, nil
}

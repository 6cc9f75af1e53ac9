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
	"math"

	"github.com/pkg/errors"

	"github.com/fentec-project/randvar/source"
)

// DefaultExponentialRate is the default rate of the Exponential
// distribution.
const DefaultExponentialRate = 1

// Exponential generates variates from the exponential distribution
// with the given rate. The mean of the distribution is 1/rate.
type Exponential struct {
	rate float64
}

// NewExponential returns an instance of the Exponential generator.
// It requires rate > 0.
func NewExponential(rate float64) (*Exponential, error) {
	if rate <= 0 {
		return nil, errors.Wrapf(ErrBadParam, "exponential rate %v", rate)
	}

	return &Exponential{rate: rate}, nil
}

// Sample returns a fresh variate by inverting the exponential CDF
// on a nonzero uniform draw, so the logarithm is always defined.
func (e *Exponential) Sample(src source.Source) (float64, error) {
	u, err := src.NonzeroFloat64()
	if err != nil {
		return 0, err
	}
	return -math.Log(u) / e.rate, nil
}

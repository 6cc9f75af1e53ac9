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

	"github.com/fentec-project/randvar/source"
)

// Logistic generates variates from the standard logistic
// distribution (location 0, scale 1).
type Logistic struct{}

// NewLogistic returns an instance of the Logistic generator.
func NewLogistic() *Logistic {
	return &Logistic{}
}

// Sample returns a fresh variate by inverting the logistic CDF on a
// nonzero uniform draw.
func (l *Logistic) Sample(src source.Source) (float64, error) {
	u, err := src.NonzeroFloat64()
	if err != nil {
		return 0, err
	}
	return -math.Log(1/u - 1), nil
}

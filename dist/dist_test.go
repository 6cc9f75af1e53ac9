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

package dist_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/fentec-project/randvar/dist"
	"github.com/fentec-project/randvar/source"
)

const numSamples = 10000

// paramBounds are the acceptance intervals for the empirical
// moments of a sampler's output.
type paramBounds struct {
	meanLow  float64
	meanHigh float64
	devLow   float64
	devHigh  float64
}

// draw collects n variates from d.
func draw(t *testing.T, d dist.Dist, src source.Source, n int) []float64 {
	vec := make([]float64, n)
	var err error
	for i := 0; i < n; i++ {
		vec[i], err = d.Sample(src)
		require.NoError(t, err)
	}
	return vec
}

// testDistSampler checks that the empirical mean and standard
// deviation of d land within the expected bounds.
func testDistSampler(t *testing.T, d dist.Dist, expect paramBounds) {
	src := source.NewPseudo(42)
	vec := draw(t, d, src, numSamples)

	me := stat.Mean(vec, nil)
	dev := stat.StdDev(vec, nil)

	require.True(t, me > expect.meanLow, "mean %v is too small", me)
	require.True(t, me < expect.meanHigh, "mean %v is too big", me)
	require.True(t, dev > expect.devLow, "deviation %v is too small", dev)
	require.True(t, dev < expect.devHigh, "deviation %v is too big", dev)
}

// seq builds a scripted source or fails the test.
func seq(t *testing.T, values ...float64) *source.Sequence {
	s, err := source.NewSequence(values...)
	require.NoError(t, err)
	return s
}

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

// Default parameters of the Gamma distribution.
const (
	DefaultGammaOrder = 1
	DefaultGammaScale = 1
)

// marsagliaMinOrder is the integer order from which the
// sum-of-exponentials construction gives way to Marsaglia's
// rejection method.
const marsagliaMinOrder = 12

// Gamma generates variates from the gamma distribution with the
// given order (shape) and scale. The mean of the distribution is
// order*scale. An integer order is sampled as a sum of unit
// exponentials for small orders and with Marsaglia's rejection
// method for large ones; a fractional order uses the Ahrens-Dieter
// GS rejection algorithm; a mixed order adds an integer-order and a
// fractional-order variate.
type Gamma struct {
	order float64
	scale float64
	// whole is the integer part of order, derived at construction.
	whole int
}

// NewGamma returns an instance of the Gamma generator. It requires
// order > 0 and scale > 0.
func NewGamma(order, scale float64) (*Gamma, error) {
	if order <= 0 {
		return nil, errors.Wrapf(ErrBadParam, "gamma order %v", order)
	}
	if scale <= 0 {
		return nil, errors.Wrapf(ErrBadParam, "gamma scale %v", scale)
	}

	return &Gamma{
		order: order,
		scale: scale,
		whole: int(math.Floor(order)),
	}, nil
}

// Sample returns a fresh variate.
func (g *Gamma) Sample(src source.Source) (float64, error) {
	switch {
	case g.order == float64(g.whole):
		x, err := gammaWhole(src, g.whole)
		if err != nil {
			return 0, err
		}
		return g.scale * x, nil
	case g.whole == 0:
		x, err := gammaFrac(src, g.order)
		if err != nil {
			return 0, err
		}
		return g.scale * x, nil
	default:
		w, err := gammaWhole(src, g.whole)
		if err != nil {
			return 0, err
		}
		f, err := gammaFrac(src, g.order-float64(g.whole))
		if err != nil {
			return 0, err
		}
		return g.scale * (w + f), nil
	}
}

// gammaWhole samples a gamma variate with integer order n and unit
// scale. For n below marsagliaMinOrder the variate is the sum of n
// unit exponentials, taken as the log of a product of nonzero
// uniforms.
func gammaWhole(src source.Source, n int) (float64, error) {
	if n >= marsagliaMinOrder {
		return gammaLarge(src, n)
	}

	prod := 1.0
	for i := 0; i < n; i++ {
		u, err := src.NonzeroFloat64()
		if err != nil {
			return 0, err
		}
		prod *= u
	}
	return -math.Log(prod), nil
}

// gammaLarge samples a gamma variate with large integer order n and
// unit scale using Marsaglia's rejection method: a shifted, scaled
// tangent-distributed proposal accepted against the gamma density.
func gammaLarge(src source.Source, n int) (float64, error) {
	sq := math.Sqrt(float64(2*n - 1))

	for i := 0; i < maxReject; i++ {
		u, err := src.Float64()
		if err != nil {
			return 0, err
		}
		y := math.Tan(math.Pi * u)
		x := sq*y + float64(n-1)
		if x <= 0 {
			continue
		}

		v, err := src.Float64()
		if err != nil {
			return 0, err
		}
		if v <= (1+y*y)*math.Exp(float64(n-1)*math.Log(x/float64(n-1))-sq*y) {
			return x, nil
		}
	}
	return 0, errors.Wrapf(ErrNoAccept, "gamma order %d", n)
}

// gammaFrac samples a gamma variate with order in (0, 1) and unit
// scale using the Ahrens-Dieter GS rejection algorithm.
func gammaFrac(src source.Source, order float64) (float64, error) {
	p := math.E / (order + math.E)

	for i := 0; i < maxReject; i++ {
		u, err := src.Float64()
		if err != nil {
			return 0, err
		}
		v, err := src.NonzeroFloat64()
		if err != nil {
			return 0, err
		}

		var x, q float64
		if u < p {
			x = math.Pow(v, 1/order)
			q = math.Exp(-x)
		} else {
			x = 1 - math.Log(v)
			q = math.Pow(x, order-1)
		}

		w, err := src.Float64()
		if err != nil {
			return 0, err
		}
		if w < q {
			return x, nil
		}
	}
	return 0, errors.Wrapf(ErrNoAccept, "gamma order %v", order)
}

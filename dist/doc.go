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

// Package dist includes composable generators of random variates
// from different probability distributions.
//
// Package dist provides the Dist interface along with primitive
// distributions implementing it (Gaussian, Uniform, Logistic,
// Exponential, Gamma, constants and caller-supplied generators) and
// two combinators for building composite generators out of existing
// ones: Compose bundles distributions into a fixed-order vector of
// independent samples, and Either picks among weighted alternative
// distributions at sampling time. Combinators accept any Dist,
// including other composites, so trees of arbitrary depth can be
// built and sampled repeatedly.
//
// All randomness is drawn from a source.Source passed to Sample,
// so a whole tree can be switched between cryptographic, seeded and
// scripted randomness by the caller.
package dist

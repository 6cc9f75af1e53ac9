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

// Dist is a generator of scalar random variates. Sample draws all
// randomness from src and returns a fresh, independent variate on
// every call; no sampling history is retained. A Dist is safe for
// concurrent Sample calls as long as each goroutine threads its own
// source and the tree is not mutated concurrently.
type Dist interface {
	Sample(src source.Source) (float64, error)
}

// maxReject bounds the iterations of the rejection-sampling loops.
// Expected acceptance takes one or two iterations, so exhausting
// the budget indicates a broken uniform source.
const maxReject = 1 << 16

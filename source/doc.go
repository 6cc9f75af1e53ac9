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

// Package source provides uniform randomness sources for the
// distribution samplers.
//
// Package source defines the Source interface along with
// implementations backed by the OS entropy pool, by a seeded
// pseudo-random generator, by a keyed salsa20 keystream, and by a
// fixed scripted sequence. Every draw of randomness made by the
// dist package goes through a Source, so swapping the
// implementation changes the randomness of a whole distribution
// tree at once.
package source

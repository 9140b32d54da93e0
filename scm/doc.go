/*
 * Copyright (c) 2020 The sempler authors
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

// Package scm provides structural causal models to sample from.
//
// A structural causal model generates each variable as a function of
// its direct causes (parents) in a directed acyclic graph plus an
// independent noise term. The package offers two model families:
// LGANM, a linear model with Gaussian additive noise whose entailed
// distribution is available in closed form, and ANM, a general
// additive noise model with arbitrary assignment functions and noise
// distributions.
//
// Both families support do, shift and noise interventions, built
// with NewIntervention and passed to the sampling methods.
package scm

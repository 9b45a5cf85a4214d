// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

import (
	"hash/fnv"
	"math"
	"strconv"
)

// Wall-clock sampling: decorative infinite animations (sparkle twinkle,
// shimmer sweeps, moving gradients, spinner rotation) derive their value
// from the host's monotonic time instead of integrating frame deltas.
// Two instances sampling the same clock stay in lockstep and skipped
// repaints cause no drift; the trade is that they cannot pause.

// RotationAt returns a rotation angle in radians at time t seconds,
// advancing speed full turns per second.
func RotationAt(t, speed float64) float64 {
	return math.Mod(t*speed*2*math.Pi, 2*math.Pi)
}

// Pulse returns a smooth 0-1 oscillation at time t with the given
// frequency in cycles per second.
func Pulse(t, frequency float64) float64 {
	return (math.Sin(2*math.Pi*t*frequency) + 1) / 2
}

// Saw returns a 0-1 ramp repeating `frequency` times per second, the
// shimmer-sweep phase.
func Saw(t, frequency float64) float64 {
	p := math.Mod(t*frequency, 1)
	if p < 0 {
		p += 1
	}
	return p
}

// Triangle returns a 0-1-0 ping-pong ramp at the given frequency.
func Triangle(t, frequency float64) float64 {
	p := math.Mod(t*frequency, 2)
	if p < 0 {
		p += 2
	}
	if p > 1 {
		return 2 - p
	}
	return p
}

// Phase returns a stable pseudo-random phase offset in [0,1) for the given
// seed. Sparkle fields hand each particle its index so every particle
// twinkles on its own schedule while staying deterministic across frames.
func Phase(seed uint64) float64 {
	h := fnv.New64a()
	h.Write([]byte(strconv.FormatUint(seed, 16)))
	return float64(h.Sum64()%1_000_000) / 1_000_000
}

// Twinkle combines Pulse and Phase: a per-seed 0-1 oscillation at the
// given frequency, offset so a field of seeds shimmers instead of blinking
// in unison.
func Twinkle(t, frequency float64, seed uint64) float64 {
	return Pulse(t+Phase(seed)/frequency, frequency)
}

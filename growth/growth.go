// Package growth converts a volume ratio into the number of doublings and the
// time a doubling object needs to reach a target volume.
//
// Volumes are float64. initial·2^k is computed with math.Ldexp, so a series
// that runs past math.MaxFloat64 ends in +Inf instead of failing.
package growth

import "math"

const secondsPerMinute = 60

func Compute(q Query) Result {
	return ComputeTimeToVolume(q.TargetVolume, q.InitialVolume, q.DoublingPeriod)
}

// ComputeTimeToVolume returns the zero Result when initialVolume <= 0, when
// targetVolume <= initialVolume, or when either volume is not finite.
// doublingPeriod must be positive.
func ComputeTimeToVolume(targetVolume, initialVolume Volume, doublingPeriod DoublingPeriod) Result {
	if !finite(targetVolume) || !finite(initialVolume) {
		return Result{}
	}

	if initialVolume <= 0 || targetVolume <= initialVolume {
		return Result{}
	}

	n := Duplications(targetVolume, initialVolume)

	series := make([]Sample, 0, n+1)
	for k := 0; k <= n; k++ {
		series = append(series, Sample{
			ElapsedMinutes: float64(k) * doublingPeriod / secondsPerMinute,
			Volume:         math.Ldexp(initialVolume, k),
			Duplication:    k,
		})
	}

	return Result{
		TotalMinutes: float64(n) * doublingPeriod / secondsPerMinute,
		Duplications: n,
		Series:       series,
	}
}

// Duplications is the smallest n >= 0 with initialVolume·2^n >= targetVolume.
// Callers guarantee 0 < initialVolume < targetVolume, both finite.
func Duplications(targetVolume, initialVolume Volume) int {
	l := math.Log2(targetVolume / initialVolume)
	if math.IsInf(l, 0) {
		l = math.Log2(targetVolume) - math.Log2(initialVolume)
	}

	n := int(math.Ceil(l))
	if n < 0 {
		n = 0
	}

	// log2 of a rounded ratio can land one step off near powers of two.
	for n > 0 && math.Ldexp(initialVolume, n-1) >= targetVolume {
		n--
	}

	for math.Ldexp(initialVolume, n) < targetVolume {
		n++
	}

	return n
}

func GrowthFactor(n int) float64 {
	return math.Ldexp(1, n)
}

type Factor struct {
	Duplications int
	Factor       float64
}

// FactorSeries lists 2^n for n = 0, step, 2·step, ... up to max.
func FactorSeries(max, step int) (fs []Factor) {
	if step <= 0 || max < 0 {
		return
	}

	for n := 0; n <= max; n += step {
		fs = append(fs, Factor{
			Duplications: n,
			Factor:       GrowthFactor(n),
		})
	}

	return
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

package growth

import (
	"math"
	"time"
)

// Volume in cubic meters.
type Volume = float64

// DoublingPeriod in seconds.
type DoublingPeriod = float64

type Query struct {
	TargetVolume   Volume         `yaml:"targetVolume"`
	InitialVolume  Volume         `yaml:"initialVolume"`
	DoublingPeriod DoublingPeriod `yaml:"doublingPeriod"`
}

type Sample struct {
	ElapsedMinutes float64 `yaml:"minutes"`
	Volume         Volume  `yaml:"volume"`
	Duplication    int     `yaml:"n"`
}

type Result struct {
	TotalMinutes float64
	Duplications int
	Series       []Sample
}

func (r Result) Degenerate() bool {
	return r.Duplications == 0 && len(r.Series) == 0
}

func (r Result) TotalSeconds() float64 {
	return r.TotalMinutes * 60
}

func (r Result) TotalHours() float64 {
	return r.TotalMinutes / 60
}

func (r Result) TotalDays() float64 {
	return r.TotalHours() / 24
}

// Duration saturates at the largest time.Duration.
func (r Result) Duration() time.Duration {
	ns := r.TotalSeconds() * float64(time.Second)
	if ns >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(ns)
}

func (r Result) Final() (s Sample, ok bool) {
	if len(r.Series) == 0 {
		return
	}

	s = r.Series[len(r.Series)-1]
	ok = true

	return
}

package scenario

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libgrowth/growth"
	"github.com/spf13/cast"
)

type Waypoint struct {
	Reference Reference
	Result    growth.Result
}

type Outcome struct {
	Scenario  Scenario
	Initial   Reference
	Target    Reference
	Result    growth.Result
	Waypoints []Waypoint
}

// Ratio of target to initial volume.
func (o Outcome) Ratio() float64 {
	if o.Initial.Volume <= 0 {
		return 0
	}

	return o.Target.Volume / o.Initial.Volume
}

type Runner interface {
	RunID() string

	Run(key string) (Outcome, error)
	RunAll() ([]Outcome, error)
	// Targets measures every chart target from the chart's starting volume.
	// Targets not larger than the start are left out.
	Targets() ([]Waypoint, error)

	CacheStats() (hits, misses uint64)
}

func NewRunner(catalog *Catalog, logger l.Wrapper) Runner {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if catalog == nil {
		logger.Error("no catalog")

		return nil
	}

	runID := uuid.NewString()

	return &runnerImpl{
		logger:  logger.WithFields(l.StringField(l.ClsKey, "runnerImpl"), l.StringField("runID", runID)),
		catalog: catalog,
		runID:   runID,
		results: cache.New(cache.NoExpiration, 0),
	}
}

type runnerImpl struct {
	logger  l.Wrapper
	catalog *Catalog
	runID   string

	results *cache.Cache
	hits    uint64
	misses  uint64
}

func (impl *runnerImpl) RunID() string {
	return impl.runID
}

func (impl *runnerImpl) Run(key string) (o Outcome, err error) {
	s, ok := impl.catalog.Scenario(key)
	if !ok {
		err = fmt.Errorf("scenario %q: %w", key, commerr.ErrNotFound)

		return
	}

	o.Scenario = s
	o.Initial, _ = impl.catalog.Volume(s.Initial)
	o.Target, _ = impl.catalog.Volume(s.Target)
	o.Result = impl.compute(o.Target.Volume, o.Initial.Volume)

	for _, wKey := range s.Waypoints {
		ref, _ := impl.catalog.Volume(wKey)
		if ref.Volume <= o.Initial.Volume {
			continue
		}

		o.Waypoints = append(o.Waypoints, Waypoint{
			Reference: ref,
			Result:    impl.compute(ref.Volume, o.Initial.Volume),
		})
	}

	impl.logger.WithFields(l.StringField("scenario", key), l.IntField("duplications", o.Result.Duplications),
		l.StringField("minutes", cast.ToString(o.Result.TotalMinutes))).Debug("scenario computed")

	return
}

func (impl *runnerImpl) RunAll() (outcomes []Outcome, err error) {
	for _, s := range impl.catalog.Scenarios() {
		o, e := impl.Run(s.Key)
		if e != nil {
			err = e

			return
		}

		outcomes = append(outcomes, o)
	}

	return
}

func (impl *runnerImpl) Targets() (ws []Waypoint, err error) {
	ch := impl.catalog.Chart()

	from, ok := impl.catalog.Volume(ch.TargetsFrom)
	if !ok {
		err = fmt.Errorf("targets from %q: %w", ch.TargetsFrom, commerr.ErrNotFound)

		return
	}

	for _, key := range ch.Targets {
		ref, _ := impl.catalog.Volume(key)
		if ref.Volume <= from.Volume {
			continue
		}

		ws = append(ws, Waypoint{
			Reference: ref,
			Result:    impl.compute(ref.Volume, from.Volume),
		})
	}

	return
}

func (impl *runnerImpl) CacheStats() (hits, misses uint64) {
	return atomic.LoadUint64(&impl.hits), atomic.LoadUint64(&impl.misses)
}

func (impl *runnerImpl) compute(target, initial growth.Volume) growth.Result {
	q := growth.Query{
		TargetVolume:   target,
		InitialVolume:  initial,
		DoublingPeriod: impl.catalog.DoublingPeriod(),
	}

	key := fmt.Sprintf("%b|%b|%b", q.TargetVolume, q.InitialVolume, q.DoublingPeriod)

	if i, ok := impl.results.Get(key); ok {
		if r, ok := i.(growth.Result); ok {
			atomic.AddUint64(&impl.hits, 1)

			return cloneResult(r)
		}
	}

	atomic.AddUint64(&impl.misses, 1)

	r := growth.Compute(q)
	impl.results.Set(key, r, cache.NoExpiration)

	return cloneResult(r)
}

func cloneResult(r growth.Result) growth.Result {
	if r.Series != nil {
		r.Series = append([]growth.Sample(nil), r.Series...)
	}

	return r
}

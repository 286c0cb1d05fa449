package main

import (
	"github.com/sgostarter/libgrowth/growth"
	"github.com/sgostarter/libgrowth/plot"
	"github.com/sgostarter/libgrowth/scenario"
)

func buildDashboard(catalog *scenario.Catalog, outcomes []scenario.Outcome, targets []scenario.Waypoint) (d plot.Dashboard) {
	ch := catalog.Chart()

	byKey := make(map[string]scenario.Outcome, len(outcomes))
	for _, o := range outcomes {
		byKey[o.Scenario.Key] = o
	}

	d.Title = ch.Title

	if o, ok := byKey[ch.Primary]; ok {
		d.Primary = plot.Line{Name: o.Initial.Name, Samples: o.Result.Series}
		d.PrimaryLevel = plot.Level{Name: o.Target.Name + " volume", Volume: o.Target.Volume}
	}

	for _, key := range ch.Comparison {
		if o, ok := byKey[key]; ok {
			d.Comparison = append(d.Comparison, plot.Line{Name: o.Scenario.Label, Samples: o.Result.Series})
		}
	}

	for _, key := range ch.References {
		if o, ok := byKey[key]; ok {
			d.Levels = append(d.Levels, plot.Level{Name: o.Target.Name, Volume: o.Target.Volume})
		}
	}

	d.Factors = growth.FactorSeries(ch.FactorMax, ch.FactorStep)

	for _, w := range targets {
		d.Bars = append(d.Bars, plot.Bar{Name: w.Reference.Name, Minutes: w.Result.TotalMinutes})
	}

	return
}

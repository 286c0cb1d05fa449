package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libgrowth/plot"
	"github.com/sgostarter/libgrowth/report"
	"github.com/sgostarter/libgrowth/scenario"
)

func main() {
	logger := l.NewConsoleLoggerWrapper()
	rep := report.NewReporter(os.Stdout)

	if err := run("", rep, logger); err != nil {
		rep.Failure(err)
		logger.WithFields(l.ErrorField(err)).Error("run failed")
		os.Exit(1)
	}
}

// run writes the chart into outputDir, or the working directory when empty.
func run(outputDir string, rep report.Reporter, logger l.Wrapper) error {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	catalog, err := scenario.DefaultCatalog()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	runner := scenario.NewRunner(catalog, logger)

	rep.Header(catalog.DoublingPeriod())

	outcomes, err := runner.RunAll()
	if err != nil {
		return err
	}

	for _, o := range outcomes {
		rep.Scenario(o)
	}

	targets, err := runner.Targets()
	if err != nil {
		return err
	}

	path := filepath.Join(outputDir, catalog.OutputFile())

	if err = plot.NewRenderer(plot.Options{}, logger).SaveFile(buildDashboard(catalog, outcomes, targets), path); err != nil {
		return fmt.Errorf("chart: %w", err)
	}

	rep.Chart(path)
	rep.Summary(catalog.DoublingPeriod(), outcomes)

	hits, misses := runner.CacheStats()
	logger.WithFields(l.StringField("runID", runner.RunID()), l.IntField("cacheHits", int(hits)),
		l.IntField("cacheMisses", int(misses))).Debug("run finished")

	return nil
}

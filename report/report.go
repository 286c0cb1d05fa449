// Package report narrates scenario outcomes as plain text.
package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/sgostarter/libgrowth/growth"
	"github.com/sgostarter/libgrowth/scenario"
)

type Reporter interface {
	Header(period growth.DoublingPeriod)
	Scenario(o scenario.Outcome)
	Chart(path string)
	Summary(period growth.DoublingPeriod, outcomes []scenario.Outcome)
	Failure(err error)
}

func NewReporter(w io.Writer) Reporter {
	if w == nil {
		w = io.Discard
	}

	return &reporterImpl{w: w}
}

type reporterImpl struct {
	w io.Writer
}

func (impl *reporterImpl) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(impl.w, format, a...)
}

func (impl *reporterImpl) banner(title string) {
	impl.printf("\n%s\n%s\n%s\n", rule(), title, rule())
}

func (impl *reporterImpl) Header(period growth.DoublingPeriod) {
	impl.printf("THE DORAYAKI PROBLEM - EXPONENTIAL GROWTH\n")
	impl.printf("Based on the Doraemon episode where the \"Baibain\" doubles objects every %s\n", periodText(period))
	impl.printf("%s\n", rule())
}

func (impl *reporterImpl) Scenario(o scenario.Outcome) {
	impl.banner(o.Scenario.Title)

	impl.printf("VOLUMES:\n")
	impl.printf("• %s: %s m³\n", o.Initial.Name, Sci(o.Initial.Volume))
	impl.printf("• %s: %s m³\n", o.Target.Name, Sci(o.Target.Volume))
	impl.printf("• Ratio: %s times larger\n", Sci(o.Ratio()))

	impl.printf("\nRESULTS:\n")

	if o.Result.Degenerate() {
		impl.printf("• Nothing to grow: the target is not larger than the initial volume\n")

		return
	}

	impl.printf("• Duplications needed: %d\n", o.Result.Duplications)
	impl.printf("• Total time: %s minutes\n", Thousands(o.Result.TotalMinutes, 0))
	impl.printf("• Total time: %s hours\n", Thousands(o.Result.TotalHours(), 1))
	impl.printf("• Total time: %s days\n", Thousands(o.Result.TotalDays(), 1))

	if len(o.Waypoints) == 0 {
		return
	}

	impl.printf("\nWAYPOINTS:\n")

	for _, w := range o.Waypoints {
		impl.printf("• %s: %s min (%d duplications)\n", w.Reference.Name,
			Thousands(w.Result.TotalMinutes, 0), w.Result.Duplications)
	}
}

func (impl *reporterImpl) Chart(path string) {
	impl.banner("EXPONENTIAL GROWTH VISUALIZATION")
	impl.printf("Chart saved as '%s'\n", path)
}

func (impl *reporterImpl) Summary(period growth.DoublingPeriod, outcomes []scenario.Outcome) {
	impl.banner("EXECUTIVE SUMMARY - LESSONS LEARNED")

	impl.printf("KEY TIMES:\n")

	for _, o := range outcomes {
		impl.printf("• %s: %s minutes (%s hours)\n", o.Scenario.Label,
			Thousands(o.Result.TotalMinutes, 0), Thousands(o.Result.TotalHours(), 0))
	}

	impl.printf("\nLESSONS ON EXPONENTIAL GROWTH:\n")
	impl.printf("• It starts slowly, then accelerates dramatically\n")

	for _, n := range []int{10, 20, 30} {
		impl.printf("• %d duplications: ×%s\n", n, humanize.Comma(int64(growth.GrowthFactor(n))))
	}

	impl.printf("\nREAL-WORLD APPLICATIONS:\n")
	impl.printf("• Bacterial population growth\n")
	impl.printf("• Spread of viruses and epidemics\n")
	impl.printf("• Compound interest in finance\n")
	impl.printf("• Growth of digital data\n")

	impl.printf("\nDORAEMON TRIVIA:\n")
	impl.printf("• In the original episode the dorayaki end up launched into space\n")
	impl.printf("• The Baibain doubles objects every %s\n", periodText(period))
	impl.printf("• It is a metaphor for uncontrolled exponential growth\n")
}

func (impl *reporterImpl) Failure(err error) {
	impl.printf("Error during execution: %v\n", err)
}

func periodText(period growth.DoublingPeriod) string {
	if period > 0 && int64(period)%60 == 0 && float64(int64(period)) == period {
		m := int64(period) / 60
		if m == 1 {
			return "minute"
		}

		return fmt.Sprintf("%d minutes", m)
	}

	return fmt.Sprintf("%s seconds", Thousands(period, 0))
}

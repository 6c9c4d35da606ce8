package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"

	iupacmetrics "github.com/RxnWeaver/iupac/metrics"
)

// cliMetrics wraps a private Prometheus registry so --metrics can
// print a one-shot summary after a single naming request, without
// starting an HTTP listener (that would be web service exposure, out
// of scope here).
type cliMetrics struct {
	registry *prometheus.Registry
	metrics  iupacmetrics.Metrics
}

func newCLIMetrics() (*cliMetrics, error) {
	reg := prometheus.NewRegistry()
	m, err := iupacmetrics.New(reg)
	if err != nil {
		return nil, err
	}
	return &cliMetrics{registry: reg, metrics: m}, nil
}

func (c *cliMetrics) printSummary(w io.Writer) {
	families, err := c.registry.Gather()
	if err != nil {
		fmt.Fprintf(w, "metrics: failed to gather: %v\n", err)
		return
	}

	fmt.Fprintln(w, "metrics:")
	for _, f := range families {
		for _, metric := range f.GetMetric() {
			value := metric.GetCounter().GetValue()
			if h := metric.GetHistogram(); h != nil {
				value = h.GetSampleSum()
			}
			labels := ""
			for _, lp := range metric.GetLabel() {
				labels += fmt.Sprintf("{%s=%q}", lp.GetName(), lp.GetValue())
			}
			fmt.Fprintf(w, "  %s%s = %g\n", f.GetName(), labels, value)
		}
	}
}

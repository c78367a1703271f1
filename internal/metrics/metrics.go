// Package metrics records run statistics in the Prometheus text format so a
// node_exporter textfile collector can pick them up after each run.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cleared-dev/moneyreport/internal/model"
)

const namespace = "moneyreport"

// Recorder holds the metrics of a single run. Every run overwrites the
// textfile, so series only ever describe the latest run.
type Recorder struct {
	reg          *prometheus.Registry
	runInfo      *prometheus.GaugeVec
	files        prometheus.Gauge
	transactions prometheus.Gauge
	unmatched    prometheus.Gauge
	byCategory   *prometheus.GaugeVec
	lastRun      prometheus.Gauge
}

// New creates a Recorder on its own registry.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		runInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_info",
			Help:      "Identifies the last run; always 1.",
		}, []string{"run_id"}),
		files: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "files_processed",
			Help:      "Number of statement files read in the last run.",
		}),
		transactions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "transactions",
			Help:      "Number of transactions written to the report in the last run.",
		}),
		unmatched: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "unmatched_descriptions",
			Help:      "Distinct descriptions with no category lookup entry.",
		}),
		byCategory: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "category_transactions",
			Help:      "Transactions per category in the last run.",
		}, []string{"category"}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last run finished.",
		}),
	}
	r.reg.MustRegister(r.runInfo, r.files, r.transactions, r.unmatched, r.byCategory, r.lastRun)
	return r
}

// Observe records the outcome of run runID finished at now.
func (r *Recorder) Observe(runID string, files int, txns []model.Transaction, unmatched int, now time.Time) {
	r.runInfo.Reset()
	r.runInfo.WithLabelValues(runID).Set(1)
	r.files.Set(float64(files))
	r.transactions.Set(float64(len(txns)))
	r.unmatched.Set(float64(unmatched))
	r.byCategory.Reset()
	for _, txn := range txns {
		r.byCategory.WithLabelValues(txn.Category).Inc()
	}
	r.lastRun.Set(float64(now.Unix()))
}

// WriteTextfile writes all metrics to path.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	return nil
}

package storage

import "github.com/prometheus/client_golang/prometheus"

var (
	recordsDesc = prometheus.NewDesc(
		"storesync_storage_records",
		"Number of records in each local table.",
		[]string{"table"}, nil,
	)
	commitsDesc = prometheus.NewDesc(
		"storesync_storage_commits_total",
		"Number of published local commits.",
		nil, nil,
	)
	failuresDesc = prometheus.NewDesc(
		"storesync_storage_commit_failures_total",
		"Number of local commits that failed to persist.",
		nil, nil,
	)
)

// Collector exports the local store's size and commit counts, read from
// the current View at scrape time.
type Collector struct {
	m *Manager
}

// NewCollector returns a prometheus.Collector for m.
func NewCollector(m *Manager) *Collector {
	return &Collector{m: m}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- recordsDesc
	ch <- commitsDesc
	ch <- failuresDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for name, n := range c.m.View().Counts() {
		ch <- prometheus.MustNewConstMetric(recordsDesc, prometheus.GaugeValue, float64(n), name)
	}
	ch <- prometheus.MustNewConstMetric(commitsDesc, prometheus.CounterValue, float64(c.m.commits.Load()))
	ch <- prometheus.MustNewConstMetric(failuresDesc, prometheus.CounterValue, float64(c.m.failures.Load()))
}

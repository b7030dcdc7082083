// File: control/collector.go
//
// Prometheus collector over a StatsRegistry. Counters are exported as
// const metrics at scrape time, labeled by allocator name.

package control

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/szimmy/NonSTL/api"
)

// Ensure compile-time interface compliance.
var _ prometheus.Collector = (*Collector)(nil)

// Collector exports a StatsRegistry's counters to prometheus.
type Collector struct {
	registry *StatsRegistry

	allocsTotal   *prometheus.Desc
	freesTotal    *prometheus.Desc
	liveBlocks    *prometheus.Desc
	liveSlots     *prometheus.Desc
	constructs    *prometheus.Desc
	destroysTotal *prometheus.Desc
}

// NewCollector builds a collector over registry.
func NewCollector(registry *StatsRegistry) *Collector {
	labels := []string{"allocator"}
	return &Collector{
		registry: registry,
		allocsTotal: prometheus.NewDesc(
			prometheus.BuildFQName("nonstl", "allocator", "allocs_total"),
			"Total number of blocks handed out",
			labels, nil,
		),
		freesTotal: prometheus.NewDesc(
			prometheus.BuildFQName("nonstl", "allocator", "frees_total"),
			"Total number of blocks returned",
			labels, nil,
		),
		liveBlocks: prometheus.NewDesc(
			prometheus.BuildFQName("nonstl", "allocator", "live_blocks"),
			"Blocks currently held by containers",
			labels, nil,
		),
		liveSlots: prometheus.NewDesc(
			prometheus.BuildFQName("nonstl", "allocator", "live_slots"),
			"Element slots currently held by containers",
			labels, nil,
		),
		constructs: prometheus.NewDesc(
			prometheus.BuildFQName("nonstl", "allocator", "constructs_total"),
			"Element lifetimes begun",
			labels, nil,
		),
		destroysTotal: prometheus.NewDesc(
			prometheus.BuildFQName("nonstl", "allocator", "destroys_total"),
			"Element lifetimes ended",
			labels, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.allocsTotal
	ch <- c.freesTotal
	ch <- c.liveBlocks
	ch <- c.liveSlots
	ch <- c.constructs
	ch <- c.destroysTotal
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for name, stats := range c.registry.Snapshot() {
		c.emit(ch, name, stats)
	}
}

func (c *Collector) emit(ch chan<- prometheus.Metric, name string, stats api.AllocStats) {
	ch <- prometheus.MustNewConstMetric(c.allocsTotal, prometheus.CounterValue,
		float64(stats.TotalAllocs), name)
	ch <- prometheus.MustNewConstMetric(c.freesTotal, prometheus.CounterValue,
		float64(stats.TotalFrees), name)
	ch <- prometheus.MustNewConstMetric(c.liveBlocks, prometheus.GaugeValue,
		float64(stats.LiveBlocks), name)
	ch <- prometheus.MustNewConstMetric(c.liveSlots, prometheus.GaugeValue,
		float64(stats.LiveSlots), name)
	ch <- prometheus.MustNewConstMetric(c.constructs, prometheus.CounterValue,
		float64(stats.Constructs), name)
	ch <- prometheus.MustNewConstMetric(c.destroysTotal, prometheus.CounterValue,
		float64(stats.Destroys), name)
}

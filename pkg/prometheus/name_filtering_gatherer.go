package prometheus

import (
	"regexp"

	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

type nameFilteringGatherer struct {
	base        prometheus.Gatherer
	namePattern *regexp.Regexp
}

// NewNameFilteringGatherer creates a decorator for Gatherer that only
// returns the metric families whose name matches a regular expression.
// It is used to limit the metrics that are pushed to a Pushgateway.
func NewNameFilteringGatherer(base prometheus.Gatherer, namePattern *regexp.Regexp) prometheus.Gatherer {
	return &nameFilteringGatherer{
		base:        base,
		namePattern: namePattern,
	}
}

func (g *nameFilteringGatherer) Gather() ([]*io_prometheus_client.MetricFamily, error) {
	families, err := g.base.Gather()
	// Gatherers may return partial results together with an error.
	filtered := families[:0]
	for _, family := range families {
		if g.namePattern.MatchString(family.GetName()) {
			filtered = append(filtered, family)
		}
	}
	return filtered, err
}

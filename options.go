package navgraph

import (
	"log/slog"

	"github.com/hupe1980/navgraph/distance"
	"github.com/hupe1980/navgraph/resource"
	"github.com/hupe1980/navgraph/searcher"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	distanceFunc     distance.Func
	metric           distance.Metric
	useMetric        bool
	ef               int
	controller       *resource.Controller
}

// Option configures Index constructor behavior.
type Option func(*options)

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := navgraph.NewJSONLogger(slog.LevelInfo)
//	idx, _ := navgraph.New(cfg, lookup, navgraph.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations.
//
// Example with BasicMetricsCollector:
//
//	metrics := &navgraph.BasicMetricsCollector{}
//	idx, _ := navgraph.New(cfg, lookup, navgraph.WithMetricsCollector(metrics))
//	// ... use idx ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithDistanceMetric selects one of the built-in distance metrics.
// The metric is resolved at construction time; an unknown metric fails New.
func WithDistanceMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = m
		o.useMetric = true
	}
}

// WithDistanceFunc installs a custom distance function. Takes precedence
// over WithDistanceMetric.
func WithDistanceFunc(fn distance.Func) Option {
	return func(o *options) {
		o.distanceFunc = fn
	}
}

// WithEF sets the default beam width for searches. Individual searches may
// override it.
func WithEF(ef int) Option {
	return func(o *options) {
		o.ef = ef
	}
}

// WithResourceController installs admission control for search traffic.
func WithResourceController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// SearchOption tunes a single search call.
type SearchOption func(*searcher.Options)

// SearchWithEF overrides the beam width for one search.
func SearchWithEF(ef int) SearchOption {
	return func(o *searcher.Options) {
		o.EF = ef
	}
}

// SearchWithFilter restricts one search to nodes matched by the filter.
func SearchWithFilter(f searcher.Filter) SearchOption {
	return func(o *searcher.Options) {
		o.Filter = f
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

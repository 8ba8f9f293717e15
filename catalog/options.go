package catalog

import "go.uber.org/zap"

type options struct {
	logger *zap.Logger
}

// Option configures an import.
type Option func(*options)

// WithLogger sets the logger used to report import progress. The default
// discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

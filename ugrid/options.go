package ugrid

import "go.uber.org/zap"

// Option configures a write operation.
type Option func(*options)

type options struct {
	log *zap.Logger
}

func defaultOptions() *options {
	return &options{log: zap.NewNop()}
}

// WithLogger routes non-fatal encode diagnostics, such as the warning
// emitted when a mesh carries a cell type the UGRID format cannot
// represent, to the given logger. The default discards them.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

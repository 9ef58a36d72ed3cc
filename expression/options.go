// SPDX-License-Identifier: MIT

package expression

import "go.uber.org/zap"

// Option configures Compile.
type Option func(*options)

type options struct {
	log *zap.Logger
}

func defaultOptions() options {
	return options{log: zap.NewNop()}
}

// WithLogger traces each resolved group at Debug level. A nil logger keeps
// the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

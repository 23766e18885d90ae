package mechanics

import "go.uber.org/zap"

// AutoCalculatorBuilderOption is a functional option for configuring an AutoCalculator.
type AutoCalculatorBuilderOption func(*autoCalculator)

// WithLogger sets the logger receiving selection diagnostics at debug level. Nil is ignored.
//
// Parameters:
//   - logger: the logger to use
//
// Returns:
//   - AutoCalculatorBuilderOption: option function to configure the calculator
func WithLogger(logger *zap.Logger) AutoCalculatorBuilderOption {
	return func(c *autoCalculator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

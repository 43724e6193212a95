package linear

// Option configures a LinearRegression.
type Option func(*LinearRegression)

// WithFitIntercept sets whether an intercept is learned. Defaults to true.
func WithFitIntercept(fit bool) Option {
	return func(lr *LinearRegression) {
		lr.fitIntercept = fit
	}
}

// WithParallelThreshold sets the row count above which building the design
// matrix is split across CPUs.
func WithParallelThreshold(n int) Option {
	return func(lr *LinearRegression) {
		lr.parallelThreshold = n
	}
}

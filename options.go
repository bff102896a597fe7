package proxystuff

// CompileOption configures a single Compile call.
//
// Example:
//
//	// Reject outlines the host cannot close into an area:
//	sub, err := proxystuff.Compile(specs, proxystuff.WithMinPoints(3))
type CompileOption func(*compileOptions)

// compileOptions holds optional configuration for compilation.
type compileOptions struct {
	minPoints int
}

// defaultCompileOptions returns the default compile options.
// No minimum point count is enforced beyond non-emptiness; the host's
// own minimum for closed paths is not assumed here.
func defaultCompileOptions() compileOptions {
	return compileOptions{
		minPoints: 1,
	}
}

// WithMinPoints enforces a minimum outline length, failing compilation
// with ErrTooFewPoints below it. Use this when the target host is known
// to reject short closed paths (typically under 2 or 3 points).
func WithMinPoints(n int) CompileOption {
	return func(o *compileOptions) {
		if n > o.minPoints {
			o.minPoints = n
		}
	}
}

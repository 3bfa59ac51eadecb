package tiling

// Default tunables per the external interface configuration.
const (
	DefaultMaxAttempts      = 100_000
	DefaultProgressInterval = 1000
)

// Options configures a solve. Mirrors the teacher's pattern of a pointer
// Options struct, nil-defaulted inside the constructor.
type Options struct {
	// MaxAttempts bounds the total number of recursive backtracking steps.
	MaxAttempts int
	// ProgressInterval is the number of attempts between progress/cancel
	// polls. The spec fixes this at 1000; it is exposed here only so tests
	// can exercise the poll without running 1000 real attempts.
	ProgressInterval int
}

// DefaultOptions returns the spec's default tunables.
func DefaultOptions() *Options {
	return &Options{
		MaxAttempts:      DefaultMaxAttempts,
		ProgressInterval: DefaultProgressInterval,
	}
}

func (o *Options) orDefaults() *Options {
	if o == nil {
		return DefaultOptions()
	}
	out := *o
	if out.MaxAttempts <= 0 {
		out.MaxAttempts = DefaultMaxAttempts
	}
	if out.ProgressInterval <= 0 {
		out.ProgressInterval = DefaultProgressInterval
	}
	return &out
}

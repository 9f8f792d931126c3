package card

// Bool returns a pointer to v, for optional boolean options.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v, for optional integer options.
func Int(v int) *int { return &v }

// Float returns a pointer to v, for optional number options.
func Float(v float64) *float64 { return &v }

// Must panics if err is non-nil and returns v otherwise. It is meant for
// card definitions known to be valid at compile time.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

package sarge

// WithLongFlag sets the long name of the flag, matched on the command line as --name
func WithLongFlag(long string) ConfigureFlagFunc {
	return func(flag *Flag, err *error) {
		flag.Long = long
	}
}

// WithShortFlag sets the single character alias of the flag, matched as -c and inside
// clusters such as -abc
func WithShortFlag(short string) ConfigureFlagFunc {
	return func(flag *Flag, err *error) {
		flag.Short = short
	}
}

// WithDescription the description will be used in help output presented to the user
func WithDescription(description string) ConfigureFlagFunc {
	return func(flag *Flag, err *error) {
		flag.Description = description
	}
}

// WithValue when true, the token following the flag is consumed as its value
func WithValue(requiresValue bool) ConfigureFlagFunc {
	return func(flag *Flag, err *error) {
		flag.RequiresValue = requiresValue
	}
}

// WithDefaultValue sets the value reported by the typed accessors when the flag is absent
func WithDefaultValue(defaultValue string) ConfigureFlagFunc {
	return func(flag *Flag, err *error) {
		flag.DefaultValue = defaultValue
	}
}

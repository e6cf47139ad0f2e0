package zip

// ZipOption configures a zip combinator.
type ZipOption struct {
	upperBoundPolicy *UpperBoundPolicy
}

// WithUpperBoundPolicyOption selects how the zip reports its upper bound, UpperBoundUnknown by default.
func WithUpperBoundPolicyOption(policy UpperBoundPolicy) ZipOption {
	return ZipOption{upperBoundPolicy: &policy}
}

type zipConfig struct {
	upperBoundPolicy UpperBoundPolicy
}

func newZipConfig(options []ZipOption) zipConfig {
	cfg := zipConfig{upperBoundPolicy: UpperBoundUnknown}
	for _, option := range options {
		if option.upperBoundPolicy != nil {
			cfg.upperBoundPolicy = *option.upperBoundPolicy
		}
	}
	return cfg
}

func (c zipConfig) sizeHint(hints ...SizeHint) SizeHint {
	return combineSizeHints(c.upperBoundPolicy, hints...)
}

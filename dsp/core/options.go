package core

// defaultSampleRate is the rate assumed by generators built without
// [WithSampleRate].
const defaultSampleRate = 44100

// ProcessorConfig defines the stream settings shared by signal generators.
type ProcessorConfig struct {
	SampleRate float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns a 44.1 kHz configuration.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{SampleRate: defaultSampleRate}
}

// WithSampleRate sets the processing sample rate. Non-positive and
// non-finite rates are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 && sampleRate <= maxSampleRate {
			cfg.SampleRate = sampleRate
		}
	}
}

// maxSampleRate rejects +Inf while leaving room for any real device rate.
const maxSampleRate = 1e9

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

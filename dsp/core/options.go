package core

const (
	// MaxBufferSize is the fixed capacity of every port buffer. No block may
	// request more samples than this.
	MaxBufferSize = 256

	// DefaultSampleRate is the sample rate a node starts with.
	DefaultSampleRate = 44100

	// DefaultBufferSize is the block size a node starts with.
	DefaultBufferSize = 64
)

// ProcessorConfig defines the transport settings shared by every node in a
// graph.
type ProcessorConfig struct {
	SampleRate  int
	BufferSize  int
	ControlRate bool
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the settings a freshly constructed node uses.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: DefaultSampleRate,
		BufferSize: DefaultBufferSize,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBufferSize sets the processing block size. Sizes outside
// [1, MaxBufferSize] are ignored.
func WithBufferSize(bufferSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if bufferSize > 0 && bufferSize <= MaxBufferSize {
			cfg.BufferSize = bufferSize
		}
	}
}

// WithControlRate switches processing to one sample per block.
func WithControlRate(controlRate bool) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		cfg.ControlRate = controlRate
	}
}

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

// EffectiveBufferSize returns the block size a node configured with cfg
// processes: 1 at control rate, BufferSize otherwise.
func (cfg ProcessorConfig) EffectiveBufferSize() int {
	if cfg.ControlRate {
		return 1
	}
	return cfg.BufferSize
}

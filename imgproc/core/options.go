package core

// ProcessorConfig defines execution settings shared by the 2D operations.
type ProcessorConfig struct {
	// Workers is the number of goroutines used for data-parallel rows or
	// columns. Values <= 1 run serially.
	Workers int

	// MinRowsPerWorker bounds how finely work is split so tiny images are not
	// fanned out across goroutines.
	MinRowsPerWorker int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the serial configuration.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		Workers:          1,
		MinRowsPerWorker: 16,
	}
}

// WithWorkers sets the number of parallel workers.
func WithWorkers(workers int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// WithMinRowsPerWorker sets the smallest row block handed to one worker.
func WithMinRowsPerWorker(rows int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if rows > 0 {
			cfg.MinRowsPerWorker = rows
		}
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

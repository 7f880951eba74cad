package storytext

// ConvertOptions holds options for model conversion.
type ConvertOptions struct {
	Config          *Config
	WarningHandler  WarningHandler
	KeyGenerator    KeyGenerator
	ExactFormatting bool
	EntityLinks     bool
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig sets a custom Config.
func WithConfig(config *Config) Option {
	return func(opts *ConvertOptions) {
		opts.Config = config
	}
}

// WithWarningHandler sets the handler that receives non-fatal
// conversion warnings. Warnings are dropped when no handler is set.
func WithWarningHandler(handler WarningHandler) Option {
	return func(opts *ConvertOptions) {
		opts.WarningHandler = handler
	}
}

// WithKeyGenerator sets the block key generator used by document-level
// mark-tree conversion, replacing the sequential default.
func WithKeyGenerator(keys KeyGenerator) Option {
	return func(opts *ConvertOptions) {
		opts.KeyGenerator = keys
	}
}

// WithExactFormatting makes flat-to-tree conversion subdivide text runs
// at formatting range boundaries instead of sampling the mask once at
// each span start.
func WithExactFormatting(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.ExactFormatting = enable
	}
}

// WithEntityLinks sets whether the Markdown bridge recognizes and emits
// entity links. Disabled, entities travel as plain text.
func WithEntityLinks(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.EntityLinks = enable
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config:      DefaultConfig(),
		EntityLinks: true,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

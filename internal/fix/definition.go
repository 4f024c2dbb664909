package fix

// CodeSample is an example input a fixer changes.
type CodeSample struct {
	Code string
	// MinPHP is the lowest PHP version id (e.g. 80000) the sample parses on.
	MinPHP int
}

// Definition describes a fixer for humans.
type Definition struct {
	Summary         string
	Description     string
	RiskDescription string
	Samples         []CodeSample
}

// Option mutates a definition during construction.
type Option func(*Definition)

// WithVersionedSample appends a code sample that needs at least minPHP.
func WithVersionedSample(code string, minPHP int) Option {
	return func(d *Definition) {
		d.Samples = append(d.Samples, CodeSample{Code: code, MinPHP: minPHP})
	}
}

// WithDescription sets the long description.
func WithDescription(text string) Option {
	return func(d *Definition) {
		d.Description = text
	}
}

// NewDefinition builds a definition from a summary and options.
func NewDefinition(summary string, opts ...Option) Definition {
	d := Definition{Summary: summary}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}
	return d
}

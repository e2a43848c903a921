package dpath

// DefaultDelimiter separates path segments unless Delimiter says otherwise.
const DefaultDelimiter = "."

type config struct {
	delim string
}

type Option func(*config)

// Delimiter sets the segment separator. An empty delimiter selects
// DefaultDelimiter.
func Delimiter(d string) Option {
	return func(c *config) { c.delim = d }
}

func newConfig(opts []Option) *config {
	c := &config{delim: DefaultDelimiter}
	for _, opt := range opts {
		opt(c)
	}
	if c.delim == "" {
		c.delim = DefaultDelimiter
	}
	return c
}

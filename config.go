package bookfetch

import "time"

// Default configuration values.
const (
	DefaultURL            PageURL = "http://book-online.com.ua/read.php?book=38&page={page}"
	DefaultOutputFile             = "book_content.txt"
	DefaultMobiFile               = "book_content.mobi"
	DefaultMaxPages               = 800
	DefaultStrikeLimit            = 3
	DefaultTimeout                = 10 * time.Second
	DefaultMarkerSelector         = "img"
	DefaultConverterBin           = "ebook-convert"
)

// Config holds the settings of one run. It is built once from defaults,
// an optional config file and command-line flags, then passed by value.
type Config struct {
	URL            PageURL       `yaml:"url"`
	OutputFile     string        `yaml:"output_file"`
	MobiFile       string        `yaml:"mobi_file"`
	MaxPages       int           `yaml:"max_pages"`
	StrikeLimit    int           `yaml:"strike_limit"`
	Timeout        time.Duration `yaml:"timeout"`
	RateLimit      float64       `yaml:"rate_limit"` // requests per second, 0 = unlimited
	UserAgent      string        `yaml:"user_agent"`
	MarkerSelector string        `yaml:"marker_selector"`
	ConverterBin   string        `yaml:"converter"`
}

// DefaultConfig returns a Config populated with default values.
func DefaultConfig() Config {
	return Config{
		URL:            DefaultURL,
		OutputFile:     DefaultOutputFile,
		MobiFile:       DefaultMobiFile,
		MaxPages:       DefaultMaxPages,
		StrikeLimit:    DefaultStrikeLimit,
		Timeout:        DefaultTimeout,
		MarkerSelector: DefaultMarkerSelector,
		ConverterBin:   DefaultConverterBin,
	}
}

// Merge returns a copy of c with every non-zero field of other applied on top.
func (c Config) Merge(other Config) Config {
	if other.URL != "" {
		c.URL = other.URL
	}
	if other.OutputFile != "" {
		c.OutputFile = other.OutputFile
	}
	if other.MobiFile != "" {
		c.MobiFile = other.MobiFile
	}
	if other.MaxPages != 0 {
		c.MaxPages = other.MaxPages
	}
	if other.StrikeLimit != 0 {
		c.StrikeLimit = other.StrikeLimit
	}
	if other.Timeout != 0 {
		c.Timeout = other.Timeout
	}
	if other.RateLimit != 0 {
		c.RateLimit = other.RateLimit
	}
	if other.UserAgent != "" {
		c.UserAgent = other.UserAgent
	}
	if other.MarkerSelector != "" {
		c.MarkerSelector = other.MarkerSelector
	}
	if other.ConverterBin != "" {
		c.ConverterBin = other.ConverterBin
	}
	return c
}

// Validate returns an error if the configuration contains invalid fields.
func (c Config) Validate() error {
	if err := c.URL.Validate(); err != nil {
		return err
	}
	if c.OutputFile == "" {
		return Errorf(EINVALID, "output file required")
	}
	if c.MaxPages < 1 {
		return Errorf(EINVALID, "max pages must be at least 1, got %d", c.MaxPages)
	}
	if c.StrikeLimit < 1 {
		return Errorf(EINVALID, "strike limit must be at least 1, got %d", c.StrikeLimit)
	}
	if c.Timeout <= 0 {
		return Errorf(EINVALID, "timeout must be positive")
	}
	if c.RateLimit < 0 {
		return Errorf(EINVALID, "rate limit must be non-negative")
	}
	if c.MarkerSelector == "" {
		return Errorf(EINVALID, "marker selector required")
	}
	return nil
}

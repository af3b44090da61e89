package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"coffeeshop/internal/core/domain/model/menu"
)

// Config holds every setting of a run. Defaults apply to unset variables.
type Config struct {
	LogLevel       slog.Level
	LogFormat      string
	InitialStock   int
	BrewMin        time.Duration
	BrewMax        time.Duration
	Deadline       *time.Duration
	Concurrency    int
	BatchSize      int
	RushSchedule   string
	RushKind       menu.Kind
	ReportSchedule string
	RunOnce        bool
}

func DefaultConfig() Config {
	return Config{
		LogLevel:       slog.LevelInfo,
		LogFormat:      "text",
		InitialStock:   10,
		BrewMin:        time.Second,
		BrewMax:        3 * time.Second,
		BatchSize:      10,
		RushSchedule:   "@every 30s",
		ReportSchedule: "@every 10s",
	}
}

// ConfigFromEnv reads the configuration through lookup (usually os.LookupEnv).
// Every malformed or out-of-range value is reported.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := DefaultConfig()
	p := envParser{lookup: lookup}

	p.level("LOG_LEVEL", &c.LogLevel)
	p.str("LOG_FORMAT", &c.LogFormat)
	p.integer("INITIAL_STOCK", &c.InitialStock)
	p.duration("BREW_MIN", &c.BrewMin)
	p.duration("BREW_MAX", &c.BrewMax)
	p.optionalDuration("DEADLINE", &c.Deadline)
	p.integer("CONCURRENCY", &c.Concurrency)
	p.integer("BATCH_SIZE", &c.BatchSize)
	p.str("RUSH_SCHEDULE", &c.RushSchedule)
	p.kind("RUSH_KIND", &c.RushKind)
	p.str("REPORT_SCHEDULE", &c.ReportSchedule)
	p.boolean("RUN_ONCE", &c.RunOnce)

	if err := errors.Join(p.err, c.Validate()); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks ranges and relations between settings.
func (c Config) Validate() error {
	var err error
	if c.LogFormat != "text" && c.LogFormat != "json" {
		err = errors.Join(err, fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat))
	}
	if c.InitialStock < 0 {
		err = errors.Join(err, fmt.Errorf("INITIAL_STOCK must not be negative, got %d", c.InitialStock))
	}
	if c.BrewMin < 0 {
		err = errors.Join(err, fmt.Errorf("BREW_MIN must not be negative, got %s", c.BrewMin))
	}
	if c.BrewMax < c.BrewMin {
		err = errors.Join(err, fmt.Errorf("BREW_MAX %s must not be less than BREW_MIN %s", c.BrewMax, c.BrewMin))
	}
	if c.Deadline != nil && *c.Deadline < 0 {
		err = errors.Join(err, fmt.Errorf("DEADLINE must not be negative, got %s", *c.Deadline))
	}
	if c.Concurrency < 0 {
		err = errors.Join(err, fmt.Errorf("CONCURRENCY must not be negative, got %d", c.Concurrency))
	}
	if c.BatchSize <= 0 {
		err = errors.Join(err, fmt.Errorf("BATCH_SIZE must be positive, got %d", c.BatchSize))
	}
	if !c.RunOnce && strings.TrimSpace(c.RushSchedule) == "" {
		err = errors.Join(err, errors.New("RUSH_SCHEDULE is required unless RUN_ONCE is set"))
	}
	return err
}

type envParser struct {
	lookup func(string) (string, bool)
	err    error
}

func (p *envParser) get(key string) (string, bool) {
	v, ok := p.lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (p *envParser) fail(key, value string, cause error) {
	p.err = errors.Join(p.err, fmt.Errorf("%s=%q: %w", key, value, cause))
}

func (p *envParser) str(key string, dst *string) {
	if v, ok := p.get(key); ok {
		*dst = v
	}
}

func (p *envParser) integer(key string, dst *int) {
	v, ok := p.get(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, v, err)
		return
	}
	*dst = n
}

func (p *envParser) boolean(key string, dst *bool) {
	v, ok := p.get(key)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(key, v, err)
		return
	}
	*dst = b
}

func (p *envParser) parseDuration(key string) (time.Duration, bool) {
	v, ok := p.get(key)
	if !ok {
		return 0, false
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(key, v, err)
		return 0, false
	}
	return d, true
}

func (p *envParser) duration(key string, dst *time.Duration) {
	if d, ok := p.parseDuration(key); ok {
		*dst = d
	}
}

// optionalDuration leaves dst nil when the variable is unset or empty.
func (p *envParser) optionalDuration(key string, dst **time.Duration) {
	if d, ok := p.parseDuration(key); ok {
		*dst = &d
	}
}

func (p *envParser) level(key string, dst *slog.Level) {
	v, ok := p.get(key)
	if !ok {
		return
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		p.fail(key, v, err)
		return
	}
	*dst = l
}

func (p *envParser) kind(key string, dst *menu.Kind) {
	v, ok := p.get(key)
	if !ok {
		return
	}
	switch strings.ToLower(v) {
	case "all":
		*dst = menu.UnknownKind
	case "coffee":
		*dst = menu.Coffee
	case "pastry":
		*dst = menu.Pastry
	case "smoothie":
		*dst = menu.Smoothie
	default:
		p.fail(key, v, errors.New("must be all, coffee, pastry or smoothie"))
	}
}

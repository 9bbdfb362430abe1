package config

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// EconomyConfig holds the tunables that may change while the service runs.
type EconomyConfig struct {
	StartingBalance decimal.Decimal
	CurrencySymbol  string `validate:"max=8"`
	CurrencySuffix  string `validate:"max=16"`
	Interest        InterestConfig
}

// InterestConfig controls the periodic interest payout.
type InterestConfig struct {
	Enabled        bool
	DailyRate      decimal.Decimal
	MinimumBalance decimal.Decimal
	MaximumPayout  decimal.Decimal
	PayoutInterval time.Duration
}

// IntervalHours returns the payout interval in whole hours.
func (c InterestConfig) IntervalHours() int64 {
	return int64(c.PayoutInterval / time.Hour)
}

// economyFile mirrors EconomyConfig in YAML. Absent keys leave the current
// value untouched.
type economyFile struct {
	StartingBalance *string `yaml:"starting_balance"`
	CurrencySymbol  *string `yaml:"currency_symbol"`
	CurrencySuffix  *string `yaml:"currency_suffix"`
	Interest        *struct {
		Enabled        *bool   `yaml:"enabled"`
		DailyRate      *string `yaml:"daily_rate"`
		MinimumBalance *string `yaml:"minimum_balance"`
		MaximumPayout  *string `yaml:"maximum_payout"`
		PayoutInterval *string `yaml:"payout_interval"`
	} `yaml:"interest"`
}

// LoadEconomyFile overlays the YAML economy file at path onto base.
func LoadEconomyFile(path string, base EconomyConfig) (EconomyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read economy config: %w", err)
	}
	return ParseEconomyYAML(data, base)
}

// ParseEconomyYAML overlays YAML economy settings onto base.
func ParseEconomyYAML(data []byte, base EconomyConfig) (EconomyConfig, error) {
	var file economyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return base, fmt.Errorf("failed to parse economy config: %w", err)
	}

	out := base
	var err error
	if file.StartingBalance != nil {
		if out.StartingBalance, err = parseDecimal("starting_balance", *file.StartingBalance); err != nil {
			return base, err
		}
	}
	if file.CurrencySymbol != nil {
		out.CurrencySymbol = *file.CurrencySymbol
	}
	if file.CurrencySuffix != nil {
		out.CurrencySuffix = *file.CurrencySuffix
	}

	if in := file.Interest; in != nil {
		if in.Enabled != nil {
			out.Interest.Enabled = *in.Enabled
		}
		if in.DailyRate != nil {
			if out.Interest.DailyRate, err = parseDecimal("interest.daily_rate", *in.DailyRate); err != nil {
				return base, err
			}
		}
		if in.MinimumBalance != nil {
			if out.Interest.MinimumBalance, err = parseDecimal("interest.minimum_balance", *in.MinimumBalance); err != nil {
				return base, err
			}
		}
		if in.MaximumPayout != nil {
			if out.Interest.MaximumPayout, err = parseDecimal("interest.maximum_payout", *in.MaximumPayout); err != nil {
				return base, err
			}
		}
		if in.PayoutInterval != nil {
			d, err := time.ParseDuration(*in.PayoutInterval)
			if err != nil {
				return base, fmt.Errorf("invalid interest.payout_interval %q: %w", *in.PayoutInterval, err)
			}
			out.Interest.PayoutInterval = d
		}
	}

	return out, nil
}

func parseDecimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	return d, nil
}

// EconomyHolder publishes the active EconomyConfig. Readers always observe a
// complete configuration; replacements are atomic.
type EconomyHolder struct {
	current atomic.Pointer[EconomyConfig]
}

func NewEconomyHolder(cfg EconomyConfig) *EconomyHolder {
	h := &EconomyHolder{}
	h.current.Store(&cfg)
	return h
}

// Get returns a copy of the active configuration.
func (h *EconomyHolder) Get() EconomyConfig {
	return *h.current.Load()
}

// Swap installs cfg and returns the configuration it replaced.
func (h *EconomyHolder) Swap(cfg EconomyConfig) EconomyConfig {
	return *h.current.Swap(&cfg)
}

// SwapInterest replaces only the interest section and returns the previous one.
func (h *EconomyHolder) SwapInterest(interest InterestConfig) InterestConfig {
	for {
		old := h.current.Load()
		next := *old
		next.Interest = interest
		if h.current.CompareAndSwap(old, &next) {
			return old.Interest
		}
	}
}

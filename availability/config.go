package availability

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/lvrbd/metrics"
)

var validate = validator.New()

// Config configures an Evaluator.
type Config struct {
	Algorithm Algorithm `validate:"gte=1,lte=4"`
	Mode      Mode      `validate:"gte=0,lte=1"`

	// Order bounds enumerated cut sizes. 0 means cutset.ExhaustiveOrder(n).
	// A smaller value can drop wide cuts and overstate MinimalCut results.
	Order int `validate:"gte=0"`

	// Workers bounds goroutines in Parallel mode. 0 means GOMAXPROCS.
	Workers int `validate:"gte=0"`

	// Logger defaults to logging.New("availability").
	Logger *slog.Logger `validate:"-"`

	// Metrics, when set, receives one observation per pair and per run.
	Metrics *metrics.Registry `validate:"-"`
}

// DefaultConfig returns sequential sum-of-disjoint-products evaluation.
func DefaultConfig() Config {
	return Config{Algorithm: SumOfDisjointProducts, Mode: Sequential}
}

// Validate checks the struct tags and maps the first failure to a
// configuration sentinel.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	e := verrs[0]
	switch e.Field() {
	case "Algorithm":
		return fmt.Errorf("%w: %w: %v", ErrConfiguration, ErrUnknownAlgorithm, e.Value())
	case "Mode":
		return fmt.Errorf("%w: %w: %v", ErrConfiguration, ErrUnknownMode, e.Value())
	default:
		return fmt.Errorf("%w: %w: %s must satisfy %s=%s, got %v",
			ErrConfiguration, ErrInvalidConfig, e.Field(), e.Tag(), e.Param(), e.Value())
	}
}

// This file re-exports the internal error, logging, metrics and config types
// that appear in the public API, so that callers can match errors with
// errors.As and wire collaborators without importing internal packages.

package fibonacci

import (
	"github.com/agbru/fibseq/internal/config"
	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/logging"
	"github.com/agbru/fibseq/internal/metrics"
)

// Error types returned by Generate.
type (
	// ConfigError is a type alias for apperrors.ConfigError.
	ConfigError = apperrors.ConfigError

	// TypeError is a type alias for apperrors.TypeError.
	TypeError = apperrors.TypeError

	// ValidationError is a type alias for apperrors.ValidationError.
	ValidationError = apperrors.ValidationError

	// OverflowError is a type alias for apperrors.OverflowError.
	OverflowError = apperrors.OverflowError

	// CalculationError is a type alias for apperrors.CalculationError.
	CalculationError = apperrors.CalculationError
)

// Collaborator types accepted by GeneratorOption values.
type (
	// Logger is a type alias for logging.Logger.
	Logger = logging.Logger

	// LogField is a type alias for logging.Field.
	LogField = logging.Field

	// Recorder is a type alias for metrics.Recorder.
	Recorder = metrics.Recorder

	// Collector is a type alias for metrics.Collector.
	Collector = metrics.Collector

	// Config is a type alias for config.Config.
	Config = config.Config
)

// Re-exported constructors.
var (
	// NewLogger creates a JSON logger writing to w with a component field.
	NewLogger = logging.NewLogger

	// NewLeveledLogger is NewLogger with a minimum level.
	NewLeveledLogger = logging.NewLeveledLogger

	// NewCollector creates a prometheus collector to pass to WithRecorder.
	NewCollector = metrics.NewCollector

	// DefaultConfig returns the configuration used when nothing is overridden.
	DefaultConfig = config.Default

	// ConfigFromEnv loads a Config from FIBSEQ_* environment variables.
	ConfigFromEnv = config.FromEnv

	// ErrorKind classifies an error returned by Generate into the label used
	// for metrics outcomes.
	ErrorKind = apperrors.Kind
)

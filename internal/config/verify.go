package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Reference move generators known to the verify command.
const (
	OracleDragontooth = "dragontooth"
	OracleNotnil      = "notnil"
)

// KnownOracles lists the oracle names accepted by Validate.
var KnownOracles = []string{OracleDragontooth, OracleNotnil}

// VerifyConfig holds settings for batch cross-checking of positions.
type VerifyConfig struct {
	// Workers is the number of goroutines checking positions
	Workers int

	// BufferSize is the capacity of the work and result channels
	BufferSize int

	// Oracles names the reference move generators to compare against
	Oracles []string

	// Depth is the perft depth compared per position (0 compares root moves only)
	Depth int

	// FailFast stops at the first mismatch and skips positions not yet checked
	FailFast bool

	// Dedupe skips subtrees already compared for any position in the batch
	Dedupe bool
}

// NewVerifyConfig creates a VerifyConfig with default values.
func NewVerifyConfig() *VerifyConfig {
	return &VerifyConfig{
		Workers:    runtime.NumCPU(),
		BufferSize: 64,
		Oracles:    []string{OracleDragontooth, OracleNotnil},
	}
}

// Validate checks that the verify configuration is valid.
func (v *VerifyConfig) Validate() error {
	if v.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", v.Workers, errors.ErrInvalidConfig)
	}
	if v.BufferSize < 0 {
		return fmt.Errorf("buffer size (%d) is negative: %w", v.BufferSize, errors.ErrInvalidConfig)
	}
	if v.Depth < 0 {
		return fmt.Errorf("depth (%d) is negative: %w", v.Depth, errors.ErrInvalidConfig)
	}
	if len(v.Oracles) == 0 {
		return fmt.Errorf("no oracles selected: %w", errors.ErrInvalidConfig)
	}
	for _, name := range v.Oracles {
		if !knownOracle(name) {
			return fmt.Errorf("unknown oracle %q: %w", name, errors.ErrInvalidConfig)
		}
	}
	return nil
}

func knownOracle(name string) bool {
	for _, known := range KnownOracles {
		if name == known {
			return true
		}
	}
	return false
}

package errors

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/compozy/tokencase/engine/core"
	"github.com/compozy/tokencase/pkg/logger"
)

// -----
// Recovery Functions
// -----

// WithRecover executes a function with panic recovery
func WithRecover(operation string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError(operation, r)
		}
	}()

	return fn()
}

func panicError(operation string, r any) error {
	logger.Error("panic recovered",
		"operation", operation,
		"panic", r,
		"stack", string(debug.Stack()),
	)

	var err error
	switch v := r.(type) {
	case error:
		err = v
	case string:
		err = errors.New(v)
	default:
		err = fmt.Errorf("panic: %v", v)
	}

	return core.NewError(err, core.ErrorCodePanicRecovered, map[string]any{
		"operation": operation,
		"panic":     fmt.Sprintf("%v", r),
	})
}

// -----
// Graceful Degradation
// -----

// GracefulDegradeConfig configures graceful degradation behavior
type GracefulDegradeConfig struct {
	LogWarning bool
}

// WithGracefulDegrade executes a function and returns a default value on error
func WithGracefulDegrade[T any](operation string, config *GracefulDegradeConfig, defaultVal T, fn func() (T, error)) T {
	result, err := fn()
	if err != nil {
		if config != nil && config.LogWarning {
			logger.Warn("operation degraded gracefully",
				"operation", operation,
				"error", err,
				"default_value", defaultVal,
			)
		}
		return defaultVal
	}
	return result
}

package trafficsim

import "fmt"

// ErrorCode represents specific configuration error conditions
type ErrorCode int

const (
	// No error occurred
	ErrCodeNone ErrorCode = iota
	// A dwell time, horizon or step size is not positive
	ErrCodeInvalidDuration
	// Spawn probability is outside [0, 1]
	ErrCodeInvalidProbability
	// Spawn speed range is empty or not positive
	ErrCodeInvalidSpeedRange
	// Stop line offset is negative
	ErrCodeInvalidOffset
	// No lanes configured
	ErrCodeNoLanes
	// Two lanes share an id
	ErrCodeDuplicateLane
	// A lane dimension is invalid
	ErrCodeInvalidLane
)

// ConfigurationError represents an invalid simulation configuration
type ConfigurationError struct {
	Code    ErrorCode
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error [%s]: %s", e.Field, e.Message)
}

// NewConfigurationError creates a configuration error with custom values
func NewConfigurationError(code ErrorCode, field, message string) *ConfigurationError {
	return &ConfigurationError{
		Code:    code,
		Field:   field,
		Message: message,
	}
}

// NewInvalidDurationError creates an error for a non-positive time setting
func NewInvalidDurationError(field string, value int) *ConfigurationError {
	return &ConfigurationError{
		Code:    ErrCodeInvalidDuration,
		Field:   field,
		Message: fmt.Sprintf("duration must be positive, got %d", value),
	}
}

// NewInvalidProbabilityError creates an error for a probability outside [0, 1]
func NewInvalidProbabilityError(value float64) *ConfigurationError {
	return &ConfigurationError{
		Code:    ErrCodeInvalidProbability,
		Field:   "spawn_probability",
		Message: fmt.Sprintf("probability must be within [0, 1], got %v", value),
	}
}

// NewInvalidSpeedRangeError creates an error for an unusable speed range
func NewInvalidSpeedRangeError(min, max float64) *ConfigurationError {
	return &ConfigurationError{
		Code:    ErrCodeInvalidSpeedRange,
		Field:   "speed_range",
		Message: fmt.Sprintf("speed range [%v, %v] is invalid", min, max),
	}
}

// NewNoLanesError creates an error for a configuration without lanes
func NewNoLanesError() *ConfigurationError {
	return &ConfigurationError{
		Code:    ErrCodeNoLanes,
		Field:   "lanes",
		Message: "at least one lane is required",
	}
}

// NewDuplicateLaneError creates an error for a repeated lane id
func NewDuplicateLaneError(id int) *ConfigurationError {
	return &ConfigurationError{
		Code:    ErrCodeDuplicateLane,
		Field:   "lanes",
		Message: fmt.Sprintf("lane id %d is configured twice", id),
	}
}

// NewInvalidLaneError creates an error for a lane with bad dimensions
func NewInvalidLaneError(id int, reason string) *ConfigurationError {
	return &ConfigurationError{
		Code:    ErrCodeInvalidLane,
		Field:   "lanes",
		Message: fmt.Sprintf("lane %d: %s", id, reason),
	}
}

// IsConfigurationError checks if an error is a ConfigurationError
func IsConfigurationError(err error) bool {
	_, ok := err.(*ConfigurationError)
	return ok
}

// GetErrorCode returns the error code for known error types
func GetErrorCode(err error) ErrorCode {
	if e, ok := err.(*ConfigurationError); ok {
		return e.Code
	}
	return ErrCodeNone
}

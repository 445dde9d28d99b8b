package trafficsim

import (
	"errors"
	"testing"
)

func TestErrors_ErrorCode(t *testing.T) {
	testCases := []ErrorCode{
		ErrCodeNone,
		ErrCodeInvalidDuration,
		ErrCodeInvalidProbability,
		ErrCodeInvalidSpeedRange,
		ErrCodeInvalidOffset,
		ErrCodeNoLanes,
		ErrCodeDuplicateLane,
		ErrCodeInvalidLane,
	}

	for i, code := range testCases {
		if int(code) != i {
			t.Errorf("Expected code %d at position %d, got %d", i, i, int(code))
		}
	}
}

func TestErrors_ConstructorCodes(t *testing.T) {
	cases := []struct {
		name string
		err  *ConfigurationError
		code ErrorCode
	}{
		{"duration", NewInvalidDurationError("green_duration", 0), ErrCodeInvalidDuration},
		{"probability", NewInvalidProbabilityError(1.5), ErrCodeInvalidProbability},
		{"speed range", NewInvalidSpeedRangeError(50, 20), ErrCodeInvalidSpeedRange},
		{"no lanes", NewNoLanesError(), ErrCodeNoLanes},
		{"duplicate lane", NewDuplicateLaneError(1), ErrCodeDuplicateLane},
		{"invalid lane", NewInvalidLaneError(2, "length must be positive"), ErrCodeInvalidLane},
		{"custom", NewConfigurationError(ErrCodeInvalidOffset, "stop_line_offset", "negative"), ErrCodeInvalidOffset},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.err.Code != c.code {
				t.Errorf("Expected code %d, got %d", c.code, c.err.Code)
			}
			if c.err.Error() == "" {
				t.Error("Expected a non-empty error message")
			}
		})
	}
}

func TestErrors_MessageIncludesField(t *testing.T) {
	err := NewInvalidDurationError("yellow_duration", -3)

	want := "configuration error [yellow_duration]: duration must be positive, got -3"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
}

func TestErrors_IsConfigurationError(t *testing.T) {
	if !IsConfigurationError(NewNoLanesError()) {
		t.Error("Expected a ConfigurationError to be recognized")
	}
	if IsConfigurationError(errors.New("plain")) {
		t.Error("Expected a plain error not to be recognized")
	}
	if IsConfigurationError(nil) {
		t.Error("Expected nil not to be recognized")
	}
}

func TestErrors_GetErrorCode(t *testing.T) {
	if code := GetErrorCode(NewInvalidProbabilityError(2)); code != ErrCodeInvalidProbability {
		t.Errorf("Expected ErrCodeInvalidProbability, got %d", code)
	}
	if code := GetErrorCode(errors.New("plain")); code != ErrCodeNone {
		t.Errorf("Expected ErrCodeNone for unknown errors, got %d", code)
	}
}

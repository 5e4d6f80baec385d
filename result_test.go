package vk

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestResultValues(t *testing.T) {
	// Values are the native ABI; a drifted constant corrupts every status
	// check against the driver.
	cases := []struct {
		result Result
		value  int32
		name   string
	}{
		{Success, 0, "VK_SUCCESS"},
		{NotReady, 1, "VK_NOT_READY"},
		{Timeout, 2, "VK_TIMEOUT"},
		{EventSet, 3, "VK_EVENT_SET"},
		{EventReset, 4, "VK_EVENT_RESET"},
		{Incomplete, 5, "VK_INCOMPLETE"},
		{ErrorOutOfHostMemory, -1, "VK_ERROR_OUT_OF_HOST_MEMORY"},
		{ErrorOutOfDeviceMemory, -2, "VK_ERROR_OUT_OF_DEVICE_MEMORY"},
		{ErrorInitializationFailed, -3, "VK_ERROR_INITIALIZATION_FAILED"},
		{ErrorDeviceLost, -4, "VK_ERROR_DEVICE_LOST"},
		{ErrorMemoryMapFailed, -5, "VK_ERROR_MEMORY_MAP_FAILED"},
		{ErrorLayerNotPresent, -6, "VK_ERROR_LAYER_NOT_PRESENT"},
		{ErrorExtensionNotPresent, -7, "VK_ERROR_EXTENSION_NOT_PRESENT"},
		{ErrorFeatureNotPresent, -8, "VK_ERROR_FEATURE_NOT_PRESENT"},
		{ErrorIncompatibleDriver, -9, "VK_ERROR_INCOMPATIBLE_DRIVER"},
		{ErrorSurfaceLost, -1000000000, "VK_ERROR_SURFACE_LOST_KHR"},
		{Suboptimal, 1000001003, "VK_SUBOPTIMAL_KHR"},
		{ErrorOutOfDate, -1000001004, "VK_ERROR_OUT_OF_DATE_KHR"},
		{ErrorValidationFailed, -1000011001, "VK_ERROR_VALIDATION_FAILED_EXT"},
		{ErrorInvalidShader, -1000012000, "VK_ERROR_INVALID_SHADER_NV"},
	}
	for _, c := range cases {
		if int32(c.result) != c.value {
			t.Errorf("%s = %d, want %d", c.name, int32(c.result), c.value)
		}
		if c.result.String() != c.name {
			t.Errorf("String() = %q, want %q", c.result.String(), c.name)
		}
	}
}

func TestResultStringUnknown(t *testing.T) {
	if s := Result(-123456).String(); s != "VK_RESULT(-123456)" {
		t.Errorf("unknown result String() = %q", s)
	}
}

func TestError(t *testing.T) {
	if err := Error(Success); err != nil {
		t.Fatalf("Error(Success) = %v, want nil", err)
	}
	err := Error(ErrorDeviceLost)
	if err == nil {
		t.Fatal("Error(ErrorDeviceLost) = nil")
	}
	var re *ResultError
	if !errors.As(err, &re) {
		t.Fatalf("error %v is not a *ResultError", err)
	}
	if re.Code != ErrorDeviceLost {
		t.Errorf("code = %v, want %v", re.Code, ErrorDeviceLost)
	}
}

func TestResultCode(t *testing.T) {
	if got := ResultCode(nil); got != Success {
		t.Errorf("ResultCode(nil) = %v", got)
	}
	if got := ResultCode(Error(Timeout)); got != Timeout {
		t.Errorf("ResultCode = %v, want Timeout", got)
	}
	wrapped := errors.Wrap(Error(ErrorOutOfDate), "presenting")
	if got := ResultCode(wrapped); got != ErrorOutOfDate {
		t.Errorf("ResultCode(wrapped) = %v, want ErrorOutOfDate", got)
	}
	if got := ResultCode(errors.New("unrelated")); got != Success {
		t.Errorf("ResultCode(unrelated) = %v, want Success", got)
	}
}

func TestErrNotSupportedWrapping(t *testing.T) {
	err := errors.Wrap(ErrNotSupported, "VK_KHR_swapchain")
	if !errors.Is(err, ErrNotSupported) {
		t.Error("wrapped ErrNotSupported does not match errors.Is")
	}
}

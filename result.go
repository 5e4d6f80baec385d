package vk

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Result is a native Vulkan status code. Negative values are errors,
// positive values are non-error statuses.
type Result int32

const (
	Success                      Result = 0
	NotReady                     Result = 1
	Timeout                      Result = 2
	EventSet                     Result = 3
	EventReset                   Result = 4
	Incomplete                   Result = 5
	ErrorOutOfHostMemory         Result = -1
	ErrorOutOfDeviceMemory       Result = -2
	ErrorInitializationFailed    Result = -3
	ErrorDeviceLost              Result = -4
	ErrorMemoryMapFailed         Result = -5
	ErrorLayerNotPresent         Result = -6
	ErrorExtensionNotPresent     Result = -7
	ErrorFeatureNotPresent       Result = -8
	ErrorIncompatibleDriver      Result = -9
	ErrorTooManyObjects          Result = -10
	ErrorFormatNotSupported      Result = -11
	ErrorFragmentedPool          Result = -12
	ErrorSurfaceLost             Result = -1000000000
	ErrorNativeWindowInUse       Result = -1000000001
	Suboptimal                   Result = 1000001003
	ErrorOutOfDate               Result = -1000001004
	ErrorIncompatibleDisplay     Result = -1000003001
	ErrorValidationFailed        Result = -1000011001
	ErrorInvalidShader           Result = -1000012000
	ErrorOutOfPoolMemory         Result = -1000069000
	ErrorInvalidExternalHandle   Result = -1000072003
	ErrorNotPermitted            Result = -1000174001
	ErrorFullScreenExclusiveLost Result = -1000255000
)

var resultNames = map[Result]string{
	Success:                      "VK_SUCCESS",
	NotReady:                     "VK_NOT_READY",
	Timeout:                      "VK_TIMEOUT",
	EventSet:                     "VK_EVENT_SET",
	EventReset:                   "VK_EVENT_RESET",
	Incomplete:                   "VK_INCOMPLETE",
	ErrorOutOfHostMemory:         "VK_ERROR_OUT_OF_HOST_MEMORY",
	ErrorOutOfDeviceMemory:       "VK_ERROR_OUT_OF_DEVICE_MEMORY",
	ErrorInitializationFailed:    "VK_ERROR_INITIALIZATION_FAILED",
	ErrorDeviceLost:              "VK_ERROR_DEVICE_LOST",
	ErrorMemoryMapFailed:         "VK_ERROR_MEMORY_MAP_FAILED",
	ErrorLayerNotPresent:         "VK_ERROR_LAYER_NOT_PRESENT",
	ErrorExtensionNotPresent:     "VK_ERROR_EXTENSION_NOT_PRESENT",
	ErrorFeatureNotPresent:       "VK_ERROR_FEATURE_NOT_PRESENT",
	ErrorIncompatibleDriver:      "VK_ERROR_INCOMPATIBLE_DRIVER",
	ErrorTooManyObjects:          "VK_ERROR_TOO_MANY_OBJECTS",
	ErrorFormatNotSupported:      "VK_ERROR_FORMAT_NOT_SUPPORTED",
	ErrorFragmentedPool:          "VK_ERROR_FRAGMENTED_POOL",
	ErrorSurfaceLost:             "VK_ERROR_SURFACE_LOST_KHR",
	ErrorNativeWindowInUse:       "VK_ERROR_NATIVE_WINDOW_IN_USE_KHR",
	Suboptimal:                   "VK_SUBOPTIMAL_KHR",
	ErrorOutOfDate:               "VK_ERROR_OUT_OF_DATE_KHR",
	ErrorIncompatibleDisplay:     "VK_ERROR_INCOMPATIBLE_DISPLAY_KHR",
	ErrorValidationFailed:        "VK_ERROR_VALIDATION_FAILED_EXT",
	ErrorInvalidShader:           "VK_ERROR_INVALID_SHADER_NV",
	ErrorOutOfPoolMemory:         "VK_ERROR_OUT_OF_POOL_MEMORY_KHR",
	ErrorInvalidExternalHandle:   "VK_ERROR_INVALID_EXTERNAL_HANDLE_KHR",
	ErrorNotPermitted:            "VK_ERROR_NOT_PERMITTED_EXT",
	ErrorFullScreenExclusiveLost: "VK_ERROR_FULL_SCREEN_EXCLUSIVE_MODE_LOST_EXT",
}

func (r Result) String() string {
	if s, ok := resultNames[r]; ok {
		return s
	}
	return fmt.Sprintf("VK_RESULT(%d)", int32(r))
}

// ResultError wraps a non-success Result returned by a native call.
type ResultError struct {
	Code Result
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("vulkan error: %s", e.Code)
}

// Error converts a native Result into an error. Success maps to nil,
// everything else carries the code so callers can decide how to react
// (device lost, out of date swapchain, ...). Nothing is retried here.
func Error(r Result) error {
	if r == Success {
		return nil
	}
	return &ResultError{Code: r}
}

// ResultCode extracts the native status code from an error produced by this
// package, or Success if err is nil or not a driver failure.
func ResultCode(err error) Result {
	if err == nil {
		return Success
	}
	var re *ResultError
	if errors.As(err, &re) {
		return re.Code
	}
	return Success
}

// ErrNotSupported is reported when an extension entry point could not be
// resolved from the driver, instance or device.
var ErrNotSupported = errors.New("vk: entry point not available (extension not present)")

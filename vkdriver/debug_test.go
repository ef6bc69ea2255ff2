package vkdriver

import (
	"testing"

	"github.com/andewx/vktriangle"
	"github.com/stretchr/testify/assert"
	vk "github.com/vulkan-go/vulkan"
)

func TestReportFlags(t *testing.T) {
	flags := reportFlags(
		vktriangle.SeverityVerbose|vktriangle.SeverityWarning|vktriangle.SeverityError,
		vktriangle.MessageGeneral|vktriangle.MessageValidation|vktriangle.MessagePerformance,
	)
	want := vk.DebugReportFlags(vk.DebugReportDebugBit | vk.DebugReportWarningBit |
		vk.DebugReportErrorBit | vk.DebugReportPerformanceWarningBit)
	assert.Equal(t, want, flags)
	assert.Zero(t, flags&vk.DebugReportFlags(vk.DebugReportInformationBit))

	flags = reportFlags(vktriangle.SeverityError, vktriangle.MessageValidation)
	assert.Equal(t, vk.DebugReportFlags(vk.DebugReportErrorBit), flags)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		bits     vk.DebugReportFlagBits
		prefix   string
		severity vktriangle.Severity
		msgType  vktriangle.MessageType
	}{
		{vk.DebugReportErrorBit, "Validation", vktriangle.SeverityError, vktriangle.MessageValidation},
		{vk.DebugReportWarningBit, "Loader Message", vktriangle.SeverityWarning, vktriangle.MessageGeneral},
		{vk.DebugReportPerformanceWarningBit, "Validation", vktriangle.SeverityWarning, vktriangle.MessagePerformance},
		{vk.DebugReportInformationBit, "", vktriangle.SeverityInfo, vktriangle.MessageGeneral},
		{vk.DebugReportDebugBit, "Loader Message", vktriangle.SeverityVerbose, vktriangle.MessageGeneral},
	}
	for _, tt := range tests {
		severity, msgType := classify(vk.DebugReportFlags(tt.bits), tt.prefix)
		assert.Equal(t, tt.severity, severity, tt.prefix)
		assert.Equal(t, tt.msgType, msgType, tt.prefix)
	}
}

func TestCallbackFunc(t *testing.T) {
	var got []string
	fn := callbackFunc(&vktriangle.MessengerConfig{
		Types: vktriangle.MessageValidation,
		Callback: func(severity vktriangle.Severity, msgType vktriangle.MessageType, message string) bool {
			got = append(got, message)
			return false
		},
	})

	ret := fn(vk.DebugReportFlags(vk.DebugReportErrorBit), 0, 0, 0, 0, "Validation", "bad layout", nil)
	assert.Equal(t, vk.Bool32(vk.False), ret)
	ret = fn(vk.DebugReportFlags(vk.DebugReportWarningBit), 0, 0, 0, 0, "Loader Message", "ignored", nil)
	assert.Equal(t, vk.Bool32(vk.False), ret)

	assert.Equal(t, []string{"bad layout"}, got)

	nilCallback := callbackFunc(&vktriangle.MessengerConfig{Types: vktriangle.MessageGeneral})
	assert.Equal(t, vk.Bool32(vk.False), nilCallback(vk.DebugReportFlags(vk.DebugReportErrorBit), 0, 0, 0, 0, "", "x", nil))
}

func TestSafeStrings(t *testing.T) {
	assert.Equal(t, "VK_KHR_surface\x00", safeString("VK_KHR_surface"))
	assert.Equal(t, "VK_KHR_surface\x00", safeString("VK_KHR_surface\x00"))
	assert.Equal(t, []string{"a\x00", "b\x00"}, safeStrings([]string{"a", "b\x00"}))
	assert.Empty(t, safeStrings(nil))
}

func TestNewError(t *testing.T) {
	assert.NoError(t, NewError(vk.Success))
	err := NewError(vk.ErrorLayerNotPresent)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "vulkan error")
}

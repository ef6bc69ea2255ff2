package vkdriver

import (
	"strings"
	"unsafe"

	"github.com/andewx/vktriangle"
	vk "github.com/vulkan-go/vulkan"
)

// reportFlags translates a messenger subscription into debug report flags.
// Debug report has no general or validation categories, so those types are
// delivered through the severity bits alone.
func reportFlags(severities vktriangle.Severity, types vktriangle.MessageType) vk.DebugReportFlags {
	var flags vk.DebugReportFlagBits
	if severities.Has(vktriangle.SeverityVerbose) {
		flags |= vk.DebugReportDebugBit
	}
	if severities.Has(vktriangle.SeverityInfo) {
		flags |= vk.DebugReportInformationBit
	}
	if severities.Has(vktriangle.SeverityWarning) {
		flags |= vk.DebugReportWarningBit
	}
	if severities.Has(vktriangle.SeverityError) {
		flags |= vk.DebugReportErrorBit
	}
	if types.Has(vktriangle.MessagePerformance) {
		flags |= vk.DebugReportPerformanceWarningBit
	}
	return vk.DebugReportFlags(flags)
}

// classify maps a debug report back to a severity and message type.
func classify(flags vk.DebugReportFlags, layerPrefix string) (vktriangle.Severity, vktriangle.MessageType) {
	has := func(bit vk.DebugReportFlagBits) bool {
		return flags&vk.DebugReportFlags(bit) != 0
	}

	msgType := vktriangle.MessageGeneral
	if strings.Contains(strings.ToLower(layerPrefix), "validation") {
		msgType = vktriangle.MessageValidation
	}

	switch {
	case has(vk.DebugReportErrorBit):
		return vktriangle.SeverityError, msgType
	case has(vk.DebugReportPerformanceWarningBit):
		return vktriangle.SeverityWarning, vktriangle.MessagePerformance
	case has(vk.DebugReportWarningBit):
		return vktriangle.SeverityWarning, msgType
	case has(vk.DebugReportInformationBit):
		return vktriangle.SeverityInfo, msgType
	default:
		return vktriangle.SeverityVerbose, msgType
	}
}

// callbackFunc adapts cfg.Callback to the debug report signature. Messages
// of unsubscribed types are dropped.
func callbackFunc(cfg *vktriangle.MessengerConfig) vk.DebugReportCallbackFunc {
	callback := cfg.Callback
	types := cfg.Types
	return func(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType,
		object uint64, location uint, messageCode int32, pLayerPrefix string,
		pMessage string, pUserData unsafe.Pointer) vk.Bool32 {

		if callback == nil {
			return vk.Bool32(vk.False)
		}
		severity, msgType := classify(flags, pLayerPrefix)
		if types&msgType == 0 {
			return vk.Bool32(vk.False)
		}
		if callback(severity, msgType, pMessage) {
			return vk.Bool32(vk.True)
		}
		return vk.Bool32(vk.False)
	}
}

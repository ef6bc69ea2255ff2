package vktriangle

const (
	// DebugExtensionName is the instance extension that backs the debug messenger.
	DebugExtensionName = "VK_EXT_debug_report"
	// PortabilityExtensionName must be enabled with InstanceCreateEnumeratePortability.
	PortabilityExtensionName = "VK_KHR_portability_enumeration"
	// KhronosValidationLayer is the standard validation layer.
	KhronosValidationLayer = "VK_LAYER_KHRONOS_validation"
)

// NameSet pairs the names a caller wants with the names a runtime actually
// advertises, for either layers or extensions.
type NameSet struct {
	wanted []string
	actual []string
}

func NewNameSet(wanted, actual []string) *NameSet {
	return &NameSet{wanted: wanted, actual: actual}
}

// HasWanted reports whether every wanted name is advertised, along with the
// names that are not. Matching is exact and case sensitive.
func (s *NameSet) HasWanted() (bool, []string) {
	missing := []string{}

	for _, want := range s.wanted {
		has := false
		for _, act := range s.actual {
			if want == act {
				has = true
				break
			}
		}
		if !has {
			missing = append(missing, want)
		}
	}

	return len(missing) == 0, missing
}

// Names returns the wanted names without duplicates, in order.
func (s *NameSet) Names() []string {
	seen := make(map[string]struct{}, len(s.wanted))
	names := make([]string, 0, len(s.wanted))
	for _, want := range s.wanted {
		if _, ok := seen[want]; ok {
			continue
		}
		seen[want] = struct{}{}
		names = append(names, want)
	}
	return names
}

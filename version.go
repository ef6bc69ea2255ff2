package vktriangle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Version is a packed major.minor.patch version in the driver's encoding.
type Version uint32

// MakeVersion packs a version the same way VK_MAKE_VERSION does.
func MakeVersion(major, minor, patch uint32) Version {
	return Version(major<<22 | minor<<12 | patch)
}

var (
	DefaultAppVersion    = MakeVersion(1, 0, 0)
	DefaultEngineVersion = MakeVersion(1, 0, 0)
	DefaultAPIVersion    = MakeVersion(1, 0, 0)
)

func (v Version) Major() uint32 { return uint32(v) >> 22 }
func (v Version) Minor() uint32 { return (uint32(v) >> 12) & 0x3ff }
func (v Version) Patch() uint32 { return uint32(v) & 0xfff }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// ParseVersion reads a "major.minor.patch" string. Missing trailing parts are zero.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return 0, errors.Errorf("invalid version %q: too many components", s)
	}
	limits := [3]uint64{0x3ff, 0x3ff, 0xfff}
	var fields [3]uint32
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid version %q", s)
		}
		if n > limits[i] {
			return 0, errors.Errorf("invalid version %q: component out of range", s)
		}
		fields[i] = uint32(n)
	}
	return MakeVersion(fields[0], fields[1], fields[2]), nil
}

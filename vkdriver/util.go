package vkdriver

import "strings"

const end = "\x00"

// safeString returns s terminated by a NUL, as the C side expects.
func safeString(s string) string {
	if strings.HasSuffix(s, end) {
		return s
	}
	return s + end
}

func safeStrings(list []string) []string {
	out := make([]string, len(list))
	for i := range list {
		out[i] = safeString(list[i])
	}
	return out
}

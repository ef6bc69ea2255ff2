package vkdriver

import (
	"fmt"

	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"
)

func isError(ret vk.Result) bool {
	return ret != vk.Success
}

// NewError converts a failed vk.Result into an error carrying the call
// stack. It returns nil for vk.Success.
func NewError(ret vk.Result) error {
	if !isError(ret) {
		return nil
	}
	return errors.Wrapf(vk.Error(ret), "vulkan error (%d)", ret)
}

func checkErr(err *error) {
	if v := recover(); v != nil {
		*err = errors.WithStack(fmt.Errorf("%+v", v))
	}
}

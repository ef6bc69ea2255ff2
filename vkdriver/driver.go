// Package vkdriver implements vktriangle.Driver on top of vulkan-go.
package vkdriver

import (
	"unsafe"

	"github.com/andewx/vktriangle"
	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"
	"go.uber.org/zap"
)

// Driver hands out opaque handles for the vulkan-go objects it creates.
// It must be used from a single goroutine.
type Driver struct {
	log *zap.Logger

	next       uint64
	instances  map[vktriangle.Instance]vk.Instance
	messengers map[vktriangle.Messenger]vk.DebugReportCallback
	owners     map[vktriangle.Messenger]vktriangle.Instance
}

// New loads the Vulkan loader through getProcAddr, usually
// glfw.GetVulkanGetInstanceProcAddress().
func New(getProcAddr unsafe.Pointer, log *zap.Logger) (*Driver, error) {
	if getProcAddr == nil {
		return nil, errors.New("vulkan: no vkGetInstanceProcAddr")
	}
	if log == nil {
		log = zap.NewNop()
	}
	vk.SetGetInstanceProcAddr(getProcAddr)
	if err := vk.Init(); err != nil {
		return nil, errors.Wrap(err, "vulkan: loading library")
	}
	return &Driver{
		log:        log.Named("vulkan"),
		instances:  make(map[vktriangle.Instance]vk.Instance, 1),
		messengers: make(map[vktriangle.Messenger]vk.DebugReportCallback, 1),
		owners:     make(map[vktriangle.Messenger]vktriangle.Instance, 1),
	}, nil
}

func (d *Driver) InstanceExtensions() ([]string, error) {
	return InstanceExtensions()
}

func (d *Driver) InstanceLayers() ([]string, error) {
	return ValidationLayers()
}

func (d *Driver) CreateInstance(info *vktriangle.InstanceInfo) (vktriangle.Instance, error) {
	extensions := safeStrings(info.Extensions)
	layers := safeStrings(info.Layers)

	var instance vk.Instance
	ret := vk.CreateInstance(&vk.InstanceCreateInfo{
		SType: vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: &vk.ApplicationInfo{
			SType:              vk.StructureTypeApplicationInfo,
			PApplicationName:   safeString(info.App.Name),
			ApplicationVersion: uint32(info.App.Version),
			PEngineName:        safeString(info.App.EngineName),
			EngineVersion:      uint32(info.App.EngineVersion),
			ApiVersion:         uint32(info.App.APIVersion),
		},
		Flags:                   vk.InstanceCreateFlags(info.Flags),
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: extensions,
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     layers,
	}, nil, &instance)
	if err := NewError(ret); err != nil {
		return vktriangle.NullInstance, err
	}

	// Loads the instance level entry points, extensions included.
	if err := vk.InitInstance(instance); err != nil {
		vk.DestroyInstance(instance, nil)
		return vktriangle.NullInstance, errors.Wrap(err, "vulkan: loading instance functions")
	}

	d.next++
	handle := vktriangle.Instance(d.next)
	d.instances[handle] = instance
	d.log.Debug("instance created", zap.Uint64("handle", uint64(handle)))
	return handle, nil
}

func (d *Driver) DestroyInstance(handle vktriangle.Instance) {
	instance, ok := d.instances[handle]
	if !ok {
		return
	}
	for m, owner := range d.owners {
		if owner == handle {
			d.log.Warn("destroying instance with a live messenger", zap.Uint64("messenger", uint64(m)))
		}
	}
	vk.DestroyInstance(instance, nil)
	delete(d.instances, handle)
}

// LookupMessengerProc resolves name through vkGetInstanceProcAddr. Only the
// debug report entry point is understood; other names are reported as
// unsupported.
func (d *Driver) LookupMessengerProc(handle vktriangle.Instance, name string) (vktriangle.CreateMessengerFunc, bool) {
	instance, ok := d.instances[handle]
	if !ok || name != vktriangle.CreateMessengerProcName {
		return nil, false
	}
	// Finding the address is the capability check; the call itself goes
	// through the binding vk.InitInstance already loaded.
	if vk.GetInstanceProcAddr(instance, safeString(name)) == nil {
		return nil, false
	}
	return d.createMessenger, true
}

func (d *Driver) createMessenger(handle vktriangle.Instance, cfg *vktriangle.MessengerConfig) (vktriangle.Messenger, error) {
	instance, ok := d.instances[handle]
	if !ok {
		return vktriangle.NullMessenger, errors.Errorf("vulkan: unknown instance %d", handle)
	}

	var callback vk.DebugReportCallback
	ret := vk.CreateDebugReportCallback(instance, &vk.DebugReportCallbackCreateInfo{
		SType:       vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags:       reportFlags(cfg.Severities, cfg.Types),
		PfnCallback: callbackFunc(cfg),
	}, nil, &callback)
	if err := NewError(ret); err != nil {
		return vktriangle.NullMessenger, err
	}

	d.next++
	messenger := vktriangle.Messenger(d.next)
	d.messengers[messenger] = callback
	d.owners[messenger] = handle
	d.log.Debug("debug report callback created", zap.Uint64("handle", uint64(messenger)))
	return messenger, nil
}

func (d *Driver) DestroyMessenger(handle vktriangle.Instance, messenger vktriangle.Messenger) {
	instance, ok := d.instances[handle]
	if !ok {
		return
	}
	callback, ok := d.messengers[messenger]
	if !ok {
		return
	}
	if callback != vk.NullDebugReportCallback {
		vk.DestroyDebugReportCallback(instance, callback, nil)
	}
	delete(d.messengers, messenger)
	delete(d.owners, messenger)
}

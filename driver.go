package vktriangle

// Instance is an opaque handle to a driver instance. The zero value is the
// null handle.
type Instance uint64

// NullInstance is the handle of an instance that was never created.
const NullInstance Instance = 0

// Messenger is an opaque handle to a registered debug messenger.
type Messenger uint64

// NullMessenger is the handle of a messenger that was never created.
const NullMessenger Messenger = 0

// InstanceCreateFlags mirror the driver's instance creation flags.
type InstanceCreateFlags uint32

const (
	// InstanceCreateEnumeratePortability lets the loader expose portability
	// (non-conformant) implementations such as MoltenVK.
	InstanceCreateEnumeratePortability InstanceCreateFlags = 0x00000001
)

// AppInfo describes the application to the driver.
type AppInfo struct {
	Name          string
	Version       Version
	EngineName    string
	EngineVersion Version
	APIVersion    Version
}

// InstanceInfo is everything the driver needs to create an instance.
type InstanceInfo struct {
	App        AppInfo
	Flags      InstanceCreateFlags
	Extensions []string
	Layers     []string
}

// CreateMessengerFunc is a resolved messenger creation entry point.
type CreateMessengerFunc func(instance Instance, cfg *MessengerConfig) (Messenger, error)

// Driver is the graphics runtime the bootstrap talks to.
type Driver interface {
	// InstanceExtensions lists the instance extensions the runtime advertises.
	InstanceExtensions() ([]string, error)
	// InstanceLayers lists the instance layers the runtime advertises.
	InstanceLayers() ([]string, error)
	CreateInstance(info *InstanceInfo) (Instance, error)
	DestroyInstance(instance Instance)
	// LookupMessengerProc resolves the named messenger creation entry point
	// for instance. The boolean is false when the runtime does not expose it.
	LookupMessengerProc(instance Instance, name string) (CreateMessengerFunc, bool)
	DestroyMessenger(instance Instance, messenger Messenger)
}

// WindowSystem is the windowing collaborator.
type WindowSystem interface {
	Init() error
	// CreateWindow opens a non-resizable window with no client API bound.
	CreateWindow(width, height int, title string) (Window, error)
	PollEvents()
	Terminate()
}

// Window is a native window created by a WindowSystem.
type Window interface {
	ShouldClose() bool
	// RequiredInstanceExtensions lists the instance extensions needed to
	// present to this window.
	RequiredInstanceExtensions() []string
	Destroy()
}

package vktriangle

import (
	"github.com/pkg/errors"
)

// journal records collaborator calls in order.
type journal struct {
	calls []string
}

func (j *journal) add(call string) { j.calls = append(j.calls, call) }

type fakeDriver struct {
	j *journal

	extensions    []string
	layers        []string
	extensionsErr error
	layersErr     error
	createErr     error
	noProc        bool
	messengerErr  error

	info      *InstanceInfo
	config    *MessengerConfig
	instances int
	lookups   []string
}

func (d *fakeDriver) InstanceExtensions() ([]string, error) {
	d.j.add("driver.extensions")
	return d.extensions, d.extensionsErr
}

func (d *fakeDriver) InstanceLayers() ([]string, error) {
	d.j.add("driver.layers")
	return d.layers, d.layersErr
}

func (d *fakeDriver) CreateInstance(info *InstanceInfo) (Instance, error) {
	d.j.add("driver.create_instance")
	d.info = info
	if d.createErr != nil {
		return NullInstance, d.createErr
	}
	d.instances++
	return Instance(41), nil
}

func (d *fakeDriver) DestroyInstance(instance Instance) {
	d.j.add("driver.destroy_instance")
}

func (d *fakeDriver) LookupMessengerProc(instance Instance, name string) (CreateMessengerFunc, bool) {
	d.j.add("driver.lookup")
	d.lookups = append(d.lookups, name)
	if d.noProc {
		return nil, false
	}
	return func(instance Instance, cfg *MessengerConfig) (Messenger, error) {
		d.j.add("driver.create_messenger")
		d.config = cfg
		if d.messengerErr != nil {
			return NullMessenger, d.messengerErr
		}
		return Messenger(7), nil
	}, true
}

func (d *fakeDriver) DestroyMessenger(instance Instance, messenger Messenger) {
	d.j.add("driver.destroy_messenger")
}

type fakeSystem struct {
	j *journal

	initErr   error
	windowErr error
	window    *fakeWindow
	polls     int
}

func (s *fakeSystem) Init() error {
	s.j.add("system.init")
	return s.initErr
}

func (s *fakeSystem) CreateWindow(width, height int, title string) (Window, error) {
	s.j.add("system.create_window")
	if s.windowErr != nil {
		return nil, s.windowErr
	}
	s.window.width, s.window.height, s.window.title = width, height, title
	return s.window, nil
}

func (s *fakeSystem) PollEvents() {
	s.polls++
	if s.polls >= s.window.closeAfter {
		s.window.closed = true
	}
}

func (s *fakeSystem) Terminate() {
	s.j.add("system.terminate")
}

type fakeWindow struct {
	j *journal

	width, height int
	title         string
	extensions    []string
	closeAfter    int
	closed        bool
}

func (w *fakeWindow) ShouldClose() bool { return w.closed }

func (w *fakeWindow) RequiredInstanceExtensions() []string { return w.extensions }

func (w *fakeWindow) Destroy() { w.j.add("window.destroy") }

type fixture struct {
	j      *journal
	driver *fakeDriver
	system *fakeSystem
	window *fakeWindow
	cfg    *Config
}

func newFixture(diagnostics bool) *fixture {
	j := &journal{}
	window := &fakeWindow{
		j:          j,
		extensions: []string{"VK_KHR_surface", "VK_KHR_xcb_surface"},
		closeAfter: 3,
	}
	cfg := DefaultConfig()
	cfg.Diagnostics = diagnostics
	cfg.Portability = false
	return &fixture{
		j: j,
		driver: &fakeDriver{
			j:          j,
			extensions: []string{"VK_KHR_surface", "VK_KHR_xcb_surface", DebugExtensionName},
			layers:     []string{"VK_LAYER_MESA_device_select", KhronosValidationLayer},
		},
		system: &fakeSystem{j: j, window: window},
		window: window,
		cfg:    cfg,
	}
}

var errDriver = errors.New("VK_ERROR_INCOMPATIBLE_DRIVER")

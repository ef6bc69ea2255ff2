// Package vktriangle opens a window, creates a Vulkan instance with optional
// validation layers and a debug messenger, and idles until the window closes.
//
// The driver and the windowing system are reached through the Driver and
// WindowSystem interfaces; the vkdriver and glfwwindow packages provide the
// vulkan-go and GLFW implementations.
package vktriangle

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CreateMessengerProcName is the entry point resolved to register the debug messenger.
const CreateMessengerProcName = "vkCreateDebugReportCallbackEXT"

// Bootstrap owns the window, the instance and the debug messenger for the
// lifetime of a run. Resources are created window first and released in
// reverse order.
type Bootstrap struct {
	cfg    *Config
	driver Driver
	system WindowSystem
	log    *zap.Logger
	diag   *Diagnostics

	systemReady bool
	closed      bool
	window      Window
	instance    Instance
	messenger   Messenger
}

// Option customizes a Bootstrap.
type Option func(*Bootstrap)

// WithLogger sets the logger for lifecycle messages and driver diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(b *Bootstrap) {
		b.log = log
	}
}

// WithDiagnostics replaces the sink that receives driver debug messages.
func WithDiagnostics(d *Diagnostics) Option {
	return func(b *Bootstrap) {
		b.diag = d
	}
}

func New(cfg *Config, driver Driver, system WindowSystem, opts ...Option) *Bootstrap {
	b := &Bootstrap{
		cfg:    cfg,
		driver: driver,
		system: system,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.diag == nil {
		b.diag = NewDiagnostics(b.log)
	}
	return b
}

// Run creates every resource, idles until the window is closed and then
// releases everything, including after a failed step.
func (b *Bootstrap) Run() error {
	defer b.Cleanup()

	if err := b.InitWindow(); err != nil {
		return err
	}
	if err := b.InitVulkan(); err != nil {
		return err
	}
	b.MainLoop()
	return nil
}

// InitWindow starts the window system and opens the window.
func (b *Bootstrap) InitWindow() error {
	if b.closed {
		return withKind(ErrWindowCreation, errClosed)
	}
	if b.window != nil {
		return withKind(ErrWindowCreation, errors.New("window already created"))
	}
	if err := b.system.Init(); err != nil {
		return withKind(ErrWindowCreation, err)
	}
	b.systemReady = true

	w := b.cfg.Window
	window, err := b.system.CreateWindow(w.Width, w.Height, w.Title)
	if err != nil {
		return withKind(ErrWindowCreation, err)
	}
	b.window = window
	b.log.Info("window created",
		zap.Int("width", w.Width),
		zap.Int("height", w.Height),
		zap.String("title", w.Title))
	return nil
}

func (b *Bootstrap) InitVulkan() error {
	if err := b.CreateInstance(); err != nil {
		return err
	}
	return b.SetupDebugMessenger()
}

// CreateInstance creates the driver instance. With diagnostics enabled the
// requested validation layers must all be available or no instance is created.
func (b *Bootstrap) CreateInstance() error {
	if b.closed {
		return withKind(ErrInstanceCreation, errClosed)
	}
	if b.window == nil {
		return withKind(ErrInstanceCreation, errors.New("no window"))
	}
	if b.instance != NullInstance {
		return withKind(ErrInstanceCreation, errors.New("instance already created"))
	}

	if b.cfg.Diagnostics {
		if ok, missing := b.layerSet().HasWanted(); !ok {
			return withKind(ErrValidationLayerUnavailable,
				errors.Errorf("missing %v", missing))
		}
	}

	app, err := b.cfg.AppInfo()
	if err != nil {
		return withKind(ErrInstanceCreation, err)
	}

	info := &InstanceInfo{
		App:        app,
		Extensions: b.RequiredExtensions(),
	}
	if b.cfg.Portability {
		info.Flags |= InstanceCreateEnumeratePortability
	}
	if b.cfg.Diagnostics {
		info.Layers = NewNameSet(b.cfg.ValidationLayers, nil).Names()
	}

	available, err := b.driver.InstanceExtensions()
	if err != nil {
		b.log.Warn("enumerating instance extensions", zap.Error(err))
	} else {
		if b.cfg.Diagnostics {
			b.log.Info("available extensions", zap.Strings("extensions", available))
		}
		if ok, missing := NewNameSet(info.Extensions, available).HasWanted(); !ok {
			b.log.Warn("required instance extensions not advertised", zap.Strings("missing", missing))
		}
	}

	instance, err := b.driver.CreateInstance(info)
	if err != nil {
		return withKind(ErrInstanceCreation, err)
	}
	if instance == NullInstance {
		return withKind(ErrInstanceCreation, errors.New("driver returned a null instance"))
	}
	b.instance = instance
	b.log.Info("instance created",
		zap.String("app", app.Name),
		zap.Stringer("api", app.APIVersion),
		zap.Strings("extensions", info.Extensions),
		zap.Strings("layers", info.Layers))
	return nil
}

// CheckValidationLayerSupport reports whether every requested validation
// layer is advertised by the driver.
func (b *Bootstrap) CheckValidationLayerSupport() bool {
	ok, _ := b.layerSet().HasWanted()
	return ok
}

func (b *Bootstrap) layerSet() *NameSet {
	available, err := b.driver.InstanceLayers()
	if err != nil {
		b.log.Warn("enumerating instance layers", zap.Error(err))
		available = nil
	}
	return NewNameSet(b.cfg.ValidationLayers, available)
}

// RequiredExtensions lists the extensions the window needs, plus the debug
// extension when diagnostics are enabled.
func (b *Bootstrap) RequiredExtensions() []string {
	var wanted []string
	if b.window != nil {
		wanted = append(wanted, b.window.RequiredInstanceExtensions()...)
	}
	if b.cfg.Diagnostics {
		wanted = append(wanted, DebugExtensionName)
	}
	if b.cfg.Portability {
		wanted = append(wanted, PortabilityExtensionName)
	}
	return NewNameSet(wanted, nil).Names()
}

// DebugMessengerConfig is the fixed messenger configuration. Info messages
// are not subscribed to.
func (b *Bootstrap) DebugMessengerConfig() *MessengerConfig {
	return &MessengerConfig{
		Severities: SeverityVerbose | SeverityWarning | SeverityError,
		Types:      MessageGeneral | MessageValidation | MessagePerformance,
		Callback:   b.diag.DebugCallback,
	}
}

// SetupDebugMessenger registers the debug messenger on the instance. It does
// nothing when diagnostics are disabled.
func (b *Bootstrap) SetupDebugMessenger() error {
	if !b.cfg.Diagnostics {
		return nil
	}
	if b.instance == NullInstance {
		return withKind(ErrDebugMessengerSetup, errors.New("no instance"))
	}
	if b.messenger != NullMessenger {
		return withKind(ErrDebugMessengerSetup, errors.New("messenger already created"))
	}

	create, ok := b.driver.LookupMessengerProc(b.instance, CreateMessengerProcName)
	if !ok || create == nil {
		return withKind(ErrExtensionNotPresent, errors.New(CreateMessengerProcName))
	}

	messenger, err := create(b.instance, b.DebugMessengerConfig())
	if err != nil {
		return withKind(ErrDebugMessengerSetup, err)
	}
	b.messenger = messenger
	b.log.Debug("debug messenger enabled")
	return nil
}

// MainLoop polls window events until the window is asked to close.
func (b *Bootstrap) MainLoop() {
	if b.window == nil {
		return
	}
	b.log.Debug("main loop")
	for !b.window.ShouldClose() {
		b.system.PollEvents()
	}
}

// Cleanup releases the messenger, the instance, the window and the window
// system, in that order, skipping anything that was never created. It is
// safe to call more than once.
func (b *Bootstrap) Cleanup() {
	if b.messenger != NullMessenger {
		b.driver.DestroyMessenger(b.instance, b.messenger)
		b.messenger = NullMessenger
	}
	if b.instance != NullInstance {
		b.driver.DestroyInstance(b.instance)
		b.instance = NullInstance
	}
	if b.window != nil {
		b.window.Destroy()
		b.window = nil
	}
	if b.systemReady {
		b.system.Terminate()
		b.systemReady = false
	}
	b.closed = true
	b.log.Debug("cleanup done")
}

// Instance returns the current instance handle, or NullInstance.
func (b *Bootstrap) Instance() Instance { return b.instance }

// Messenger returns the current messenger handle, or NullMessenger.
func (b *Bootstrap) Messenger() Messenger { return b.messenger }

// Diagnostics returns the sink receiving driver debug messages.
func (b *Bootstrap) Diagnostics() *Diagnostics { return b.diag }

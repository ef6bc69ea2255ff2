// Package glfwwindow implements vktriangle.WindowSystem with GLFW.
//
// GLFW must be driven from the main OS thread; callers lock it with
// runtime.LockOSThread before calling Init.
package glfwwindow

import (
	"unsafe"

	"github.com/andewx/vktriangle"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
)

type System struct {
	// Visible controls whether windows are shown. Tests create hidden windows.
	Visible bool
}

func NewSystem() *System {
	return &System{Visible: true}
}

func (s *System) Init() error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "glfw init")
	}
	if !glfw.VulkanSupported() {
		glfw.Terminate()
		return errors.New("glfw: vulkan loader not found")
	}
	return nil
}

// GetInstanceProcAddr returns the loader entry point GLFW found. Valid after Init.
func (s *System) GetInstanceProcAddr() unsafe.Pointer {
	return glfw.GetVulkanGetInstanceProcAddress()
}

func (s *System) CreateWindow(width, height int, title string) (vktriangle.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	if s.Visible {
		glfw.WindowHint(glfw.Visible, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "glfw: creating %dx%d window", width, height)
	}
	return &Window{window: w}, nil
}

func (s *System) PollEvents() {
	glfw.PollEvents()
}

func (s *System) Terminate() {
	glfw.Terminate()
}

// Window wraps a GLFW window created without a client API.
type Window struct {
	window *glfw.Window
}

func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// RequestClose sets the close flag, as clicking the close button does.
func (w *Window) RequestClose() {
	w.window.SetShouldClose(true)
}

func (w *Window) RequiredInstanceExtensions() []string {
	return w.window.GetRequiredInstanceExtensions()
}

func (w *Window) Destroy() {
	w.window.Destroy()
}

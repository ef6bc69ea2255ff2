package main

import (
	"github.com/andewx/vktriangle/glfwwindow"
	"github.com/andewx/vktriangle/vkdriver"
	"go.uber.org/zap"
)

// lazyDriver is filled in by lazySystem.Init; the bootstrap never touches
// the driver before the window system is up.
type lazyDriver struct {
	*vkdriver.Driver
}

type lazySystem struct {
	*glfwwindow.System
	log    *zap.Logger
	driver lazyDriver
}

func (s *lazySystem) Init() error {
	if err := s.System.Init(); err != nil {
		return err
	}
	driver, err := vkdriver.New(s.System.GetInstanceProcAddr(), s.log)
	if err != nil {
		s.System.Terminate()
		return err
	}
	s.driver.Driver = driver
	return nil
}

package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type Controller struct {
	engines     []ApplicationEngine
	handler     Handler
	initialized []ApplicationEngine
}

func NewController(engines []ApplicationEngine, handler Handler) (controller *Controller) {
	return &Controller{
		engines: engines,
		handler: handler,
	}
}

// Initialize starts the engines one after the other. The first failure stops
// the sequence; engines already started stay initialized until Deinitialize.
func (controller *Controller) Initialize() error {
	for engineIndex, engine := range controller.engines {
		if engine == nil {
			panic(fmt.Sprintf("Engine %d is nil", engineIndex))
		}
		if err := engine.Initialize(); err != nil {
			return fmt.Errorf("engine %d: %w", engineIndex, err)
		}
		controller.initialized = append(controller.initialized, engine)
	}

	logrus.Debugf("%d engines initialized", len(controller.initialized))
	if controller.handler != nil {
		controller.handler.NotifyStarted()
	}
	return nil
}

// Deinitialize stops the started engines in reverse order.
func (controller *Controller) Deinitialize() {
	for index := len(controller.initialized) - 1; index >= 0; index-- {
		controller.initialized[index].Deinitialize()
	}
	controller.initialized = nil
}

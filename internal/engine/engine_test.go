package engine_test

import (
	"github.com/sirupsen/logrus"
)

type MockEngine struct {
	Index   uint
	Fail    error
	Started bool
	Stopped bool
	journal *[]string
}

func (mockEngine *MockEngine) Initialize() error {
	if mockEngine.Fail != nil {
		return mockEngine.Fail
	}
	logrus.Infof("Mock engine %d started", mockEngine.Index)
	mockEngine.Started = true
	if mockEngine.journal != nil {
		*mockEngine.journal = append(*mockEngine.journal, "start")
	}
	return nil
}

func (mockEngine *MockEngine) Deinitialize() {
	mockEngine.Stopped = true
	if mockEngine.journal != nil {
		*mockEngine.journal = append(*mockEngine.journal, "stop")
	}
}

package api

import (
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/engine"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/logging"
)

type App interface {
	Logger() logging.Logger
	Service() *engine.Service
}

type app struct {
	logger logging.Logger
	svc    *engine.Service
}

func NewApp(svc *engine.Service, logger logging.Logger) App {
	return &app{logger: logger, svc: svc}
}

func (a *app) Logger() logging.Logger    { return a.logger }
func (a *app) Service() *engine.Service { return a.svc }

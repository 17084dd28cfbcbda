package app

import (
	"github.com/google/wire"

	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/input"
	"go-space-shooter/internal/session"
)

// ProviderSet — всё, из чего собирается Universe. Конфигурация и логгер
// приходят снаружи.
var ProviderSet = wire.NewSet(
	entity.NewECS,
	NewTimer,
	input.NewLatch,
	session.New,
	event.NewDispatcher,
	NewRng,
	NewUniverse,
)

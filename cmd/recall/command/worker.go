package command

import (
	"fmt"

	"github.com/pixil98/go-recall/internal/driver"
	"github.com/pixil98/go-recall/internal/events"
	"github.com/pixil98/go-recall/internal/game"
	"github.com/pixil98/go-recall/internal/messaging"
	"github.com/pixil98/go-recall/internal/scheduler"
	"github.com/pixil98/go-recall/internal/teleport"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	tickLength, err := cfg.tickLength()
	if err != nil {
		return nil, err
	}

	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	worlds, err := cfg.Storage.buildWorlds()
	if err != nil {
		return nil, fmt.Errorf("loading worlds: %w", err)
	}

	catalog, err := messaging.LoadCatalog(cfg.MessagesPath)
	if err != nil {
		return nil, fmt.Errorf("loading messages: %w", err)
	}

	state := game.NewWorldState(worlds, game.WithTeleportObserver(messaging.TeleportNotifier(natsServer)))
	identity := cfg.Item.buildIdentity()
	sched := scheduler.NewTickScheduler()

	coord := teleport.NewCoordinator(cfg.buildSettings(ticksPerSecond(tickLength)), teleport.Deps{
		Scheduler: sched,
		Clock:     scheduler.SystemClock,
		Players:   events.Players(state),
		Spawns:    state,
		Identity:  identity,
		Messages:  messaging.NewComposer(natsServer, catalog, 0),
		Sounds:    messaging.NewSoundPlayer(natsServer),
		Effects:   messaging.NewEffects(natsServer),
	})

	handler := events.NewHandler(cfg.buildPolicy(), identity, state, coord)

	// Setup the tick driver
	drv := driver.NewTickDriver([]driver.Ticker{
		sched,
	}, driver.WithTickLength(tickLength))

	// Create a worker list
	return service.WorkerList{
		"nats":   natsServer,
		"driver": drv,
		"events": events.NewListener(natsServer, handler),
	}, nil
}

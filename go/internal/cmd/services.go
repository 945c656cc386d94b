package main

import (
	"database/sql"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/mindmeld/go/internal/gateway"
	"github.com/mcdev12/mindmeld/go/internal/outbox"
	"github.com/mcdev12/mindmeld/go/internal/room"
	"github.com/mcdev12/mindmeld/go/internal/service"
	"github.com/mcdev12/mindmeld/go/internal/store"
	"github.com/mcdev12/mindmeld/go/internal/words"
)

type Services struct {
	Game              *service.Service
	OutboxWorker      *outbox.Worker
	Publisher         *outbox.JetStreamPublisher
	ConnectionManager *gateway.ConnectionManager
	EventConsumer     *gateway.EventConsumer
	WebSocketHandler  *gateway.WebSocketHandler
}

func setupServices(database *sql.DB, catalog *words.Catalog, config Config) (*Services, error) {
	// Wire up dependency injection chain
	// Database layer → Store layer → Coordinator layer → Service layer

	gameStore := store.NewStore(database)
	coordinator := room.NewCoordinatorWithClock(gameStore, catalog, clockwork.NewRealClock(), config.AdvanceDelay)
	gameService := service.NewService(coordinator)

	// Outbox relay: database → JetStream
	publisherConfig := outbox.DefaultJetStreamConfig()
	publisherConfig.URL = config.NATSURL
	publisher, err := outbox.NewJetStreamPublisher(publisherConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create event publisher: %w", err)
	}
	worker := outbox.NewWorker(database, publisher, outbox.DefaultConfig())

	// Gateway: JetStream → WebSocket clients
	connectionManager := gateway.NewConnectionManager(gateway.DefaultConnectionConfig())
	consumerConfig := gateway.DefaultJetStreamConsumerConfig()
	consumerConfig.URL = config.NATSURL
	eventConsumer, err := gateway.NewEventConsumer(connectionManager, consumerConfig)
	if err != nil {
		publisher.Close()
		return nil, fmt.Errorf("failed to create event consumer: %w", err)
	}
	wsHandler := gateway.NewWebSocketHandler(connectionManager)

	return &Services{
		Game:              gameService,
		OutboxWorker:      worker,
		Publisher:         publisher,
		ConnectionManager: connectionManager,
		EventConsumer:     eventConsumer,
		WebSocketHandler:  wsHandler,
	}, nil
}

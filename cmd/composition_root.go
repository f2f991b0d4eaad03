package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"onboarding/internal/adapters/out/kafka"
	"onboarding/internal/adapters/out/mail"
	"onboarding/internal/adapters/out/postgres"
	"onboarding/internal/core/application/usecases/commands"
	"onboarding/internal/core/application/usecases/queries"
	"onboarding/internal/pkg/tasks"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   *mail.Sender
	publisher  *kafka.Publisher
	dispatcher *tasks.Dispatcher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	notifier, err := mail.NewSender(logger, config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail sender: %w", err)
	}

	var brokers []string
	if config.KafkaHost != "" {
		brokers = strings.Split(config.KafkaHost, ",")
	}
	publisher, err := kafka.NewPublisher(logger, brokers, config.KafkaCourierValidatedTopic)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		publisher:  publisher,
		dispatcher: tasks.NewDispatcher(logger),
		logger:     logger,
	}, nil
}

// Close drains in-flight background tasks and releases outbound connections.
func (c *CompositionRoot) Close() {
	c.dispatcher.Close()
	if err := c.publisher.Close(); err != nil {
		c.logger.Error("Failed to close kafka publisher", "error", err)
	}
}

func (c *CompositionRoot) CreateDecideRegistrationCommandHandler() commands.DecideRegistrationCommandHandler {
	var f commands.DecisionUoWFactory = FuncDecisionUoWFactory(func() commands.DecisionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDecideRegistrationCommandHandler(f, c.notifier, c.publisher, c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateResolvePendingUpdateCommandHandler() commands.ResolvePendingUpdateCommandHandler {
	var f commands.ReconciliationUoWFactory = FuncReconciliationUoWFactory(func() commands.ReconciliationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolvePendingUpdateCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCourierDetailsQueryHandler() queries.GetCourierDetailsQueryHandler {
	return queries.NewGetCourierDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReviewBacklogQueryHandler() queries.GetReviewBacklogQueryHandler {
	return queries.NewGetReviewBacklogQueryHandler(c.gormDB)
}

type FuncDecisionUoWFactory func() commands.DecisionUoW

func (f FuncDecisionUoWFactory) Create() commands.DecisionUoW {
	return f()
}

type FuncReconciliationUoWFactory func() commands.ReconciliationUoW

func (f FuncReconciliationUoWFactory) Create() commands.ReconciliationUoW {
	return f()
}

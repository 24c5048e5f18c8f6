package bootstrap

import (
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"chem-synthesis-be/internal/config"
	"chem-synthesis-be/internal/controller"
	"chem-synthesis-be/internal/pkg/logger"
	"chem-synthesis-be/internal/service"
	"chem-synthesis-be/pkg/events"
	"chem-synthesis-be/pkg/llm/factory"
	"chem-synthesis-be/pkg/synthesis"
)

type Container struct {
	// Controllers
	SynthesisController controller.ISynthesisController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Core Facades
	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	publisher := events.NewChannelPublisher(pubSub, sysLogger)

	// 3. LLM Provider
	provider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Keys.Perplexity,
		cfg.Ai.LLMBaseURL,
		cfg.Ai.LLMModel,
	)
	if err != nil {
		log.Panicf("Unable to initialize LLM provider: %v", err)
	}

	// 4. Services
	extractor := synthesis.NewExtractor(sysLogger)
	synthesisService := service.NewSynthesisService(provider, extractor, publisher, sysLogger)
	consumerService := service.NewConsumerService(pubSub, sysLogger)

	// 5. Controllers
	synthesisController := controller.NewSynthesisController(synthesisService)

	return &Container{
		SynthesisController: synthesisController,
		ConsumerService:     consumerService,
		Logger:              sysLogger,
	}
}

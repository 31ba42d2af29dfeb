package cover

import (
	"github.com/mager/sleeve/gemini"
	"github.com/mager/sleeve/palette"
	"go.uber.org/zap"
)

// ProvideEngine provides the template engine
func ProvideEngine(catalog *palette.Catalog, log *zap.SugaredLogger) *Engine {
	return NewEngine(catalog, log)
}

// ProvideAIGenerator provides an AI cover generator backed by gemini
func ProvideAIGenerator(images *gemini.GeminiClient, log *zap.SugaredLogger) *AIGenerator {
	return NewAIGenerator(images, log)
}

var Options = []any{ProvideEngine, ProvideAIGenerator}

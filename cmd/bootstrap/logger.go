package bootstrap

import (
	"fmt"

	"go.uber.org/zap"

	loggerpkg "github.com/rottedfrog/rollout/logger"
)

// InitLogger builds the structured logger used throughout the application.
// Log output goes to stderr so it never mixes with the journal stream.
func InitLogger() (loggerpkg.Logger, func(), error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{"stderr"}
	baseZap, err := zapCfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	cleanup := func() { _ = baseZap.Sync() }
	return loggerpkg.NewZapLogger(baseZap), cleanup, nil
}

package nakama

import (
	"context"
	"database/sql"

	"github.com/heroiclabs/nakama-common/runtime"

	"tractor/internal/bot"
	"tractor/internal/config"
)

// InitModule loads the engine config and registers the rule RPCs.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)

	if path := env[EnvConfigPath]; path != "" {
		if err := config.LoadEngineConfig(path); err != nil {
			logger.Error("InitModule: %v", err)
			return err
		}
	}
	cfg := config.GetEngineConfig()

	levelName := cfg.BotLevel
	if v, ok := env[EnvBotLevel]; ok && v != "" {
		levelName = v
	}
	level, err := bot.ParseBotLevel(levelName)
	if err != nil {
		logger.Warn("InitModule: %v, using %s", err, level)
	}

	brain, err := bot.NewBrain(level, bot.WithPointThresholds(cfg.Tuning.PassPointsThreshold, cfg.Tuning.RuffPointsThreshold))
	if err != nil {
		return err
	}
	if err := RegisterRPCs(initializer, brain); err != nil {
		return err
	}

	logger.Info("Tractor Go module loaded (bot level %s).", level)
	return nil
}

package application

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger zerolog.Logger, conf *config.Config) error {
	log := logger.With().Str("component", "app").Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info().Stringer("signal", sig).Msg("Received signal, shutting down")
			cancel()
		case <-ctx.Done():
		}
	}()

	scoreboardRepo, closeStorage, err := newScoreboardRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	engine := tictactoe.NewEngine(tictactoe.WithSeed(conf.Seed))
	botService := service.NewBotService(logger, engine)
	terminal := console.New(os.Stdin, os.Stdout)
	gameManager := usecase.NewGameManager(
		logger,
		terminal,
		botService,
		scoreboardRepo,
		conf.Scoreboard.Name,
		entity.Mode(conf.Mode),
	)

	// the session blocks on stdin, so a signal has to be able to win the race
	sessionErrCh := make(chan error, 1)
	go func() {
		log.Info().Uint64("seed", conf.Seed).Int("mode", conf.Mode).Msg("Starting session")
		sessionErrCh <- gameManager.RunSession(ctx)
	}()

	select {
	case err = <-sessionErrCh:
		if err != nil {
			return fmt.Errorf("session error: %w", err)
		}
		log.Info().Msg("Session ended")
		return nil
	case <-ctx.Done():
		log.Info().Msg("Application context canceled, shutting down")
		return nil
	}
}

func newScoreboardRepository(ctx context.Context, log zerolog.Logger, conf *config.Config) (repository.ScoreboardRepository, func(), error) {
	if !conf.Redis.Enabled {
		return repository.NewMemoryScoreboardRepository(), func() {}, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error().Err(err).Msg("could not close redis storage")
		}
	}

	return repository.NewScoreboardRepository(redisStorage.Connection), closeStorage, nil
}

package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/partyboard/internal/challenge"
	"github.com/rocketscienceinc/partyboard/internal/config"
	"github.com/rocketscienceinc/partyboard/internal/engine"
	"github.com/rocketscienceinc/partyboard/internal/repository"
	"github.com/rocketscienceinc/partyboard/internal/repository/storage"
	"github.com/rocketscienceinc/partyboard/internal/usecase"
	"github.com/rocketscienceinc/partyboard/transport/rest"
	"github.com/rocketscienceinc/partyboard/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis host or port is empty")

// RunApp - runs the application.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	rules, err := newRules(conf.Game)
	if err != nil {
		return err
	}

	if conf.Redis.Host == "" || conf.Redis.Port == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sessionRepo := repository.NewSessionRepository(redisStorage, conf.Redis.SessionTTL)
	rosterRepo := repository.NewRosterRepository(redisStorage, conf.Redis.SessionTTL)

	gameManager := usecase.NewGameManager(
		logger,
		sessionRepo,
		rosterRepo,
		rules,
		newPicker(conf.Challenge),
		challenge.All(
			challenge.MinWords(conf.Challenge.MinWords),
			challenge.MinLines(conf.Challenge.MinLines),
		),
	)

	log.Info("rules resolved", "winRule", rules.WinRule.String(), "diagonalScope", rules.DiagonalScope)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		handlers := rest.NewHandlers(logger, gameManager, conf.PublicURL)
		if httpErr := rest.Start(ctx, conf.HTTPPort, handlers); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameManager)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newRules(conf config.Game) (*engine.Rules, error) {
	winRule, err := engine.ParseWinRule(conf.WinRule)
	if err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	scope, err := engine.ParseDiagonalScope(conf.DiagonalScope)
	if err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return engine.NewRules(winRule, scope), nil
}

// newPicker seeds from the clock when no seed is configured.
func newPicker(conf config.Challenge) *challenge.Picker {
	bank := challenge.Bank{Truths: conf.Truths, Dares: conf.Dares}.WithDefaults()

	seed := conf.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return challenge.NewSeededPicker(bank, seed)
}

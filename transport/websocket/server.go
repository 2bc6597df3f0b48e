package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/partyboard/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type uGame interface {
	StartGame(ctx context.Context, players []entity.Player) (*entity.Session, error)
	Rematch(ctx context.Context, sessionID string) (*entity.Session, error)
	GetSession(ctx context.Context, sessionID string) (*entity.Session, error)

	MakeMove(ctx context.Context, sessionID string, row, col int) (*entity.Session, *entity.MoveResult, error)

	SelectChallengeMode(ctx context.Context, sessionID string, mode entity.ChallengeMode) (*entity.Session, error)
	ChooseChallenge(ctx context.Context, sessionID string, kind entity.ChallengeKind) (*entity.Session, error)
	RerollChallenge(ctx context.Context, sessionID string) (*entity.Session, error)
	SubmitAnswer(ctx context.Context, sessionID, answer string) (*entity.Session, error)
	NextChallenge(ctx context.Context, sessionID string) (*entity.Session, error)

	EndSession(ctx context.Context, sessionID string) error
}

type handlerFunc func(ctx context.Context, message *Message, client *Client) error

type Server struct {
	logger *slog.Logger
	uGame  uGame

	upgrader websocket.Upgrader
	handlers map[string]handlerFunc

	// clients watching each session
	connectionsMutex sync.RWMutex
	connections      map[string]map[*Client]struct{}
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,

		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		handlers:    make(map[string]handlerFunc),
		connections: make(map[string]map[*Client]struct{}),
	}

	server.handlers[actionGameNew] = server.handleNewGame
	server.handlers[actionGameRematch] = server.handleRematch
	server.handlers[actionGameState] = server.handleGameState
	server.handlers[actionGameMove] = server.handleGameMove
	server.handlers[actionGameLeave] = server.handleGameLeave
	server.handlers[actionChallengeMode] = server.handleChallengeMode
	server.handlers[actionChallengeChoose] = server.handleChallengeChoose
	server.handlers[actionChallengeReroll] = server.handleChallengeReroll
	server.handlers[actionChallengeAnswer] = server.handleChallengeAnswer
	server.handlers[actionChallengeNext] = server.handleChallengeNext

	return server
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.ServeWS)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown websocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// ServeWS upgrades the request and serves messages until the client goes away.
func (that *Server) ServeWS(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeWS")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	client := newClient(conn)

	defer func() {
		that.dropClient(client)
		_ = conn.Close()
	}()

	log.Info("WebSocket connection established", "remote", req.RemoteAddr)

	if err = that.handleMessages(req.Context(), client); err != nil {
		log.Debug("connection closed", "error", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, client *Client) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, body, err := client.conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(body, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			_ = that.sendErrorResponse(client, actionError, "malformed message")
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			_ = that.sendErrorResponse(client, message.Action, "unknown action")
			continue
		}

		if err = handler(ctx, &message, client); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) watch(sessionID string, client *Client) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	clients, ok := that.connections[sessionID]
	if !ok {
		clients = make(map[*Client]struct{})
		that.connections[sessionID] = clients
	}

	clients[client] = struct{}{}
}

func (that *Server) watchers(sessionID string) []*Client {
	that.connectionsMutex.RLock()
	defer that.connectionsMutex.RUnlock()

	clients := make([]*Client, 0, len(that.connections[sessionID]))
	for client := range that.connections[sessionID] {
		clients = append(clients, client)
	}

	return clients
}

// moveWatchers hands every watcher of from over to to.
func (that *Server) moveWatchers(from, to string) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	clients, ok := that.connections[from]
	if !ok {
		return
	}
	delete(that.connections, from)

	target, ok := that.connections[to]
	if !ok {
		that.connections[to] = clients
		return
	}

	for client := range clients {
		target[client] = struct{}{}
	}
}

func (that *Server) forget(sessionID string) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	delete(that.connections, sessionID)
}

func (that *Server) dropClient(client *Client) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	for sessionID, clients := range that.connections {
		delete(clients, client)
		if len(clients) == 0 {
			delete(that.connections, sessionID)
		}
	}
}

package websocket

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/partyboard/internal/apperror"
	"github.com/rocketscienceinc/partyboard/internal/entity"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload is the body of a client request. Which fields are required depends on the action.
type Payload struct {
	GameID  string               `json:"game_id,omitempty"`
	Players []entity.Player      `json:"players,omitempty"`
	Row     *int                 `json:"row,omitempty"`
	Col     *int                 `json:"col,omitempty"`
	Mode    entity.ChallengeMode `json:"mode,omitempty"`
	Kind    entity.ChallengeKind `json:"kind,omitempty"`
	Answer  string               `json:"answer,omitempty"`
}

type ResponsePayload struct {
	Game   *entity.Session        `json:"game,omitempty"`
	Result *entity.MoveResult     `json:"result,omitempty"`
	Reason apperror.MoveRejection `json:"reason,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

// Client is one websocket connection. Writes are serialised because gorilla
// allows a single concurrent writer.
type Client struct {
	conn *websocket.Conn

	writeMutex sync.Mutex
}

func newClient(conn *websocket.Conn) *Client {
	return &Client{conn: conn}
}

func (that *Client) send(action string, payload ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	that.writeMutex.Lock()
	defer that.writeMutex.Unlock()

	if err = that.conn.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/partyboard/internal/apperror"
	"github.com/rocketscienceinc/partyboard/internal/entity"
)

const (
	actionError = "error"

	actionGameNew     = "game:new"
	actionGameRematch = "game:rematch"
	actionGameState   = "game:state"
	actionGameMove    = "game:move"
	actionGameLeave   = "game:leave"

	actionChallengeMode   = "challenge:mode"
	actionChallengeChoose = "challenge:choose"
	actionChallengeReroll = "challenge:reroll"
	actionChallengeAnswer = "challenge:answer"
	actionChallengeNext   = "challenge:next"
)

var errGameIDRequired = errors.New("game id is required")

// errors the client can act on; anything else is reported as an internal error
var clientErrors = []error{
	apperror.ErrSessionNotFound,
	apperror.ErrGameFinished,
	apperror.ErrCellOccupied,
	apperror.ErrOutOfBounds,
	apperror.ErrUnsupportedPlayerCount,
	apperror.ErrNotEnoughPlayers,
	apperror.ErrDuplicatePlayerID,
	apperror.ErrInvalidPlayer,
	apperror.ErrInvalidConfig,
	apperror.ErrGameIsNotFinished,
	apperror.ErrModeAlreadySelected,
	apperror.ErrModeNotSelected,
	apperror.ErrUnknownChallengeMode,
	apperror.ErrUnknownChallengeKind,
	apperror.ErrChallengeNotChosen,
	apperror.ErrChallengeFinished,
	apperror.ErrEmptyChallengeBank,
	apperror.ErrAnswerNotConvincing,
	apperror.ErrAnswerNotRequired,
	apperror.ErrChallengeNotAvailable,
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, client *Client) error {
	log := that.logger.With("method", "handleNewGame")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(client, msg.Action, err.Error())
	}

	if len(payloadReq.Players) == 0 {
		return that.sendErrorResponse(client, msg.Action, "Players are required")
	}

	session, err := that.uGame.StartGame(ctx, payloadReq.Players)
	if err != nil {
		return that.sendUseCaseError(client, msg.Action, err)
	}

	that.watch(session.ID, client)

	log.Info("new game created", "gameID", session.ID)

	return client.send(msg.Action, ResponsePayload{Game: session})
}

func (that *Server) handleRematch(ctx context.Context, msg *Message, client *Client) error {
	payloadReq, err := decodeGamePayload(msg)
	if err != nil {
		return that.sendErrorResponse(client, msg.Action, err.Error())
	}

	session, err := that.uGame.Rematch(ctx, payloadReq.GameID)
	if err != nil {
		return that.sendUseCaseError(client, msg.Action, err)
	}

	that.watch(payloadReq.GameID, client)
	that.moveWatchers(payloadReq.GameID, session.ID)

	that.broadcast(session.ID, msg.Action, ResponsePayload{Game: session})

	return nil
}

// handleGameState attaches the client to a session and sends its current state.
func (that *Server) handleGameState(ctx context.Context, msg *Message, client *Client) error {
	payloadReq, err := decodeGamePayload(msg)
	if err != nil {
		return that.sendErrorResponse(client, msg.Action, err.Error())
	}

	session, err := that.uGame.GetSession(ctx, payloadReq.GameID)
	if err != nil {
		return that.sendUseCaseError(client, msg.Action, err)
	}

	that.watch(session.ID, client)

	return client.send(msg.Action, ResponsePayload{Game: session})
}

func (that *Server) handleGameMove(ctx context.Context, msg *Message, client *Client) error {
	log := that.logger.With("method", "handleGameMove")

	payloadReq, err := decodeGamePayload(msg)
	if err != nil {
		return that.sendErrorResponse(client, msg.Action, err.Error())
	}

	if payloadReq.Row == nil || payloadReq.Col == nil {
		return that.sendErrorResponse(client, msg.Action, "Row and Col are required")
	}

	session, result, err := that.uGame.MakeMove(ctx, payloadReq.GameID, *payloadReq.Row, *payloadReq.Col)

	var moveErr *apperror.InvalidMoveError
	if errors.As(err, &moveErr) {
		return client.send(msg.Action, ResponsePayload{
			Game:   session,
			Reason: moveErr.Reason,
			Error:  moveErr.Error(),
		})
	}

	if err != nil {
		return that.sendUseCaseError(client, msg.Action, err)
	}

	that.watch(session.ID, client)
	that.broadcast(session.ID, msg.Action, ResponsePayload{Game: session, Result: result})

	log.Debug("move applied", "gameID", session.ID, "result", result.Kind)

	return nil
}

func (that *Server) handleGameLeave(ctx context.Context, msg *Message, client *Client) error {
	payloadReq, err := decodeGamePayload(msg)
	if err != nil {
		return that.sendErrorResponse(client, msg.Action, err.Error())
	}

	if err = that.uGame.EndSession(ctx, payloadReq.GameID); err != nil {
		return that.sendUseCaseError(client, msg.Action, err)
	}

	that.watch(payloadReq.GameID, client)
	that.broadcast(payloadReq.GameID, msg.Action, ResponsePayload{})
	that.forget(payloadReq.GameID)

	return nil
}

func (that *Server) handleChallengeMode(ctx context.Context, msg *Message, client *Client) error {
	return that.handleChallenge(ctx, msg, client, func(ctx context.Context, payload *Payload) (*entity.Session, error) {
		return that.uGame.SelectChallengeMode(ctx, payload.GameID, payload.Mode)
	})
}

func (that *Server) handleChallengeChoose(ctx context.Context, msg *Message, client *Client) error {
	return that.handleChallenge(ctx, msg, client, func(ctx context.Context, payload *Payload) (*entity.Session, error) {
		return that.uGame.ChooseChallenge(ctx, payload.GameID, payload.Kind)
	})
}

func (that *Server) handleChallengeReroll(ctx context.Context, msg *Message, client *Client) error {
	return that.handleChallenge(ctx, msg, client, func(ctx context.Context, payload *Payload) (*entity.Session, error) {
		return that.uGame.RerollChallenge(ctx, payload.GameID)
	})
}

func (that *Server) handleChallengeAnswer(ctx context.Context, msg *Message, client *Client) error {
	return that.handleChallenge(ctx, msg, client, func(ctx context.Context, payload *Payload) (*entity.Session, error) {
		return that.uGame.SubmitAnswer(ctx, payload.GameID, payload.Answer)
	})
}

func (that *Server) handleChallengeNext(ctx context.Context, msg *Message, client *Client) error {
	return that.handleChallenge(ctx, msg, client, func(ctx context.Context, payload *Payload) (*entity.Session, error) {
		return that.uGame.NextChallenge(ctx, payload.GameID)
	})
}

// handleChallenge runs a challenge step and broadcasts the updated session.
// Watchers of a finished round are kept so a rematch reaches them.
func (that *Server) handleChallenge(
	ctx context.Context,
	msg *Message,
	client *Client,
	step func(ctx context.Context, payload *Payload) (*entity.Session, error),
) error {
	payloadReq, err := decodeGamePayload(msg)
	if err != nil {
		return that.sendErrorResponse(client, msg.Action, err.Error())
	}

	session, err := step(ctx, payloadReq)
	if err != nil {
		return that.sendUseCaseError(client, msg.Action, err)
	}

	that.watch(session.ID, client)
	that.broadcast(session.ID, msg.Action, ResponsePayload{Game: session})

	return nil
}

func (that *Server) broadcast(sessionID, action string, payload ResponsePayload) {
	log := that.logger.With("method", "broadcast", "gameID", sessionID)

	for _, client := range that.watchers(sessionID) {
		if err := client.send(action, payload); err != nil {
			log.Error("failed to send game update", "error", err)
		}
	}
}

func (that *Server) sendUseCaseError(client *Client, action string, err error) error {
	for _, known := range clientErrors {
		if errors.Is(err, known) {
			that.logger.Debug("use case rejected request", "action", action, "error", err)
			return that.sendErrorResponse(client, action, known.Error())
		}
	}

	that.logger.Error("use case failed", "action", action, "error", err)

	return that.sendErrorResponse(client, action, "internal error")
}

func (that *Server) sendErrorResponse(client *Client, action, errorMsg string) error {
	if err := client.send(action, ResponsePayload{Error: errorMsg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}

func decodePayload(msg *Message) (*Payload, error) {
	var payload Payload

	if len(msg.Payload) == 0 {
		return &payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return &payload, nil
}

func decodeGamePayload(msg *Message) (*Payload, error) {
	payload, err := decodePayload(msg)
	if err != nil {
		return nil, err
	}

	if payload.GameID == "" {
		return nil, errGameIDRequired
	}

	return payload, nil
}

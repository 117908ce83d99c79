package signaling

import (
	"fmt"

	errs "signalhub/pkg/errors"
	"signalhub/pkg/logger"
	"signalhub/pkg/protocol"
	"signalhub/pkg/rooms"
)

// joinHandler adds the sender to a room, notifies the members already
// there, and replies with the current member list
type joinHandler struct {
	registry Registry
	rooms    *rooms.Table
	log      *logger.Logger
}

func (h *joinHandler) MessageType() protocol.MessageType {
	return protocol.MsgTypeJoin
}

func (h *joinHandler) Handle(clientID string, msg *protocol.ClientMessage) error {
	if msg.Room == "" {
		return fmt.Errorf("%w: room", errs.ErrMissingField)
	}

	others := h.rooms.JoinAndList(msg.Room, clientID)

	// Best-effort fan-out to members reachable at broadcast time
	for _, peer := range others {
		if err := h.registry.SendTo(peer, protocol.NewUserJoined(clientID)); err != nil {
			h.log.DebugWith("join notification dropped", "room", msg.Room, "peer", peer, "error", err)
		}
	}

	h.log.InfoWith("client joined room", "client", clientID, "room", msg.Room, "members", len(others)+1)
	return h.registry.SendTo(clientID, protocol.NewRoomJoined(msg.Room, others))
}

// forwardHandler relays offer, answer, and ice-candidate messages to the
// named target without touching the payload. An unreachable target is a
// silent drop, never surfaced to the sender.
type forwardHandler struct {
	registry Registry
	msgType  protocol.MessageType
	log      *logger.Logger
}

func (h *forwardHandler) MessageType() protocol.MessageType {
	return h.msgType
}

func (h *forwardHandler) Handle(clientID string, msg *protocol.ClientMessage) error {
	if msg.Target == "" {
		return fmt.Errorf("%w: target", errs.ErrMissingField)
	}

	out, err := h.buildForward(clientID, msg)
	if err != nil {
		return err
	}

	if err := h.registry.SendTo(msg.Target, out); err != nil {
		h.log.DebugWith("signal dropped", "type", h.msgType, "from", clientID, "target", msg.Target, "error", err)
		return nil
	}
	h.log.DebugWith("signal forwarded", "type", h.msgType, "from", clientID, "target", msg.Target)
	return nil
}

func (h *forwardHandler) buildForward(clientID string, msg *protocol.ClientMessage) (any, error) {
	switch h.msgType {
	case protocol.MsgTypeOffer:
		if msg.Offer == nil {
			return nil, fmt.Errorf("%w: offer", errs.ErrMissingField)
		}
		return &protocol.OfferForward{Type: protocol.MsgTypeOffer, Offer: msg.Offer, From: clientID}, nil
	case protocol.MsgTypeAnswer:
		if msg.Answer == nil {
			return nil, fmt.Errorf("%w: answer", errs.ErrMissingField)
		}
		return &protocol.AnswerForward{Type: protocol.MsgTypeAnswer, Answer: msg.Answer, From: clientID}, nil
	case protocol.MsgTypeICECandidate:
		// A literal null candidate (end-of-candidates marker) still
		// passes through; only a missing field is rejected.
		if msg.Candidate == nil {
			return nil, fmt.Errorf("%w: candidate", errs.ErrMissingField)
		}
		return &protocol.CandidateForward{Type: protocol.MsgTypeICECandidate, Candidate: msg.Candidate, From: clientID}, nil
	}
	return nil, fmt.Errorf("%w: %s", errs.ErrUnknownMessageType, h.msgType)
}

// leaveHandler treats a voluntary leave identically to an abrupt
// disconnect: the full cleanup path runs for the sender
type leaveHandler struct {
	coordinator *Coordinator
}

func (h *leaveHandler) MessageType() protocol.MessageType {
	return protocol.MsgTypeLeave
}

func (h *leaveHandler) Handle(clientID string, _ *protocol.ClientMessage) error {
	h.coordinator.Disconnect(clientID)
	return nil
}

package protocol

import "encoding/json"

// MessageType defines the type of message being sent
type MessageType string

const (
	// Client to server messages
	MsgTypeJoin         MessageType = "join"
	MsgTypeOffer        MessageType = "offer"
	MsgTypeAnswer       MessageType = "answer"
	MsgTypeICECandidate MessageType = "ice-candidate"
	MsgTypeLeave        MessageType = "leave"

	// Server to client messages
	MsgTypeUserJoined MessageType = "user-joined"
	MsgTypeRoomJoined MessageType = "room-joined"
	MsgTypeUserLeft   MessageType = "user-left"
)

// ClientMessage is the inbound envelope for all client messages.
// Offer, answer, and candidate payloads are opaque: the server relays
// them byte-for-byte and never inspects their contents.
type ClientMessage struct {
	Type      MessageType     `json:"type"`
	Room      string          `json:"room,omitempty"`
	Target    string          `json:"target,omitempty"`
	Offer     json.RawMessage `json:"offer,omitempty"`
	Answer    json.RawMessage `json:"answer,omitempty"`
	Candidate json.RawMessage `json:"candidate,omitempty"`
}

// UserJoined notifies room members that a new client joined
type UserJoined struct {
	Type     MessageType `json:"type"`
	ClientID string      `json:"clientId"`
}

// NewUserJoined creates a user-joined notification
func NewUserJoined(clientID string) *UserJoined {
	return &UserJoined{Type: MsgTypeUserJoined, ClientID: clientID}
}

// RoomJoined is the reply to a joining client. Users always carries the
// other members present at join time, as an empty list when alone.
type RoomJoined struct {
	Type  MessageType `json:"type"`
	Room  string      `json:"room"`
	Users []string    `json:"users"`
}

// NewRoomJoined creates a room-joined reply
func NewRoomJoined(room string, users []string) *RoomJoined {
	if users == nil {
		users = []string{}
	}
	return &RoomJoined{Type: MsgTypeRoomJoined, Room: room, Users: users}
}

// OfferForward relays a session-description offer to its target
type OfferForward struct {
	Type  MessageType     `json:"type"`
	Offer json.RawMessage `json:"offer"`
	From  string          `json:"from"`
}

// AnswerForward relays a session-description answer to its target
type AnswerForward struct {
	Type   MessageType     `json:"type"`
	Answer json.RawMessage `json:"answer"`
	From   string          `json:"from"`
}

// CandidateForward relays a connectivity candidate to its target
type CandidateForward struct {
	Type      MessageType     `json:"type"`
	Candidate json.RawMessage `json:"candidate"`
	From      string          `json:"from"`
}

// UserLeft notifies remaining room members that a client left
type UserLeft struct {
	Type     MessageType `json:"type"`
	ClientID string      `json:"clientId"`
}

// NewUserLeft creates a user-left notification
func NewUserLeft(clientID string) *UserLeft {
	return &UserLeft{Type: MsgTypeUserLeft, ClientID: clientID}
}

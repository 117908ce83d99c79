package protocol

import (
	"encoding/json"
	"strings"
	"testing"
)

// A lone joiner must see "users":[] on the wire, not a missing field
func TestRoomJoinedAlwaysCarriesUsers(t *testing.T) {
	data, err := json.Marshal(NewRoomJoined("r1", nil))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"users":[]`) {
		t.Errorf("Expected users:[] in %s", data)
	}
}

func TestClientMessageParsesOpaquePayload(t *testing.T) {
	raw := `{"type":"offer","target":"B","offer":{"sdp":"v=0","type":"offer"}}`

	var msg ClientMessage
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != MsgTypeOffer || msg.Target != "B" {
		t.Errorf("Unexpected envelope: %+v", msg)
	}
	if string(msg.Offer) != `{"sdp":"v=0","type":"offer"}` {
		t.Errorf("Offer payload should be preserved verbatim, got %s", msg.Offer)
	}
}

func TestForwardShapes(t *testing.T) {
	data, err := json.Marshal(&CandidateForward{
		Type:      MsgTypeICECandidate,
		Candidate: json.RawMessage(`null`),
		From:      "A",
	})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"ice-candidate","candidate":null,"from":"A"}`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, data)
	}
}

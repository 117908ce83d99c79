package rooms

import "sync"

// Table is the room membership table. It maps room IDs to member sets and
// is safe for concurrent use. Rooms exist implicitly: a room is created on
// first join and deleted in the same critical section that empties it, so
// an empty room is never observable.
//
// A client may belong to several rooms at once. Disconnect cleanup severs
// all of them, not just the first found.
type Table struct {
	mu    sync.RWMutex
	rooms map[string]map[string]struct{}
}

// NewTable creates an empty membership table
func NewTable() *Table {
	return &Table{rooms: make(map[string]map[string]struct{})}
}

// Join adds the client to the room, creating the room if absent.
// Joining a room the client is already in has no additional effect.
func (t *Table) Join(roomID, clientID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.join(roomID, clientID)
}

// JoinAndList adds the client to the room and returns the other members
// present at that instant. The add and the snapshot happen under one lock
// so a concurrent join cannot produce an inconsistent member list.
func (t *Table) JoinAndList(roomID, clientID string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.join(roomID, clientID)

	others := make([]string, 0, len(t.rooms[roomID])-1)
	for id := range t.rooms[roomID] {
		if id != clientID {
			others = append(others, id)
		}
	}
	return others
}

func (t *Table) join(roomID, clientID string) {
	members, ok := t.rooms[roomID]
	if !ok {
		members = make(map[string]struct{})
		t.rooms[roomID] = members
	}
	members[clientID] = struct{}{}
}

// Leave removes the client from the room. The room entry is deleted
// atomically with the removal when its member set becomes empty.
// Returns false if the client was not a member.
func (t *Table) Leave(roomID, clientID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	members, ok := t.rooms[roomID]
	if !ok {
		return false
	}
	if _, present := members[clientID]; !present {
		return false
	}
	delete(members, clientID)
	if len(members) == 0 {
		delete(t.rooms, roomID)
	}
	return true
}

// RemoveClient removes the client from every room it belongs to and
// returns, per affected room, the members remaining after the removal.
// Emptied rooms are deleted in the same critical section and appear in
// the result with an empty remainder. Removing an absent client is a
// no-op returning an empty map.
func (t *Table) RemoveClient(clientID string) map[string][]string {
	t.mu.Lock()
	defer t.mu.Unlock()

	affected := make(map[string][]string)
	for roomID, members := range t.rooms {
		if _, present := members[clientID]; !present {
			continue
		}
		delete(members, clientID)

		remaining := make([]string, 0, len(members))
		for id := range members {
			remaining = append(remaining, id)
		}
		affected[roomID] = remaining

		if len(members) == 0 {
			delete(t.rooms, roomID)
		}
	}
	return affected
}

// Members returns the member IDs of a room, empty for an unknown room
func (t *Table) Members(roomID string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	members := make([]string, 0, len(t.rooms[roomID]))
	for id := range t.rooms[roomID] {
		members = append(members, id)
	}
	return members
}

// RoomsOf returns the IDs of every room the client belongs to
func (t *Table) RoomsOf(clientID string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []string
	for roomID, members := range t.rooms {
		if _, present := members[clientID]; present {
			out = append(out, roomID)
		}
	}
	return out
}

// Count returns the number of active rooms
func (t *Table) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rooms)
}

// Snapshot returns a copy of the full room -> members listing
func (t *Table) Snapshot() map[string][]string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string][]string, len(t.rooms))
	for roomID, members := range t.rooms {
		ids := make([]string, 0, len(members))
		for id := range members {
			ids = append(ids, id)
		}
		out[roomID] = ids
	}
	return out
}

package acl

import (
	jsoniter "github.com/json-iterator/go"
)

// ConnInfo is a diagnostic snapshot of one live connection.
type ConnInfo struct {
	Handle       uint16 `json:"handle"`
	Peer         string `json:"peer"`
	Transport    string `json:"transport"`
	Role         uint8  `json:"role"`
	Disconnected bool   `json:"disconnected"`
	Recombining  int    `json:"recombiningBytes"`
}

// DumpState returns a JSON snapshot of the connection table, taken on
// the manager handler so it is consistent.
func (m *Manager) DumpState() ([]byte, error) {
	var infos []ConnInfo
	m.handler.Post(func() {
		i := m.impl
		i.muConns.Lock()
		defer i.muConns.Unlock()
		for _, c := range i.connections {
			infos = append(infos, ConnInfo{
				Handle:       c.handle,
				Peer:         c.peer.String(),
				Transport:    c.kind.String(),
				Role:         c.role,
				Disconnected: c.isDisconnected,
				Recombining:  c.remainingBytes,
			})
		}
	})
	m.handler.Sync()
	return jsoniter.MarshalIndent(infos, "", "  ")
}

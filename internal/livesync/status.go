package livesync

// Status is the tri-state connection health surfaced to presentation, so
// users can tell "no alerts" apart from "possibly stale view".
type Status int

const (
	StatusDisconnected Status = iota
	StatusReconnecting
	StatusConnected
)

func (s Status) String() string {
	switch s {
	case StatusConnected:
		return "connected"
	case StatusReconnecting:
		return "reconnecting"
	default:
		return "disconnected"
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

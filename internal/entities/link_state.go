package entities

type LinkState string

const (
	LinkStateDisconnected LinkState = "disconnected"
	LinkStateConnecting   LinkState = "connecting"
	LinkStateConnected    LinkState = "connected"
	LinkStateReconnecting LinkState = "reconnecting"
)

func (s LinkState) String() string {
	return string(s)
}

type WirelessCredentials struct {
	SSID string
	PSK  string
}

package messages

// JoinRequest is the first message a client sends after the socket opens. It
// carries the credentials the server uses to authenticate the connection.
type JoinRequest struct {
	Version string
	UserID  string
	Token   string
}

// JoinAccepted is the server's answer to a valid JoinRequest. Receiving it is
// what "server authenticated" means on the client.
type JoinAccepted struct {
	ClientID string
	TickRate int
}

// JoinRejected is sent by the server when authentication fails.
type JoinRejected struct {
	Reason string
}

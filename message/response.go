package message

import (
	"requestgo/body"
	"requestgo/header"
	"requestgo/status"
)

// Response is a decoded response message. It is constructed only by
// the wire decoder and owns the received body bytes; it holds no
// reference to the connection it was read from.
type Response struct {
	Version Version
	Status  status.Code
	Reason  string
	Headers *header.Map
	Body    body.Body
}

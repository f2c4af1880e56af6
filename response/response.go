package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind labels the outcome of a request. The transport status is always
// 200; this string is the authoritative signal for clients.
type Kind string

const (
	KindSuccess           Kind = "Success"
	KindAlreadyExists     Kind = "AlreadyExists"
	KindNotFound          Kind = "NotFound"
	KindServerError       Kind = "ServerError"
	KindNoPermission      Kind = "NoPermission"
	KindInvalidInput      Kind = "InvalidInput"
	KindUnauthorized      Kind = "Unauthorized"
	KindIncorrectPassword Kind = "IncorrectPassword"
)

// Response is the uniform envelope every endpoint returns.
type Response struct {
	Type    Kind    `json:"type"`
	Message *string `json:"msg"`
	Payload any     `json:"data"`
}

func New(kind Kind) Response { return Response{Type: kind} }

func Success() Response           { return New(KindSuccess) }
func AlreadyExists() Response     { return New(KindAlreadyExists) }
func NotFound() Response          { return New(KindNotFound) }
func ServerError() Response       { return New(KindServerError) }
func NoPermission() Response      { return New(KindNoPermission) }
func InvalidInput() Response      { return New(KindInvalidInput) }
func Unauthorized() Response      { return New(KindUnauthorized) }
func IncorrectPassword() Response { return New(KindIncorrectPassword) }

// Msg returns a copy with the message set.
func (r Response) Msg(message string) Response {
	r.Message = &message
	return r
}

// Data returns a copy with the payload set.
func (r Response) Data(data any) Response {
	r.Payload = data
	return r
}

// Send writes the envelope. Errors included, the transport status is
// 200; clients dispatch on the type field.
func (r Response) Send(c *gin.Context) {
	c.JSON(http.StatusOK, r)
}

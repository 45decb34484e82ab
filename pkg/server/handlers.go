package server

import (
	"Warble/handler"
)

type Handlers struct {
	Auth    *handler.Auth
	User    *handler.User
	Message *handler.Message
	Feed    *handler.Feed
}

package config

import (
	"fmt"
)

type SessionKeyStruct struct{}

func NewSessionKeyStruct() *SessionKeyStruct {
	return &SessionKeyStruct{}
}

// UserSessionKey returns the Redis key holding the active JWT ID for a user
func (r *SessionKeyStruct) UserSessionKey(userID string) string {
	return fmt.Sprintf("session:user:%s", userID)
}

var SessionKey = NewSessionKeyStruct()

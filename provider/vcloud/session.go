package vcloud

import (
	"github.com/bbazan/vCD-Catalog/common"
)

type sessionStore struct {
	tokens map[string]string
}

// newSessionStore creates a SessionFinder over the configured
// host-to-token table
func newSessionStore(tokens map[string]string) (common.SessionFinder, error) {
	return &sessionStore{tokens: tokens}, nil
}

func (store *sessionStore) FindSession(host string) (*common.Session, error) {
	token, exists := store.tokens[host]
	if !exists || token == "" {
		return nil, common.NoSessionError{Host: host}
	}
	return &common.Session{Host: host, Token: token}, nil
}

package model

import "testing"

func TestSession_Authenticated(t *testing.T) {
	var nilSession *Session
	if nilSession.Authenticated() {
		t.Error("nil session must not be authenticated")
	}

	session := &Session{Key: "k", MachineID: "1", Version: "1.0"}
	if session.Authenticated() {
		t.Error("session without token must not be authenticated")
	}

	session.Token = "0123456789abcdef0123456789abcdef"
	if !session.Authenticated() {
		t.Error("session with token should be authenticated")
	}
}

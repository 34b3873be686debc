// services/session_service.go
package services

import "github.com/google/uuid"

// SessionMaxAge is how long a freshly minted credential stays valid
// on the client: 7 days, in seconds.
const SessionMaxAge = 7 * 24 * 60 * 60

// ResolveSession maps an incoming credential to a session id. A
// present credential is returned unchanged; an absent one yields a
// newly minted random id and isNew = true so the transport layer
// knows to hand it back to the client. Never fails.
func ResolveSession(credential string) (sessionID string, isNew bool) {
	if credential != "" {
		return credential, false
	}
	return uuid.NewString(), true
}

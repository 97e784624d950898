package client

import (
	"github.com/Ralchuu/personaltrainer-client/internal/identity"
)

// Identity is the resolved identity of a fetched record: a stable
// rendering key plus, when one exists, the PUT/DELETE target.
type Identity = identity.Identity

// CustomerIdentity resolves a customer's identity. The self-link wins;
// then the numeric id; then an id pattern-matched out of the self-link;
// finally a synthetic render-only key from email and phone.
func CustomerIdentity(c Customer) Identity {
	return identity.Resolve(c.Links.Self(), c.ID, c.Email, c.Phone)
}

// TrainingIdentity resolves a training's identity. The render-only
// fallback combines date and activity.
func TrainingIdentity(t Training) Identity {
	return identity.Resolve(t.Links.Self(), t.ID, t.Date, t.Activity)
}

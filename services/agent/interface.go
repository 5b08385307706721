package agent

import (
	"context"

	"clinicflow/models"
)

// AgentService drives the scheduling dialogue. HandleMessage processes
// one user turn and returns the reply together with a snapshot of the
// updated session. Errors are storage-level only; calendar and FAQ
// failures are absorbed into the dialogue itself.
type AgentService interface {
	HandleMessage(ctx context.Context, userKey, message string) (string, *models.Session, error)
}

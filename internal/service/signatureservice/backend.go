package signatureservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=backend.go -destination=mock_backend.go -package=signatureservice

// Backend is the electronic signature provider.
type Backend interface {
	Submit(ctx context.Context, contractID uuid.UUID) (string, error)
	InvitationLink(ctx context.Context, reference string) (string, error)
}

const dummyPrefix = "wfl_fake_dummy_"

// DummyBackend signs nothing. Its references are derived from the contract
// so a resubmission keeps the same one.
type DummyBackend struct{}

func (DummyBackend) Submit(_ context.Context, contractID uuid.UUID) (string, error) {
	return dummyPrefix + contractID.String(), nil
}

func (DummyBackend) InvitationLink(_ context.Context, reference string) (string, error) {
	return fmt.Sprintf("https://dummysignaturebackend.fr/?requestToken=%s#requestId=req", reference), nil
}

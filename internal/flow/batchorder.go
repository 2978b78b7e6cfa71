package flow

import (
	"fmt"
	"slices"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/pkg/schedule"
)

type batchOrderTransition struct {
	sources []domain.BatchOrderState
	target  domain.BatchOrderState
	guard   func(b *domain.BatchOrder) bool
}

var batchOrderTransitions = []batchOrderTransition{
	{
		sources: []domain.BatchOrderState{domain.BatchOrderStateDraft},
		target:  domain.BatchOrderStateAssigned,
		guard:   func(b *domain.BatchOrder) bool { return b.OrganizationID != nil },
	},
	{
		sources: []domain.BatchOrderState{domain.BatchOrderStateAssigned},
		target:  domain.BatchOrderStateToSign,
		guard:   func(b *domain.BatchOrder) bool { return b.HasUnsignedContract() },
	},
	{
		sources: []domain.BatchOrderState{domain.BatchOrderStateToSign},
		target:  domain.BatchOrderStateSigning,
		guard:   func(b *domain.BatchOrder) bool { return b.HasUnsignedContract() && b.Contract.IsSubmitted() },
	},
	{
		sources: []domain.BatchOrderState{domain.BatchOrderStateSigning},
		target:  domain.BatchOrderStateToSign,
		guard:   func(b *domain.BatchOrder) bool { return b.HasUnsignedContract() && !b.Contract.IsSubmitted() },
	},
	{
		sources: []domain.BatchOrderState{domain.BatchOrderStateAssigned, domain.BatchOrderStateSigning},
		target:  domain.BatchOrderStatePending,
		guard:   func(b *domain.BatchOrder) bool { return b.ContractReady() },
	},
	{
		sources: []domain.BatchOrderState{domain.BatchOrderStateFailedPayment},
		target:  domain.BatchOrderStatePending,
		guard:   func(b *domain.BatchOrder) bool { return b.PaymentState == schedule.StatePending },
	},
	{
		sources: []domain.BatchOrderState{domain.BatchOrderStatePending},
		target:  domain.BatchOrderStateFailedPayment,
		guard:   func(b *domain.BatchOrder) bool { return b.PaymentState == schedule.StateRefused },
	},
	{
		sources: []domain.BatchOrderState{domain.BatchOrderStatePending, domain.BatchOrderStateFailedPayment},
		target:  domain.BatchOrderStateCompleted,
		guard:   func(b *domain.BatchOrder) bool { return b.PaymentState == schedule.StatePaid },
	},
	{
		sources: []domain.BatchOrderState{
			domain.BatchOrderStateDraft,
			domain.BatchOrderStateAssigned,
			domain.BatchOrderStateToSign,
			domain.BatchOrderStateSigning,
			domain.BatchOrderStatePending,
			domain.BatchOrderStateFailedPayment,
		},
		target: domain.BatchOrderStateCanceled,
	},
}

var batchOrderUpdatePriority = []domain.BatchOrderState{
	domain.BatchOrderStateCompleted,
	domain.BatchOrderStateFailedPayment,
	domain.BatchOrderStateToSign,
	domain.BatchOrderStatePending,
}

func CanTransitionBatchOrder(b *domain.BatchOrder, target domain.BatchOrderState) bool {
	for _, t := range batchOrderTransitions {
		if t.target != target || !slices.Contains(t.sources, b.State) {
			continue
		}
		if t.guard == nil || t.guard(b) {
			return true
		}
	}
	return false
}

// TransitionBatchOrder changes the state and checks the organization
// invariant of the resulting batch order.
func TransitionBatchOrder(b *domain.BatchOrder, target domain.BatchOrderState) error {
	if !CanTransitionBatchOrder(b, target) {
		return fmt.Errorf("%w: batch order %s from %s to %s", ErrTransitionNotAllowed, b.ID, b.State, target)
	}
	previous := b.State
	b.State = target
	if err := b.Validate(); err != nil {
		b.State = previous
		return err
	}
	return nil
}

func UpdateBatchOrder(b *domain.BatchOrder) bool {
	initial := b.State
	for range batchOrderUpdatePriority {
		moved := false
		for _, target := range batchOrderUpdatePriority {
			if target != b.State && CanTransitionBatchOrder(b, target) {
				b.State = target
				moved = true
				break
			}
		}
		if !moved {
			break
		}
	}
	return b.State != initial
}

func InitBatchOrder(b *domain.BatchOrder) error {
	if err := TransitionBatchOrder(b, domain.BatchOrderStateAssigned); err != nil {
		return err
	}
	UpdateBatchOrder(b)
	return nil
}

// Package flow holds the order and batch order state machines.
package flow

import (
	"errors"
	"fmt"
	"slices"

	"github.com/GlebRadaev/coursemarket/internal/domain"
)

var ErrTransitionNotAllowed = errors.New("transition not allowed")

type orderTransition struct {
	sources []domain.OrderState
	target  domain.OrderState
	guard   func(o *domain.Order) bool
}

var beforePayment = []domain.OrderState{
	domain.OrderStateAssigned,
	domain.OrderStateToSign,
	domain.OrderStateSigning,
	domain.OrderStateToSavePaymentMethod,
}

var orderTransitions = []orderTransition{
	{
		sources: []domain.OrderState{domain.OrderStateDraft},
		target:  domain.OrderStateAssigned,
		guard:   func(o *domain.Order) bool { return o.OrganizationID != nil },
	},
	{
		sources: []domain.OrderState{domain.OrderStateAssigned},
		target:  domain.OrderStateToSign,
		guard:   func(o *domain.Order) bool { return o.HasUnsignedContract() },
	},
	{
		sources: []domain.OrderState{domain.OrderStateToSign},
		target:  domain.OrderStateSigning,
		guard:   func(o *domain.Order) bool { return o.HasUnsignedContract() && o.Contract.IsSubmitted() },
	},
	{
		sources: []domain.OrderState{domain.OrderStateSigning},
		target:  domain.OrderStateToSign,
		guard:   func(o *domain.Order) bool { return o.HasUnsignedContract() && !o.Contract.IsSubmitted() },
	},
	{
		sources: beforePayment[:3],
		target:  domain.OrderStateToSavePaymentMethod,
		guard: func(o *domain.Order) bool {
			return o.ContractReady() && !o.IsFree() && !o.HasPaymentMethod()
		},
	},
	{
		sources: beforePayment,
		target:  domain.OrderStatePending,
		guard: func(o *domain.Order) bool {
			return o.ContractReady() && !o.IsFree() && o.HasPaymentMethod() && !o.PaymentSchedule.HasPaid()
		},
	},
	{
		sources: beforePayment,
		target:  domain.OrderStateCompleted,
		guard:   func(o *domain.Order) bool { return o.ContractReady() && o.IsFree() },
	},
	{
		sources: domain.PayableOrderStates,
		target:  domain.OrderStateCompleted,
		guard:   func(o *domain.Order) bool { return o.PaymentSchedule.IsPaid() },
	},
	{
		sources: []domain.OrderState{domain.OrderStateToOwn},
		target:  domain.OrderStateCompleted,
		guard:   func(o *domain.Order) bool { return o.OwnerID != nil },
	},
	{
		sources: []domain.OrderState{domain.OrderStateNoPayment},
		target:  domain.OrderStatePending,
		guard: func(o *domain.Order) bool {
			s := o.PaymentSchedule
			return o.HasPaymentMethod() && !s.HasPaid() && !s.HasRefused()
		},
	},
	{
		sources: []domain.OrderState{domain.OrderStatePending, domain.OrderStateFailedPayment, domain.OrderStateNoPayment},
		target:  domain.OrderStatePendingPayment,
		guard: func(o *domain.Order) bool {
			s := o.PaymentSchedule
			return s.HasPaid() && !s.IsPaid() && !s.HasRefused()
		},
	},
	{
		sources: []domain.OrderState{domain.OrderStatePending},
		target:  domain.OrderStateNoPayment,
		guard:   func(o *domain.Order) bool { return o.PaymentSchedule.FirstRefused() },
	},
	{
		sources: []domain.OrderState{domain.OrderStatePendingPayment},
		target:  domain.OrderStateFailedPayment,
		guard:   func(o *domain.Order) bool { return o.PaymentSchedule.HasRefused() },
	},
	{
		sources: cancelableOrderStates(),
		target:  domain.OrderStateCanceled,
	},
	{
		sources: []domain.OrderState{domain.OrderStateCanceled},
		target:  domain.OrderStateRefunding,
		guard:   func(o *domain.Order) bool { return o.PaymentSchedule.HasPaid() },
	},
	{
		sources: []domain.OrderState{domain.OrderStateRefunding},
		target:  domain.OrderStateRefunded,
		guard:   func(o *domain.Order) bool { return !o.PaymentSchedule.HasPaid() },
	},
}

func cancelableOrderStates() []domain.OrderState {
	return []domain.OrderState{
		domain.OrderStateDraft,
		domain.OrderStateAssigned,
		domain.OrderStateToSavePaymentMethod,
		domain.OrderStateToSign,
		domain.OrderStateSigning,
		domain.OrderStatePending,
		domain.OrderStatePendingPayment,
		domain.OrderStateFailedPayment,
		domain.OrderStateNoPayment,
		domain.OrderStateCompleted,
		domain.OrderStateToOwn,
	}
}

// orderUpdatePriority is the order in which Update looks for a target state.
var orderUpdatePriority = []domain.OrderState{
	domain.OrderStateCompleted,
	domain.OrderStatePendingPayment,
	domain.OrderStateNoPayment,
	domain.OrderStateFailedPayment,
	domain.OrderStateToSign,
	domain.OrderStateToSavePaymentMethod,
	domain.OrderStatePending,
	domain.OrderStateRefunded,
}

func CanTransition(o *domain.Order, target domain.OrderState) bool {
	for _, t := range orderTransitions {
		if t.target != target || !slices.Contains(t.sources, o.State) {
			continue
		}
		if t.guard == nil || t.guard(o) {
			return true
		}
	}
	return false
}

func Transition(o *domain.Order, target domain.OrderState) error {
	if !CanTransition(o, target) {
		return fmt.Errorf("%w: order %s from %s to %s", ErrTransitionNotAllowed, o.ID, o.State, target)
	}
	o.State = target
	return nil
}

// Update moves the order along every automatic transition its data allows
// and reports whether the state changed.
func Update(o *domain.Order) bool {
	initial := o.State
	for range orderUpdatePriority {
		if !step(o) {
			break
		}
	}
	return o.State != initial
}

func step(o *domain.Order) bool {
	for _, target := range orderUpdatePriority {
		if target != o.State && CanTransition(o, target) {
			o.State = target
			return true
		}
	}
	return false
}

// Init assigns a draft order and brings it to the first state waiting for the user.
func Init(o *domain.Order) error {
	if err := Transition(o, domain.OrderStateAssigned); err != nil {
		return err
	}
	Update(o)
	return nil
}

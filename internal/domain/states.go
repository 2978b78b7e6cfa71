package domain

type OrderState string

const (
	OrderStateDraft               OrderState = "draft"
	OrderStateAssigned            OrderState = "assigned"
	OrderStateToSavePaymentMethod OrderState = "to_save_payment_method"
	OrderStateToSign              OrderState = "to_sign"
	OrderStateSigning             OrderState = "signing"
	OrderStatePending             OrderState = "pending"
	OrderStatePendingPayment      OrderState = "pending_payment"
	OrderStateFailedPayment       OrderState = "failed_payment"
	OrderStateNoPayment           OrderState = "no_payment"
	OrderStateCompleted           OrderState = "completed"
	OrderStateCanceled            OrderState = "canceled"
	OrderStateRefunding           OrderState = "refunding"
	OrderStateRefunded            OrderState = "refunded"
	// OrderStateToOwn is a seat bought through a batch order, waiting for a
	// user to claim it with its voucher.
	OrderStateToOwn OrderState = "to_own"
)

// BindingOrderStates count against an organization's allocation.
var BindingOrderStates = []OrderState{
	OrderStateToSavePaymentMethod,
	OrderStateToSign,
	OrderStateSigning,
	OrderStatePending,
	OrderStatePendingPayment,
	OrderStateFailedPayment,
	OrderStateNoPayment,
	OrderStateCompleted,
}

// OrganizationLoadStates are the states used to balance new orders between organizations.
func OrganizationLoadStates() []OrderState {
	states := make([]OrderState, 0, len(BindingOrderStates)+1)
	states = append(states, BindingOrderStates...)
	return append(states, OrderStateToOwn)
}

// PayableOrderStates have a payment schedule the debit job works on.
var PayableOrderStates = []OrderState{
	OrderStatePending,
	OrderStatePendingPayment,
	OrderStateFailedPayment,
	OrderStateNoPayment,
}

// StuckOrderStates wait for a user action and get reclaimed when abandoned.
var StuckOrderStates = []OrderState{
	OrderStateToSign,
	OrderStateSigning,
	OrderStateToSavePaymentMethod,
}

var StuckCertificateOrderStates = []OrderState{
	OrderStateToSavePaymentMethod,
	OrderStatePending,
}

type BatchOrderState string

const (
	BatchOrderStateDraft         BatchOrderState = "draft"
	BatchOrderStateAssigned      BatchOrderState = "assigned"
	BatchOrderStateToSign        BatchOrderState = "to_sign"
	BatchOrderStateSigning       BatchOrderState = "signing"
	BatchOrderStatePending       BatchOrderState = "pending"
	BatchOrderStateFailedPayment BatchOrderState = "failed_payment"
	BatchOrderStateCanceled      BatchOrderState = "canceled"
	BatchOrderStateCompleted     BatchOrderState = "completed"
)

var StuckBatchOrderStates = []BatchOrderState{
	BatchOrderStateToSign,
	BatchOrderStateSigning,
}

func StateStrings[S ~string](states []S) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = string(s)
	}
	return out
}

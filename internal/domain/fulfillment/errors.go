package fulfillment

import "github.com/storefront/backoffice/internal/domain/shared"

// Workflow rejections. All are terminal from the engine's perspective:
// callers surface them to the operator instead of retrying.
var (
	ErrUnknownStatus       = shared.NewDomainError("UNKNOWN_STATUS", "Status is not a recognized order status")
	ErrOrderFinalized      = shared.NewDomainError("ORDER_FINALIZED", "Order is closed and its status can no longer change")
	ErrPaymentNotConfirmed = shared.NewDomainError("PAYMENT_NOT_CONFIRMED", "Payment must be confirmed before the order can advance")
	ErrInvalidTransition   = shared.NewDomainError("INVALID_TRANSITION", "Target status is not reachable from the current status")
	ErrClockSkew           = shared.NewDomainError("CLOCK_SKEW", "History entry timestamp is not later than the latest entry")
)

package order

// AutoAction identifies the advisory side effect fired after an order lands on a status.
// The set is closed; the dispatcher matches it with an exhaustive switch.
type AutoAction int

const (
	// AutoActionNone means the status has no side effect.
	AutoActionNone AutoAction = iota

	// MaterialCheck compares the bill of materials against available stock.
	MaterialCheck

	// TimeTrackingNudge reminds the craftsman to start time tracking.
	TimeTrackingNudge

	// CustomerNotifyNudge suggests reaching out to the customer for acceptance.
	CustomerNotifyNudge

	// InvoiceReady marks the work fully done and ready for invoicing.
	InvoiceReady
)

func (a AutoAction) String() string {
	switch a {
	case AutoActionNone:
		return "none"
	case MaterialCheck:
		return "materialCheck"
	case TimeTrackingNudge:
		return "timeTrackingNudge"
	case CustomerNotifyNudge:
		return "customerNotifyNudge"
	case InvoiceReady:
		return "invoiceReady"
	default:
		return "unknown"
	}
}

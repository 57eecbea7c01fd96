package constant

type ImportStatus string

const (
	ImportRequested ImportStatus = "requested"
	ImportApproved  ImportStatus = "approved"
	ImportCompleted ImportStatus = "completed"
	ImportRejected  ImportStatus = "rejected"
	ImportCancelled ImportStatus = "cancelled"
)

func (s ImportStatus) IsTerminal() bool {
	return s == ImportCompleted || s == ImportRejected || s == ImportCancelled
}

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

package constant

type StockCheckStatus string

const (
	StockCheckPending    StockCheckStatus = "pending"
	StockCheckInProgress StockCheckStatus = "in_progress"
	StockCheckCompleted  StockCheckStatus = "completed"
	StockCheckCancelled  StockCheckStatus = "cancelled"
)

func (s StockCheckStatus) IsTerminal() bool {
	return s == StockCheckCompleted || s == StockCheckCancelled
}

package constant

// MovementSource identifies which workflow produced a stock_movement row.
type MovementSource string

const (
	SourceStockCheck MovementSource = "stock_check"
	SourceTransfer   MovementSource = "transfer"
	SourceImport     MovementSource = "import"
)

package constant_test

import (
	"testing"

	"github.com/muhammadheryan/inventory-workflow/constant"
	"github.com/stretchr/testify/assert"
)

func TestStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		name   string
		status interface{ IsTerminal() bool }
		want   bool
	}{
		{name: "check pending", status: constant.StockCheckPending},
		{name: "check in progress", status: constant.StockCheckInProgress},
		{name: "check completed", status: constant.StockCheckCompleted, want: true},
		{name: "check cancelled", status: constant.StockCheckCancelled, want: true},
		{name: "transfer branch pending", status: constant.TransferBranchPending},
		{name: "transfer warehouse pending", status: constant.TransferWarehousePending},
		{name: "transfer processing", status: constant.TransferProcessing},
		{name: "transfer shipped", status: constant.TransferShipped},
		{name: "transfer completed", status: constant.TransferCompleted, want: true},
		{name: "transfer cancelled", status: constant.TransferCancelled, want: true},
		{name: "import requested", status: constant.ImportRequested},
		{name: "import approved", status: constant.ImportApproved},
		{name: "import completed", status: constant.ImportCompleted, want: true},
		{name: "import rejected", status: constant.ImportRejected, want: true},
		{name: "import cancelled", status: constant.ImportCancelled, want: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsTerminal())
		})
	}
}

package rabbitmq_test

import (
	"testing"

	"github.com/muhammadheryan/inventory-workflow/thirdparty/rabbitmq"
	"github.com/stretchr/testify/assert"
)

func TestWorkflowEvent_RoutingKey(t *testing.T) {
	tests := []struct {
		event rabbitmq.WorkflowEvent
		want  string
	}{
		{event: rabbitmq.WorkflowEvent{Workflow: rabbitmq.WorkflowTransfer, Status: "shipped"}, want: "transfer.shipped"},
		{event: rabbitmq.WorkflowEvent{Workflow: rabbitmq.WorkflowImport, Status: "paid"}, want: "import.paid"},
		{event: rabbitmq.WorkflowEvent{Workflow: rabbitmq.WorkflowStockCheck, Status: "completed"}, want: "stock_check.completed"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.event.RoutingKey())
	}
}

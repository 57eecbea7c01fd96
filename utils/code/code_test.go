package code_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/muhammadheryan/inventory-workflow/utils/code"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	at := time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^TRF-20240131-[0-9A-F]{6}$`)

	a := code.New(code.TransferPrefix, at)
	b := code.New(code.TransferPrefix, at)

	assert.Regexp(t, pattern, a)
	assert.Regexp(t, pattern, b)
	assert.True(t, len(code.New(code.ImportPrefix, at)) == len(a))
}

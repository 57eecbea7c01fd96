package code

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	TransferPrefix = "TRF"
	ImportPrefix   = "IMP"
)

// ErrTaken is returned by repositories when a generated code collides with a stored one.
var ErrTaken = errors.New("document code already taken")

// New returns a document code such as TRF-20240131-9F2C1A.
func New(prefix string, at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return prefix + "-" + at.Format("20060102") + "-" + suffix
}

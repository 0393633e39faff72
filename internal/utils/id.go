package utils

import (
	"strings"

	"github.com/google/uuid"
)

// RandomHex returns 32 hex characters of randomness, used for storage
// filenames and generated QR code values.
func RandomHex() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

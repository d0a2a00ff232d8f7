package utils

import (
	"fmt"
	"math/rand"
)

// GenerateInvoiceNumber creates a 10-digit zero-padded invoice number
func GenerateInvoiceNumber() string {
	return fmt.Sprintf("%010d", rand.Int63n(10000000000))
}

package simplybook

import (
	"crypto/md5"
	"encoding/hex"
)

// Sign computes the digest that authorizes a single-booking detail lookup.
// The service validates it server-side; the concatenation order id, hash,
// secret is part of the wire contract.
func Sign(bookingID string, bookingHash string, secretKey string) string {
	sum := md5.Sum([]byte(bookingID + bookingHash + secretKey))

	return hex.EncodeToString(sum[:])
}

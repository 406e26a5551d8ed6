// Package code generates one-time verification codes.
package code

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// New returns a 6-digit numeric code drawn uniformly from [100000, 999999].
func New() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}

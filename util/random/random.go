// Package random generates cryptographically random tokens, such as the
// session secret minted on first start.
package random

import (
	"crypto/rand"
	"math/big"
)

const alnum = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Seq returns a random alphanumeric string of length n.
func Seq(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(alnum))))
		if err != nil {
			panic("crypto/rand failed: " + err.Error())
		}
		buf[i] = alnum[idx.Int64()]
	}
	return string(buf)
}

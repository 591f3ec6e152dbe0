// Copyright (C) 2019-2025, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

package teleport

import "crypto/sha256"

const (
	// HashLen is the length of every proof and route identifier
	HashLen = sha256.Size

	// SignatureLen is the length of an event discriminator
	SignatureLen = 4
)

// ComputeHash256 computes SHA256 hash
func ComputeHash256(data ...[]byte) [HashLen]byte {
	h := sha256.New()
	for _, d := range data {
		_, _ = h.Write(d)
	}
	var out [HashLen]byte
	copy(out[:], h.Sum(nil))
	return out
}

// EventSignature returns the first four bytes of sha256(name).
func EventSignature(name string) [SignatureLen]byte {
	h := sha256.Sum256([]byte(name))
	var sig [SignatureLen]byte
	copy(sig[:], h[:SignatureLen])
	return sig
}

// Package ecelgamal implements additively-homomorphic EC-ElGamal over
// ristretto255 for PIR clients.
//
// Messages are small non-negative integers lifted onto the curve as m*G.
// Decryption recovers m*G by standard ElGamal unmasking and resolves the
// discrete log through a precomputed sorted table (DecryptionTable) that
// covers [0, mmax).
package ecelgamal

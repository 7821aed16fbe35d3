// Package keygen models the control flow and cost accounting of a
// FROST-style threshold distributed key generation run among a fixed set
// of participants.
//
// The model is structural: in its default configuration the commitment
// scheme is a hash stand-in, share arithmetic is reduced by power-of-two
// masking rather than a group order, and share verification accepts
// unconditionally. It exists to reason about round structure, message
// flow, and per-operation cost before committing to a real cryptographic
// implementation; it must not be used to protect anything.
//
// A session runs three strictly sequential rounds:
//
//	round 0: every participant generates a secret polynomial and commits
//	         to its coefficients; the coordinator assembles the broadcast
//	         commitment table.
//	round 1: every participant evaluates one share per recipient; the
//	         coordinator performs the full N×N all-to-all delivery.
//	round 2: every participant verifies its received shares, aggregates
//	         its secret share, and derives the group key.
//
// After round 2 the verifier runs three independent checks (nonzero
// shares, distinct shares, group-key agreement) whose outcomes are
// reported but never abort the session.
package keygen

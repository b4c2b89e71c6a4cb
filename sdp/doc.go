// Package sdp implements the sum-of-disjoint-products availability method.
//
// Paths are placed in Singh order. For the i-th path P_i the event "P_i up
// and every earlier path down" is written as P_i ∧ ¬(P_0−P_i) ∧ … and then
// simplified: duplicate and superset complements are absorbed, nodes known
// up are eliminated from complements, and overlapping complements are split
// by Xing decomposition until none overlap. Every resulting Group is a
// product of independent factors, so its probability is a plain product and
// the groups add up to the availability.
package sdp

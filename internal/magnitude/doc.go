// Package magnitude implements the shared arithmetic core for the signed
// and unsigned big-integer engines. All functions operate on little-endian
// byte windows (least significant byte first) in base 256. The package is
// sign-agnostic: two's-complement interpretation happens in the callers,
// which use the Ext variants to virtually sign-extend the shorter operand.
//
// Functions that write into a destination never grow it; the destination
// slice length is the hard capacity ceiling and any excess is reported to
// the caller instead of allocated around.
package magnitude

// Package bigint implements signed and unsigned big-integer arithmetic
// over fixed-capacity little-endian byte buffers.
//
// Unlike an auto-growing big-integer library, every value here owns a
// buffer of fixed capacity and no operation ever grows it: an arithmetic
// result that does not fit is truncated modulo 2^(8·capacity) and flagged
// through the overflow return, and mathematically undefined operations
// (division by zero, real root of a negative) are flagged through an
// error return. This makes the engine suitable for constrained
// environments where the memory budget of a computation is decided up
// front.
//
// # Ownership
//
// Operations consume their receiver: the returned value reuses the
// receiver's buffer, and the receiver handle must not be used again
// after the call. Div additionally consumes its argument (the remainder
// reuses the divisor's buffer). Only the constructors, Dup, and the
// square-root remainder allocate; Free returns a buffer to the
// allocator. Values are single-owner with no internal synchronization:
// concurrent operations on distinct values are safe, concurrent use of
// one value is not.
//
// # Emptiness
//
// A value of size zero is empty, not the numeral zero. Comparing an
// empty value yields Undefined rather than False; all other operations
// treat the empty window as having no digits.
package bigint

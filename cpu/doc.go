// Package cpu implements the processor of a version 1-3 story machine.
//
// The processor holds a program counter, a call stack of routine frames
// (each with up to 15 locals and its own evaluation stack), and views of the
// story's object table, dictionary and text. Instructions are decoded into
// one of four forms (2OP, 1OP, 0OP and VAR) and dispatched through a fixed
// table per form. Store and branch bytes are read by the instruction after
// its operands, in that order.
//
// Variables are addressed by one byte: 0 is the top of the evaluation stack,
// 1-15 are locals of the current routine, and 16-255 are globals.
package cpu

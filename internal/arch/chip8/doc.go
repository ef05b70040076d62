// Package chip8 provides the CHIP-8 bytecode engine.
//
// # CHIP-8 Overview
//
// The instruction set is taken from the retrogolib chip8 package.
//
// CHIP-8 is an interpreted programming language developed in the 1970s for simple games
// on early microcomputers. Its programs are bytecode for a small virtual machine.
//
// # Memory Layout
//
// CHIP-8 systems have 4KB of memory (0x000-0xFFF):
//   - 0x000-0x1FF: Interpreter area (not used for user programs)
//   - 0x200-0xFFF: User program and data area
//
// Programs are stored starting at file offset 0 but are loaded at 0x200,
// address operands are therefore memory addresses and not file offsets.
//
// # Instruction Set
//
//   - All instructions are 2 bytes (16 bits), stored big endian
//   - Instructions use direct addressing with 12-bit addresses
//   - 16 general-purpose 8-bit registers (V0-VF)
//   - Special-purpose registers: I (16-bit), DT and ST timers
//
// # Undecodable Data
//
// CHIP-8 programs commonly mix sprite data with code. The engine decodes best-effort:
// a word that does not match an opcode is emitted as a .word instruction and a trailing
// odd byte as a .byte instruction, so every byte of the file is listed.
package chip8

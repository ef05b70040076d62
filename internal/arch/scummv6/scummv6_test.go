package scummv6

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/scriptdisasm/internal/disasm"
	"github.com/retroenv/scriptdisasm/internal/instruction"
)

var testScript = []byte{
	0x00, 0x05, // pushByte 5
	0x01, 0x34, 0x12, // pushWord 4660
	0x14,             // add
	0x43, 0x05, 0x40, // writeWordVar localvar5
	0x03, 0x0a, 0x00, // pushWordVar var10
	0x5d, 0x04, 0x00, // jumpFalse +4
	0xba, 'H', 'i', 0x00, // talkActor "Hi"
	0x9d, 0x58, 'B', 'o', 'b', 0x00, // actorOps.setName "Bob"
	0x73, 0xe9, 0xff, // jump -23
	0x65, // stopObjectCodeA
}

var expectedListing = `  pushByte 5                     ; $0000 00 05
  pushWord 4660                  ; $0002 01 34 12
  add                            ; $0005 14
  writeWordVar localvar5         ; $0006 43 05 40
  pushWordVar var10              ; $0009 03 0A 00
  jumpFalse $0013                ; $000C 5D 04 00
  talkActor "Hi"                 ; $000F BA 48 69 00
  actorOps.setName "Bob"         ; $0013 9D 58 42 6F 62 00
  jump $0005                     ; $0019 73 E9 FF
  stopObjectCodeA                ; $001C 65
`

func writeScript(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "script.scr")
	assert.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestScummV6_Disassemble(t *testing.T) {
	dis := New()
	t.Cleanup(func() { _ = dis.Close() })

	assert.NoError(t, dis.Open(writeScript(t, testScript)))
	list, err := dis.Decode()
	assert.NoError(t, err)
	assert.Len(t, list, 10)
	assert.NoError(t, instruction.CheckPartition(list, 0, len(testScript)))

	buf := &bytes.Buffer{}
	assert.NoError(t, dis.Render(buf))
	assert.Equal(t, expectedListing, buf.String())
}

func TestScummV6_DecodeInstruction(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		size int
		text string
	}{
		{"byte variable", []byte{0x02, 0x07}, 2, "pushByteVar var7"},
		{"bit variable", []byte{0x4f, 0x02, 0x80}, 3, "wordVarInc bitvar2"},
		{"array write", []byte{0x47, 0x10, 0x00}, 3, "wordArrayWrite 16"},
		{"sub-op without params", []byte{0x6b, 0x90}, 2, "cursorCommand.cursorOn"},
		{"array assign string", []byte{0xa4, 0xcd, 0x02, 0x00, 'a', 0x00}, 6, `arrayOps.assignString 2, "a"`},
		{"array assign list", []byte{0xa4, 0xd0, 0x02, 0x00}, 4, "arrayOps.assignIntList 2"},
		{"dim array", []byte{0xbc, 0xc7, 0x05, 0x00}, 4, "dimArray.int 5"},
		{"wait with jump", []byte{0xa9, 0xa8, 0xfc, 0xff}, 4, "wait.waitForActor $0000"},
		{"wait without jump", []byte{0xa9, 0xa9}, 2, "wait.waitForMessage"},
		{"print text", []byte{0xb4, 0x4b, 'o', 'k', 0x00}, 5, `printLine.textString "ok"`},
		{"string escape with argument", []byte{0xbb, 0xff, 0x04, 0x01, 0x00, 0x00}, 6, `talkEgo "\xff\x04\x01\x00"`},
		{"string escape without argument", []byte{0xbb, 0xff, 0x03, 'x', 0x00}, 5, `talkEgo "\xff\x03x"`},
		{"empty string", []byte{0x97, 0x00}, 2, `setObjectName ""`},
	}

	s := &ScummV6{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins, err := s.DecodeInstruction(tt.data, 0)
			assert.NoError(t, err)
			assert.Equal(t, 0, ins.Offset())
			assert.Equal(t, tt.size, ins.Size())
			assert.Equal(t, uint32(tt.data[0]), ins.Opcode())
			assert.Equal(t, tt.text, s.FormatInstruction(ins))
		})
	}
}

func TestScummV6_Malformed(t *testing.T) {
	tests := []struct {
		name       string
		data       []byte
		offset     int
		wantOffset int
		wantOpcode uint32
		reason     string
	}{
		{"unknown opcode", []byte{0x14, 0x04}, 1, 1, 0x04, "unknown opcode"},
		{"unknown sub-op", []byte{0x9d, 0x01}, 0, 0, 0x9d, "sub-op $01"},
		{"truncated word", []byte{0x14, 0x01, 0x34}, 1, 1, 0x01, "need 2 bytes"},
		{"missing sub-op", []byte{0x9e}, 0, 0, 0x9e, "need 1 bytes"},
		{"unterminated string", []byte{0xba, 'a', 'b'}, 0, 0, 0xba, "unterminated string"},
		{"truncated escape", []byte{0xba, 0xff}, 0, 0, 0xba, "unterminated string escape"},
		{"truncated escape argument", []byte{0xba, 0xff, 0x04, 0x01}, 0, 0, 0xba, "truncated string escape"},
		{"jump before script start", []byte{0x73, 0xf0, 0xff}, 0, 0, 0x73, "before script start"},
	}

	s := &ScummV6{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.DecodeInstruction(tt.data, tt.offset)

			var malformed *disasm.MalformedBytecodeError
			assert.True(t, errors.As(err, &malformed))
			assert.Equal(t, tt.wantOffset, malformed.Offset)
			assert.Equal(t, tt.wantOpcode, malformed.Opcode)
			assert.True(t, malformed.HasOpcode)
			assert.Contains(t, malformed.Reason, tt.reason)
		})
	}
}

func TestScummV6_DecodeFailsFast(t *testing.T) {
	dis := New()
	t.Cleanup(func() { _ = dis.Close() })

	assert.NoError(t, dis.Open(writeScript(t, []byte{0x14, 0x15, 0xff, 0x14})))
	list, err := dis.Decode()
	assert.Len(t, list, 0)

	var malformed *disasm.MalformedBytecodeError
	assert.True(t, errors.As(err, &malformed))
	assert.Equal(t, 2, malformed.Offset)
	assert.Equal(t, uint32(0xff), malformed.Opcode)

	var notReady *disasm.NotReadyError
	assert.True(t, errors.As(dis.Render(&bytes.Buffer{}), &notReady))
}

func TestScummV6_Deterministic(t *testing.T) {
	decode := func() []instruction.Instruction {
		dis := New()
		t.Cleanup(func() { _ = dis.Close() })
		assert.NoError(t, dis.Open(writeScript(t, testScript)))
		list, err := dis.Decode()
		assert.NoError(t, err)
		return list
	}

	assert.True(t, instruction.Equal(decode(), decode()))
}

func TestScummV6_OpcodeTable(t *testing.T) {
	for _, op := range opcodes {
		assert.True(t, op.name != "")
		if op.subOps == nil {
			assert.Len(t, op.subParams, 0)
			continue
		}
		assert.Len(t, op.params, 0)
		for _, sub := range op.subOps {
			assert.True(t, sub.name != "")
		}
	}
}

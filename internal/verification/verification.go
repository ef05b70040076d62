// Package verification verifies that a decoded instruction list is reproducible
// and covers the scanned source without gaps.
package verification

import (
	"bytes"
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/scriptdisasm/internal/disasm"
	"github.com/retroenv/scriptdisasm/internal/instruction"
)

// Creator creates a new unopened disassembler for an engine.
type Creator interface {
	Create(id string) (disasm.Disassembler, error)
}

// MismatchError is returned when the second decoding differs from the first one.
type MismatchError struct {
	Index  int
	Offset int
	Reason string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("verification mismatch at instruction %d offset $%04X: %s", e.Index, e.Offset, e.Reason)
}

// VerifyOutput decodes the input file again using a fresh disassembler instance and
// checks that the instructions and their listing are identical to the given decoded one.
func VerifyOutput(logger *log.Logger, creator Creator, engineID, input string, decoded disasm.Disassembler) error {
	list := decoded.Instructions()
	if err := checkCoverage(list); err != nil {
		return err
	}

	dis, err := creator.Create(engineID)
	if err != nil {
		return fmt.Errorf("creating disassembler: %w", err)
	}
	defer func() { _ = dis.Close() }()

	if err := dis.Open(input); err != nil {
		return fmt.Errorf("opening input again: %w", err)
	}
	second, err := dis.Decode()
	if err != nil {
		return fmt.Errorf("decoding input again: %w", err)
	}

	if err := compareInstructions(list, second); err != nil {
		return err
	}
	if err := compareListings(decoded, dis); err != nil {
		return err
	}

	logger.Debug("Verified decoded instructions",
		log.String("engine", engineID),
		log.Int("instructions", len(list)))
	return nil
}

func checkCoverage(list []instruction.Instruction) error {
	end := 0
	if len(list) > 0 {
		end = list[len(list)-1].End()
	}
	if err := instruction.CheckPartition(list, 0, end); err != nil {
		return fmt.Errorf("checking instruction coverage: %w", err)
	}
	return nil
}

func compareInstructions(first, second []instruction.Instruction) error {
	for i := range min(len(first), len(second)) {
		if !first[i].Equal(second[i]) {
			return &MismatchError{Index: i, Offset: first[i].Offset(),
				Reason: fmt.Sprintf("decoded '%s' and '%s'", first[i], second[i])}
		}
	}
	if len(first) != len(second) {
		index := min(len(first), len(second))
		return &MismatchError{Index: index,
			Reason: fmt.Sprintf("instruction count %d != %d", len(first), len(second))}
	}
	return nil
}

func compareListings(first, second disasm.Disassembler) error {
	var a, b bytes.Buffer
	if err := first.Render(&a); err != nil {
		return fmt.Errorf("rendering listing: %w", err)
	}
	if err := second.Render(&b); err != nil {
		return fmt.Errorf("rendering listing: %w", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		return &MismatchError{Reason: "listings differ"}
	}
	return nil
}

package instruction

import "fmt"

// PartitionError reports an instruction list that does not cover the scanned
// region without gaps or overlaps.
type PartitionError struct {
	Index  int // index of the offending instruction, len(list) for a short coverage
	Offset int // offset that was expected at that position
	Reason string
}

func (e *PartitionError) Error() string {
	return fmt.Sprintf("instruction %d at offset $%04X: %s", e.Index, e.Offset, e.Reason)
}

// CheckPartition verifies that the instructions start at start and cover the
// source region up to length as a gapless sequence.
func CheckPartition(list []Instruction, start, length int) error {
	expected := start
	for i, ins := range list {
		switch {
		case ins.Size() == 0:
			return &PartitionError{Index: i, Offset: expected, Reason: "empty instruction"}
		case ins.Offset() != expected:
			return &PartitionError{Index: i, Offset: expected,
				Reason: fmt.Sprintf("found instruction at offset $%04X", ins.Offset())}
		case ins.End() > length:
			return &PartitionError{Index: i, Offset: expected,
				Reason: fmt.Sprintf("instruction ends at $%04X beyond source length $%04X", ins.End(), length)}
		}
		expected = ins.End()
	}

	if expected != length {
		return &PartitionError{Index: len(list), Offset: expected,
			Reason: fmt.Sprintf("coverage ends before source length $%04X", length)}
	}
	return nil
}

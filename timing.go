package m68k

// eaFetchCycles returns the source operand fetch cost for an addressing
// mode (MC68000UM Table 8-1). Register-direct modes cost nothing; long
// operands add 4 to every non-zero entry. Consumed when the dispatch table
// entries are generated, so the per-opcode cycle counts already include the
// effective-address time.
func eaFetchCycles(mode, reg uint16, sz Size) Cycles {
	var base Cycles
	switch mode {
	case 0, 1: // Dn, An
		base = 0
	case 2, 3: // (An), (An)+
		base = 4
	case 4: // -(An)
		base = 6
	case 5: // d16(An)
		base = 8
	case 6: // d8(An,Xn)
		base = 10
	case 7:
		switch reg {
		case 0: // (xxx).W
			base = 8
		case 1: // (xxx).L
			base = 12
		case 2: // d16(PC)
			base = 8
		case 3: // d8(PC,Xn)
			base = 10
		case 4: // #imm
			base = 4
		}
	}
	if sz == Long && base > 0 {
		base += 4
	}
	return base
}

// eaWriteCycles returns the destination write cost for an addressing mode.
// Identical to eaFetchCycles except -(An) costs 4 rather than 6.
func eaWriteCycles(mode, reg uint16, sz Size) Cycles {
	var base Cycles
	switch mode {
	case 0, 1: // Dn, An
		base = 0
	case 2, 3, 4: // (An), (An)+, -(An)
		base = 4
	case 5: // d16(An)
		base = 8
	case 6: // d8(An,Xn)
		base = 10
	case 7:
		switch reg {
		case 0: // (xxx).W
			base = 8
		case 1: // (xxx).L
			base = 12
		}
	}
	if sz == Long && base > 0 {
		base += 4
	}
	return base
}

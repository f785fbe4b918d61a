package insts

// gprLSInfo maps the (size,opc) pair of a GPR load/store to a mnemonic,
// record Type, register width, and a signed flag, mirroring the teacher's
// size/opc lookup table.
type gprLSEntry struct {
	mnemonic string
	typ      Type
	regType  RegType
	signed   bool
}

var gprLSInfo = map[uint32]gprLSEntry{
	0<<2 | 0: {"strb", TypeSTRB, RegW, false},
	0<<2 | 1: {"ldrb", TypeLDRB, RegW, false},
	0<<2 | 2: {"ldrsb", TypeLDRSB, RegX, true},
	0<<2 | 3: {"ldrsb", TypeLDRSB, RegW, true},
	1<<2 | 0: {"strh", TypeSTRH, RegW, false},
	1<<2 | 1: {"ldrh", TypeLDRH, RegW, false},
	1<<2 | 2: {"ldrsh", TypeLDRSH, RegX, true},
	1<<2 | 3: {"ldrsh", TypeLDRSH, RegW, true},
	2<<2 | 0: {"str", TypeSTR, RegW, false},
	2<<2 | 1: {"ldr", TypeLDR, RegW, false},
	2<<2 | 2: {"ldrsw", TypeLDRSW, RegX, true},
	3<<2 | 0: {"str", TypeSTR, RegX, false},
	3<<2 | 1: {"ldr", TypeLDR, RegX, false},
}

// decodeLSUnsignedImm decodes the unsigned-immediate offset form:
// size|111|0|01|opc|imm12|Rn|Rt.
func decodeLSUnsignedImm(word uint32, addr uint64, rec *Instruction) bool {
	size := bits(word, 30, 31)
	opc := bits(word, 22, 23)
	imm12 := bits(word, 10, 21)
	rn := uint8(bits(word, 5, 9))
	rt := uint8(bits(word, 0, 4))

	info, ok := gprLSInfo[size<<2|opc]
	if !ok {
		return false
	}

	rec.Rd = rt
	rec.Rn = rn
	rec.RnType = RegSP
	rec.RdType = info.regType
	rec.Mnemonic = info.mnemonic
	rec.Type = info.typ
	rec.AddrMode = AddrImmUnsigned
	rec.Imm = int64(imm12) << size
	rec.HasImm = true
	rec.Is64Bit = info.regType == RegX
	return true
}

// decodeLSRegOffset decodes the register-offset form:
// size|111|0|00|opc|1|Rm|option|S|10|Rn|Rt.
func decodeLSRegOffset(word uint32, addr uint64, rec *Instruction) bool {
	size := bits(word, 30, 31)
	opc := bits(word, 22, 23)
	rm := uint8(bits(word, 16, 20))
	option := bits(word, 13, 15)
	s := bit(word, 12)
	rn := uint8(bits(word, 5, 9))
	rt := uint8(bits(word, 0, 4))

	if option&0x2 == 0 {
		return false
	}

	info, ok := gprLSInfo[size<<2|opc]
	if !ok {
		return false
	}

	rec.Rd = rt
	rec.Rn = rn
	rec.Rm = rm
	rec.RnType = RegSP
	rec.RdType = info.regType
	if option&0x1 == 1 {
		rec.RmType = widthType(1)
	} else {
		rec.RmType = widthType(0)
	}
	rec.Mnemonic = info.mnemonic
	rec.Type = info.typ
	rec.AddrMode = AddrRegOffset
	rec.ExtendType = ExtendType(option)
	if s != 0 {
		rec.ShiftAmount = uint8(size)
	}
	rec.Is64Bit = info.regType == RegX
	return true
}

// decodeLSUnscaledImm decodes LDUR/STUR (and pre/post-index) unscaled forms:
// size|111|0|00|opc|imm9|idx|Rn|Rt.
func decodeLSUnscaledImm(word uint32, addr uint64, rec *Instruction) bool {
	size := bits(word, 30, 31)
	opc := bits(word, 22, 23)
	imm9 := bits(word, 12, 20)
	idx := bits(word, 10, 11)
	rn := uint8(bits(word, 5, 9))
	rt := uint8(bits(word, 0, 4))

	if idx == 2 {
		return false
	}

	info, ok := gprLSInfo[size<<2|opc]
	if !ok {
		return false
	}

	rec.Rd = rt
	rec.Rn = rn
	rec.RnType = RegSP
	rec.RdType = info.regType
	rec.Mnemonic = info.mnemonic
	rec.Type = info.typ
	rec.Imm = signExtend(imm9, 9)
	rec.HasImm = true
	rec.Is64Bit = info.regType == RegX

	switch idx {
	case 0:
		rec.AddrMode = AddrImmSigned
		rec.Mnemonic = info.mnemonic[:2] + "u" + info.mnemonic[2:]
	case 1:
		rec.AddrMode = AddrPostIndex
	case 3:
		rec.AddrMode = AddrPreIndex
	}
	return true
}

// decodeLSPair decodes LDP/STP/LDPSW and the SIMD&FP pairs:
// opc|101|V|0|idx|L|imm7|Rt2|Rn|Rt.
func decodeLSPair(word uint32, addr uint64, rec *Instruction) bool {
	opc := bits(word, 30, 31)
	l := bit(word, 22)
	imm7 := bits(word, 15, 21)
	rt2 := uint8(bits(word, 10, 14))
	rn := uint8(bits(word, 5, 9))
	rt := uint8(bits(word, 0, 4))
	idx := bits(word, 23, 24)

	if idx == 0 {
		return false
	}
	v := bit(word, 26)
	if v == 0 && opc == 1 && l == 0 {
		return false
	}

	var scale uint32
	var regType RegType
	switch {
	case v == 1 && opc < 3:
		scale, regType = opc+2, [3]RegType{RegS, RegD, RegQ}[opc]
	case opc == 0:
		scale, regType = 2, RegW
	case opc == 1:
		scale, regType = 2, RegX
	case opc == 2:
		scale, regType = 3, RegX
	default:
		return false
	}

	rec.Rd = rt
	rec.RdType = regType
	rec.Rt2 = rt2
	rec.Rn = rn
	rec.RnType = RegSP
	rec.Imm = signExtend(imm7, 7) << scale
	rec.HasImm = true

	switch idx {
	case 1:
		rec.AddrMode = AddrPostIndex
	case 2:
		rec.AddrMode = AddrImmSigned
	case 3:
		rec.AddrMode = AddrPreIndex
	}

	if l == 0 {
		rec.Mnemonic = "stp"
		rec.Type = TypeSTP
	} else {
		rec.Mnemonic = "ldp"
		rec.Type = TypeLDP
	}
	if v == 0 && opc == 1 {
		rec.Mnemonic = "ldpsw"
	}
	rec.Is64Bit = regType == RegX
	return true
}

// decodeLoadLiteral decodes LDR (literal): opc|011|V|00|imm19|Rt.
func decodeLoadLiteral(word uint32, addr uint64, rec *Instruction) bool {
	opc := bits(word, 30, 31)
	imm19 := bits(word, 5, 23)
	rt := uint8(bits(word, 0, 4))

	if opc == 3 {
		return false
	}

	rec.Rd = rt
	rec.Imm = signExtend(imm19, 19) << 2
	rec.HasImm = true
	rec.AddrMode = AddrLiteral
	rec.Mnemonic = "ldr"
	rec.Type = TypeLDR

	if bit(word, 26) == 1 {
		rec.RdType = [3]RegType{RegS, RegD, RegQ}[opc]
		return true
	}

	switch opc {
	case 0:
		rec.RdType = RegW
	case 1:
		rec.RdType = RegX
		rec.Is64Bit = true
	case 2:
		rec.RdType = RegX
		rec.Type = TypeLDRSW
		rec.Mnemonic = "ldrsw"
	}
	return true
}

// decodeLoadStoreExclusive decodes the exclusive and load-acquire/
// store-release family: size|001000|o2|L|o1|Rs|o0|Rt2|Rn|Rt.
//
// o2 discriminates the two sub-families sharing this encoding space: o2==0
// is the exclusive-monitor forms (LDXR/STXR/LDAXR/STLXR and their register-
// pair counterparts LDXP/STXP/LDAXP/STLXP, selected by o1), and o2==1 is the
// plain (non-exclusive) load-acquire/store-release forms LDAR/STLR and their
// ARMv8.1 LORegion variants LDLAR/STLLR, selected by o0. Grounded field-for-
// field on decode_load_store_exclusive in original_source's
// arm64_disasm_loadstore.c.
func decodeLoadStoreExclusive(word uint32, addr uint64, rec *Instruction) bool {
	size := bits(word, 30, 31)
	o2 := bit(word, 23)
	l := bit(word, 22)
	o1 := bit(word, 21)
	rs := uint8(bits(word, 16, 20))
	o0 := bit(word, 15)
	rt2 := uint8(bits(word, 10, 14))
	rn := uint8(bits(word, 5, 9))
	rt := uint8(bits(word, 0, 4))

	var mnemonic string
	var typ Type
	pair := false

	switch {
	case o2 == 0 && l == 1 && o1 == 0 && o0 == 0:
		mnemonic, typ = "ldxr", TypeLDXR
	case o2 == 0 && l == 1 && o1 == 0 && o0 == 1:
		mnemonic, typ = "ldaxr", TypeLDAXR
	case o2 == 0 && l == 1 && o1 == 1 && o0 == 0:
		mnemonic, typ, pair = "ldxp", TypeLDXP, true
	case o2 == 0 && l == 1 && o1 == 1 && o0 == 1:
		mnemonic, typ, pair = "ldaxp", TypeLDAXP, true
	case o2 == 0 && l == 0 && o1 == 0 && o0 == 0:
		mnemonic, typ = "stxr", TypeSTXR
	case o2 == 0 && l == 0 && o1 == 0 && o0 == 1:
		mnemonic, typ = "stlxr", TypeSTLXR
	case o2 == 0 && l == 0 && o1 == 1 && o0 == 0:
		mnemonic, typ, pair = "stxp", TypeSTXP, true
	case o2 == 0 && l == 0 && o1 == 1 && o0 == 1:
		mnemonic, typ, pair = "stlxp", TypeSTLXP, true
	case o2 == 1 && l == 1 && o0 == 1:
		mnemonic, typ = "ldar", TypeLDAR
	case o2 == 1 && l == 1 && o0 == 0:
		mnemonic, typ = "ldlar", TypeLDLAR
	case o2 == 1 && l == 0 && o0 == 1:
		mnemonic, typ = "stlr", TypeSTLR
	case o2 == 1 && l == 0 && o0 == 0:
		mnemonic, typ = "stllr", TypeSTLLR
	default:
		return false
	}

	// o1 is fixed at 0 and Rt2 is a reserved field (must read as 11111) for
	// every single-register form; o2==1's Rs slot is unused and likewise
	// reserved as 11111.
	if !pair && rt2 != 31 {
		return false
	}
	if o2 == 1 && rs != 31 {
		return false
	}

	width := RegX
	if size != 3 {
		width = RegW
	}

	rec.Rn = rn
	rec.RnType = RegSP
	rec.Mnemonic = mnemonic
	rec.Type = typ
	rec.IsAcquire = l == 1 && o0 == 1
	rec.IsRelease = l == 0 && o0 == 1
	rec.Is64Bit = size == 3
	rec.AddrMode = AddrImmUnsigned

	switch {
	case pair && l == 0: // STXP/STLXP: status reg, Rt, Rt2
		rec.Rm = rs
		rec.RmType = RegW
		rec.Rd = rt
		rec.Rt2 = rt2
		rec.RdType = width
	case pair: // LDXP/LDAXP: Rt, Rt2
		rec.Rd = rt
		rec.Rt2 = rt2
		rec.RdType = width
	case l == 0: // STXR/STLXR: status reg, Rt
		rec.Rm = rs
		rec.RmType = RegW
		rec.Rd = rt
		rec.RdType = width
	default: // LDXR/LDAXR/LDAR/LDLAR
		rec.Rd = rt
		rec.RdType = width
	}

	switch size {
	case 0:
		rec.Mnemonic += "b"
		rec.RdType = RegW
	case 1:
		rec.Mnemonic += "h"
		rec.RdType = RegW
	}
	return true
}

var atomicOps = map[uint32]struct {
	mnemonic string
	typ      Type
}{
	0x0: {"ldadd", TypeLDADD},
	0x1: {"ldclr", TypeLDCLR},
	0x2: {"ldeor", TypeLDEOR},
	0x3: {"ldset", TypeLDSET},
	0x4: {"ldsmax", TypeLDSMAX},
	0x5: {"ldsmin", TypeLDSMIN},
	0x6: {"ldumax", TypeLDUMAX},
	0x7: {"ldumin", TypeLDUMIN},
	0x8: {"swp", TypeSWP},
}

// decodeAtomicMemoryOps decodes the ARMv8.1 LDADD/LDCLR/.../SWP family:
// size|111|0|00|A|R|1|Rs|o3|opc|00|Rn|Rt.
func decodeAtomicMemoryOps(word uint32, addr uint64, rec *Instruction) bool {
	size := bits(word, 30, 31)
	a := bit(word, 23)
	r := bit(word, 22)
	rs := uint8(bits(word, 16, 20))
	o3 := bit(word, 15)
	opc := bits(word, 12, 14)
	rn := uint8(bits(word, 5, 9))
	rt := uint8(bits(word, 0, 4))

	if bit(word, 26) != 0 {
		return false
	}

	key := o3<<3 | opc
	info, ok := atomicOps[key]
	if !ok {
		return false
	}

	rec.Rn = rn
	rec.RnType = RegSP
	rec.Rm = rs
	rec.Rd = rt
	rec.Mnemonic = info.mnemonic + [4]string{"", "l", "a", "al"}[a<<1|r] + [4]string{"b", "h", "", ""}[size]
	rec.Type = info.typ
	rec.IsAcquire = a != 0
	rec.IsRelease = r != 0
	rec.Is64Bit = size == 3
	if size == 3 {
		rec.RmType = RegX
		rec.RdType = RegX
	} else {
		rec.RmType = RegW
		rec.RdType = RegW
	}
	return true
}

// decodeCAS decodes CAS/CASA/CASL/CASAL: size|0010001|L|1|Rs|o0|11111|Rn|Rt.
func decodeCAS(word uint32, addr uint64, rec *Instruction) bool {
	size := bits(word, 30, 31)
	l := bit(word, 22)
	rs := uint8(bits(word, 16, 20))
	o0 := bit(word, 15)
	rn := uint8(bits(word, 5, 9))
	rt := uint8(bits(word, 0, 4))

	rec.Rn = rn
	rec.RnType = RegSP
	rec.Rm = rs
	rec.Rd = rt
	rec.Mnemonic = "cas" + [4]string{"", "l", "a", "al"}[l<<1|o0] + [4]string{"b", "h", "", ""}[size]
	rec.Type = TypeCAS
	rec.IsAcquire = l != 0
	rec.IsRelease = o0 != 0
	rec.Is64Bit = size == 3
	if size == 3 {
		rec.RmType = RegX
		rec.RdType = RegX
	} else {
		rec.RmType = RegW
		rec.RdType = RegW
	}
	return true
}

var loadStoreDecodeTable = []decodeEntry{
	{0x3FA07C00, 0x08A07C00, decodeCAS, "cas"},
	{0x3F000000, 0x08000000, decodeLoadStoreExclusive, "load_store_exclusive"},
	{0x3B200C00, 0x38200000, decodeAtomicMemoryOps, "atomic_memory_ops"},
	{0x3A000000, 0x28000000, decodeLSPair, "ls_pair"},
	{0x3B000000, 0x18000000, decodeLoadLiteral, "load_literal"},
	{0x3B000000, 0x39000000, decodeLSUnsignedImm, "ls_unsigned_imm"},
	{0x3B200C00, 0x38200800, decodeLSRegOffset, "ls_reg_offset"},
	{0x3B200000, 0x38000000, decodeLSUnscaledImm, "ls_unscaled_imm"},
}

func decodeLoadStore(word uint32, addr uint64, rec *Instruction) bool {
	return decodeWithTable(loadStoreDecodeTable, word, addr, rec)
}

package insts

// widthType maps the sf bit to the 64-/32-bit GPR width class.
func widthType(sf uint32) RegType {
	if sf != 0 {
		return RegX
	}
	return RegW
}

var topLevelDecodeTable = []decodeEntry{
	{0x1C000000, 0x10000000, decodeDataProcImm, "data_proc_imm"},
	{0x1C000000, 0x14000000, decodeBranch, "branch"},
	{0x0A000000, 0x08000000, decodeLoadStore, "load_store_1"},
	{0x1C000000, 0x18000000, decodeLoadStore, "load_store_2"},
	{0x0E000000, 0x0A000000, decodeDataProcReg, "data_proc_reg"},
	// Scalar floating-point and Advanced SIMD data processing: bits[28:25] =
	// 0111 or 1111.
	{0x0E000000, 0x0E000000, decodeFPSIMD, "fp_simd"},
}

// Decoder decodes A64 instruction words. It carries no state; a zero-value
// Decoder, or any number of concurrently used Decoders, are equally valid —
// the decode tables are immutable package-level data.
type Decoder struct{}

// NewDecoder returns a ready-to-use Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode disassembles one 32-bit A64 instruction word at the given virtual
// address. On success it returns the populated Instruction and true; on
// failure it returns false and a record with Type == TypeUnknown and
// Mnemonic "unknown", carrying only Raw and Address.
func (d *Decoder) Decode(word uint32, address uint64) (Instruction, bool) {
	return Decode(word, address)
}

// Decode is the package-level entry point; Decoder.Decode forwards to it.
func Decode(word uint32, address uint64) (Instruction, bool) {
	rec := Instruction{
		Raw:      word,
		Address:  address,
		Type:     TypeUnknown,
		Mnemonic: "unknown",
	}

	if decodeWithTable(topLevelDecodeTable, word, address, &rec) {
		return rec, true
	}

	// Some boundary encodings are not exactly captured by the top-level
	// partition; retry each class decoder directly in a fixed order.
	if decodeBranch(word, address, &rec) {
		return rec, true
	}
	if decodeDataProcImm(word, address, &rec) {
		return rec, true
	}
	if decodeDataProcReg(word, address, &rec) {
		return rec, true
	}
	if decodeLoadStore(word, address, &rec) {
		return rec, true
	}
	if decodeFPSIMD(word, address, &rec) {
		return rec, true
	}

	return Instruction{Type: TypeUnknown, Mnemonic: "unknown", Raw: word, Address: address}, false
}

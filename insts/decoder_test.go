package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/armdisasm/insts"
)

var _ = Describe("Decoder", func() {
	Describe("Data Processing (Immediate)", func() {
		// ADD X0, X1, #1 -> 0x91000420
		It("should decode ADD X0, X1, #1", func() {
			inst, ok := insts.Decode(0x91000420, 0x1000)

			Expect(ok).To(BeTrue())
			Expect(inst.Type).To(Equal(insts.TypeADD))
			Expect(inst.Is64Bit).To(BeTrue())
			Expect(inst.SetFlags).To(BeFalse())
			Expect(inst.Rd).To(Equal(uint8(0)))
			Expect(inst.Rn).To(Equal(uint8(1)))
			Expect(inst.Imm).To(Equal(int64(1)))
		})

		// ADD W0, W1, #100 -> 0x11019020
		It("should decode ADD W0, W1, #100", func() {
			inst, ok := insts.Decode(0x11019020, 0x1000)

			Expect(ok).To(BeTrue())
			Expect(inst.Type).To(Equal(insts.TypeADD))
			Expect(inst.Is64Bit).To(BeFalse())
			Expect(inst.Imm).To(Equal(int64(100)))
		})

		// SUBS XZR, X1, X0 is a register-form CMP and is covered under
		// "Data Processing (Register)" below; the immediate CMP alias is not
		// exercised here, the MOVZ/ORR-based aliases below are.

		// ORR X0, XZR, #1 -> MOV alias. 0xB24003E0 encodes
		// ORR X0, XZR, #0x1 via logical immediate.
		It("rewrites ORR Xd, XZR, #imm to the mov alias", func() {
			// sf=1 opc=01(orr) 100100 N=1 immr=0 imms=0 Rn=11111 Rd=00000
			word := uint32(0xB24003E0)
			inst, ok := insts.Decode(word, 0x1000)

			Expect(ok).To(BeTrue())
			Expect(inst.Type).To(Equal(insts.TypeMOV))
			Expect(inst.Mnemonic).To(Equal("mov"))
		})

		// MOVZ X0, #1 -> 0xD2800020
		It("should decode MOVZ X0, #1", func() {
			inst, ok := insts.Decode(0xD2800020, 0x1000)

			Expect(ok).To(BeTrue())
			Expect(inst.Type).To(Equal(insts.TypeMOVZ))
			Expect(inst.Rd).To(Equal(uint8(0)))
			Expect(inst.Imm).To(Equal(int64(1)))
		})

		// LSL X0, X1, #4 is UBFM Xd, Xn, #(-4 mod 64), #(63-4) encoded as
		// an alias; rather than hand-deriving immr/imms, exercise the
		// simpler ASR alias path via SBFM with imms == width-1.
		It("rewrites SBFM with imms==width-1 to the asr alias", func() {
			// sf=1 opc=00(sbfm) 100110 N=1 immr=000100 imms=111111 Rn=1 Rd=0
			word := uint32(0x9344FC20)
			inst, ok := insts.Decode(word, 0x1000)

			Expect(ok).To(BeTrue())
			Expect(inst.Type).To(Equal(insts.TypeASR))
		})

		It("rewrites EXTR with Rn==Rm to the ror alias", func() {
			// sf=1 00 100111 N=1 0 Rm=00001 imms=000100 Rn=00001 Rd=00000
			word := uint32(0x93C11020)
			inst, ok := insts.Decode(word, 0x1000)

			Expect(ok).To(BeTrue())
			Expect(inst.Type).To(Equal(insts.TypeROR))
		})
	})

	Describe("Data Processing (Register)", func() {
		// CMP X1, X0 -> SUBS XZR, X1, X0: 0xEB00003F
		It("should decode CMP X1, X0 from SUBS XZR, X1, X0", func() {
			inst, ok := insts.Decode(0xEB00003F, 0x1000)

			Expect(ok).To(BeTrue())
			Expect(inst.Type).To(Equal(insts.TypeCMP))
			Expect(inst.Mnemonic).To(Equal("cmp"))
			Expect(inst.Rn).To(Equal(uint8(1)))
			Expect(inst.Rm).To(Equal(uint8(0)))
		})

		// CSET X0, NE -> CSINC X0, XZR, XZR, EQ: 0x9A9F07E0
		It("should decode CSET X0, NE from CSINC X0, XZR, XZR, EQ", func() {
			inst, ok := insts.Decode(0x9A9F07E0, 0x1000)

			Expect(ok).To(BeTrue())
			Expect(inst.Type).To(Equal(insts.TypeCSET))
			Expect(inst.Mnemonic).To(Equal("cset"))
			Expect(inst.Cond).To(Equal(insts.CondNE))
		})

		It("decodes MUL as the Ra==31 alias of MADD", func() {
			// sf=1 00 11011 op54=00 Rm=00010 o0=0 Ra=11111 Rn=00001 Rd=00000
			word := uint32(0x9B027C20)
			inst, ok := insts.Decode(word, 0x1000)

			Expect(ok).To(BeTrue())
			Expect(inst.Type).To(Equal(insts.TypeMUL))
		})

		It("decodes UDIV", func() {
			// sf=1 0 S=0 11010110 Rm=00010 opcode=000010 Rn=00001 Rd=00000
			word := uint32(0x9AC20820)
			inst, ok := insts.Decode(word, 0x1000)

			Expect(ok).To(BeTrue())
			Expect(inst.Type).To(Equal(insts.TypeUDIV))
		})
	})

	Describe("Branches", func() {
		It("should decode B with an absolute branch target", func() {
			inst, ok := insts.Decode(0x14000010, 0x1000)

			Expect(ok).To(BeTrue())
			Expect(inst.Type).To(Equal(insts.TypeB))

			target, hasTarget := insts.BranchTarget(inst)
			Expect(hasTarget).To(BeTrue())
			Expect(target).To(Equal(uint64(0x1040)))
		})

		It("should decode RET", func() {
			inst, ok := insts.Decode(0xD65F03C0, 0x1000)

			Expect(ok).To(BeTrue())
			Expect(inst.Type).To(Equal(insts.TypeRET))
			Expect(inst.Rn).To(Equal(uint8(30)))
		})

		It("should decode MRS X0, SP_EL0", func() {
			inst, ok := insts.Decode(0xD5384100, 0x1000)

			Expect(ok).To(BeTrue())
			Expect(inst.Type).To(Equal(insts.TypeMRS))
			Expect(inst.Rd).To(Equal(uint8(0)))
		})
	})

	Describe("Load/Store", func() {
		It("should decode LDR X1, [X1, #8]", func() {
			inst, ok := insts.Decode(0xF9400421, 0x1000)

			Expect(ok).To(BeTrue())
			Expect(inst.Type).To(Equal(insts.TypeLDR))
			Expect(inst.Rd).To(Equal(uint8(1)))
			Expect(inst.Rn).To(Equal(uint8(1)))
			Expect(inst.Imm).To(Equal(int64(8)))
		})

		It("should decode STP X29, X30, [SP, #-16]!", func() {
			inst, ok := insts.Decode(0xA9BF7BFD, 0x1000)

			Expect(ok).To(BeTrue())
			Expect(inst.Type).To(Equal(insts.TypeSTP))
			Expect(inst.Rd).To(Equal(uint8(29)))
			Expect(inst.Rt2).To(Equal(uint8(30)))
			Expect(inst.AddrMode).To(Equal(insts.AddrPreIndex))
			Expect(inst.Imm).To(Equal(int64(-16)))
		})

		It("should decode LDADD X0, X0, [X1]", func() {
			inst, ok := insts.Decode(0xF8200020, 0x1000)

			Expect(ok).To(BeTrue())
			Expect(inst.Type).To(Equal(insts.TypeLDADD))
			Expect(inst.Rn).To(Equal(uint8(1)))
		})
	})

	Describe("Floating point", func() {
		It("should decode FADD", func() {
			// 0001111 00 1 type=00 1 Rm=00010 opcode=0010 10 Rn=00001 Rd=00000
			word := uint32(0x1E222820)
			inst, ok := insts.Decode(word, 0x1000)

			Expect(ok).To(BeTrue())
			Expect(inst.Type).To(Equal(insts.TypeFADD))
			Expect(inst.RdType).To(Equal(insts.RegS))
		})

		It("rejects reserved ftype==2", func() {
			word := uint32(0x1EA22820)
			_, ok := insts.Decode(word, 0x1000)

			Expect(ok).To(BeFalse())
		})
	})

	Describe("Unknown encodings", func() {
		It("reports failure and an unknown record for an all-reserved word", func() {
			inst, ok := insts.Decode(0xFFFFFFFF, 0x1000)

			Expect(ok).To(BeFalse())
			Expect(inst.Type).To(Equal(insts.TypeUnknown))
			Expect(inst.Mnemonic).To(Equal("unknown"))
		})
	})
})

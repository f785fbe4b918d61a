package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/armdisasm/insts"
)

// These vectors are reproduced verbatim from the concrete end-to-end
// scenarios table: same words, same address, same expected text.
var _ = DescribeTable("concrete end-to-end disassembly",
	func(word uint32, address uint64, expected string) {
		inst, ok := insts.Decode(word, address)
		Expect(ok).To(BeTrue())
		Expect(insts.Format(inst)).To(Equal(expected))
	},
	Entry("ldr x1, [x1, #8]", uint32(0xF9400421), uint64(0x1000), "ldr      x1, [x1, #8]"),
	Entry("stp x29, x30, [sp, #-16]!", uint32(0xA9BF7BFD), uint64(0x1000), "stp      x29, x30, [sp, #-16]!"),
	Entry("add x0, x1, #0x1", uint32(0x91000420), uint64(0x1000), "add      x0, x1, #0x1"),
	Entry("cmp x1, x0", uint32(0xEB00003F), uint64(0x1000), "cmp      x1, x0"),
	Entry("movz x0, #0x1", uint32(0xD2800020), uint64(0x1000), "movz     x0, #0x1"),
	Entry("b 0x1040", uint32(0x14000010), uint64(0x1000), "b        0x1040"),
	Entry("ret", uint32(0xD65F03C0), uint64(0x1000), "ret"),
	Entry("mrs x0, SP_EL0", uint32(0xD5384100), uint64(0x1000), "mrs      x0, SP_EL0"),
	Entry("cset x0, ne", uint32(0x9A9F07E0), uint64(0x1000), "cset     x0, ne"),
	Entry("ldadd x0, x0, [x1]", uint32(0xF8200020), uint64(0x1000), "ldadd    x0, x0, [x1]"),
)

var _ = Describe("Query helpers against the golden vectors", func() {
	It("reports branch_target only for the PC-relative families", func() {
		b, ok := insts.Decode(0x14000010, 0x1000)
		Expect(ok).To(BeTrue())
		target, has := insts.BranchTarget(b)
		Expect(has).To(BeTrue())
		Expect(target).To(Equal(uint64(0x1040)))

		ret, ok := insts.Decode(0xD65F03C0, 0x1000)
		Expect(ok).To(BeTrue())
		_, has = insts.BranchTarget(ret)
		Expect(has).To(BeFalse())
	})

	It("classifies branches and register-indirect control flow", func() {
		b, _ := insts.Decode(0x14000010, 0x1000)
		Expect(insts.IsBranch(b)).To(BeTrue())

		ret, _ := insts.Decode(0xD65F03C0, 0x1000)
		Expect(insts.IsBranch(ret)).To(BeTrue())

		add, _ := insts.Decode(0x91000420, 0x1000)
		Expect(insts.IsBranch(add)).To(BeFalse())
	})

	It("classifies load/store instructions", func() {
		ldr, _ := insts.Decode(0xF9400421, 0x1000)
		Expect(insts.IsLoadStore(ldr)).To(BeTrue())

		stp, _ := insts.Decode(0xA9BF7BFD, 0x1000)
		Expect(insts.IsLoadStore(stp)).To(BeTrue())

		ldadd, _ := insts.Decode(0xF8200020, 0x1000)
		Expect(insts.IsLoadStore(ldadd)).To(BeTrue())

		add, _ := insts.Decode(0x91000420, 0x1000)
		Expect(insts.IsLoadStore(add)).To(BeFalse())
	})

	It("returns the normalized immediate only when one is present", func() {
		movz, _ := insts.Decode(0xD2800020, 0x1000)
		imm, ok := insts.Immediate(movz)
		Expect(ok).To(BeTrue())
		Expect(imm).To(Equal(int64(1)))

		ret, _ := insts.Decode(0xD65F03C0, 0x1000)
		_, ok = insts.Immediate(ret)
		Expect(ok).To(BeFalse())
	})

	It("de-duplicates used registers across rd/rn/rm/rt2", func() {
		stp, _ := insts.Decode(0xA9BF7BFD, 0x1000)
		regs := insts.UsedRegisters(stp)
		Expect(regs).To(ContainElements(uint8(29), uint8(30)))

		ldadd, _ := insts.Decode(0xF8200020, 0x1000)
		regs = insts.UsedRegisters(ldadd)
		Expect(regs).To(ContainElement(uint8(0)))
		Expect(regs).To(ContainElement(uint8(1)))
	})
})

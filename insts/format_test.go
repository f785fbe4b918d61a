package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/armdisasm/insts"
)

var _ = Describe("Format", func() {
	It("renders the bare mnemonic for operand-less instructions", func() {
		inst, ok := insts.Decode(0xD65F03C0, 0x1000)
		Expect(ok).To(BeTrue())
		Expect(insts.Format(inst)).To(Equal("ret"))
	})

	It("renders \"unknown\" for a failed decode", func() {
		inst, _ := insts.Decode(0xFFFFFFFF, 0x1000)
		Expect(insts.Format(inst)).To(Equal("unknown"))
	})

	It("renders data-processing immediates in hex", func() {
		inst, ok := insts.Decode(0x91000420, 0x1000)
		Expect(ok).To(BeTrue())
		Expect(insts.Format(inst)).To(Equal("add      x0, x1, #0x1"))
	})

	It("renders memory offsets in decimal", func() {
		inst, ok := insts.Decode(0xF9400421, 0x1000)
		Expect(ok).To(BeTrue())
		Expect(insts.Format(inst)).To(Equal("ldr      x1, [x1, #8]"))
	})

	It("renders branch targets as an absolute address", func() {
		inst, ok := insts.Decode(0x14000010, 0x1000)
		Expect(ok).To(BeTrue())
		Expect(insts.Format(inst)).To(Equal("b        0x1040"))
	})

	It("renders MRS system register names in their original case", func() {
		inst, ok := insts.Decode(0xD5384100, 0x1000)
		Expect(ok).To(BeTrue())
		Expect(insts.Format(inst)).To(Equal("mrs      x0, SP_EL0"))
	})

	It("renders an unmapped system register tuple in the generic S<op0>_... form", func() {
		// op0=3 op1=0 CRn=4 CRm=1 op2=7 is not in the table.
		word := uint32(0xD53841E1)
		inst, ok := insts.Decode(word, 0x1000)
		Expect(ok).To(BeTrue())
		Expect(insts.Format(inst)).To(Equal("mrs      x1, S3_0_C4_C1_7"))
	})
})

package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/armdisasm/insts"
)

// Golden vectors for the exclusive-monitor and load-acquire/store-release
// family, covering every o2/L/o1/o0 combination the encoding permits.
var _ = DescribeTable("exclusive and acquire/release load/store disassembly",
	func(word uint32, address uint64, expected string) {
		inst, ok := insts.Decode(word, address)
		Expect(ok).To(BeTrue())
		Expect(insts.Format(inst)).To(Equal(expected))
	},
	Entry("ldxr x0, [x1]", uint32(0xC85F7C20), uint64(0x1000), "ldxr     x0, [x1]"),
	Entry("ldaxr x0, [x1]", uint32(0xC85FFC20), uint64(0x1000), "ldaxr    x0, [x1]"),
	Entry("stxr w2, x0, [x1]", uint32(0xC8027C20), uint64(0x1000), "stxr     w2, x0, [x1]"),
	Entry("stlxr w2, x0, [x1]", uint32(0xC802FC20), uint64(0x1000), "stlxr    w2, x0, [x1]"),
	Entry("ldar x0, [x1]", uint32(0xC8DFFC20), uint64(0x1000), "ldar     x0, [x1]"),
	Entry("ldlar x0, [x1]", uint32(0xC8DF7C20), uint64(0x1000), "ldlar    x0, [x1]"),
	Entry("stlr x0, [x1]", uint32(0xC89FFC20), uint64(0x1000), "stlr     x0, [x1]"),
	Entry("stllr x0, [x1]", uint32(0xC89F7C20), uint64(0x1000), "stllr    x0, [x1]"),
	Entry("ldxp x0, x2, [x1]", uint32(0xC87F0820), uint64(0x1000), "ldxp     x0, x2, [x1]"),
	Entry("ldaxp x0, x2, [x1]", uint32(0xC87F8820), uint64(0x1000), "ldaxp    x0, x2, [x1]"),
	Entry("stxp w3, x0, x2, [x1]", uint32(0xC8230820), uint64(0x1000), "stxp     w3, x0, x2, [x1]"),
	Entry("stlxp w3, x0, x2, [x1]", uint32(0xC8238820), uint64(0x1000), "stlxp    w3, x0, x2, [x1]"),
)

var _ = Describe("Exclusive load/store decode details", func() {
	It("forces W-width data registers and suffixes the mnemonic for size==0", func() {
		// ldxrb w0, [x1]: same as ldxr x0,[x1] above but size=0.
		word := uint32(0xC85F7C20) &^ (3 << 30)
		inst, ok := insts.Decode(word, 0x1000)

		Expect(ok).To(BeTrue())
		Expect(inst.Mnemonic).To(Equal("ldxrb"))
		Expect(inst.RdType).To(Equal(insts.RegW))
	})

	It("resolves Rn to the stack pointer", func() {
		inst, ok := insts.Decode(0xC85F7C20, 0x1000)

		Expect(ok).To(BeTrue())
		Expect(inst.RnType).To(Equal(insts.RegSP))
	})

	It("sets IsAcquire/IsRelease independently of the exclusive-monitor bit", func() {
		ldaxr, ok := insts.Decode(0xC85FFC20, 0x1000)
		Expect(ok).To(BeTrue())
		Expect(ldaxr.IsAcquire).To(BeTrue())
		Expect(ldaxr.IsRelease).To(BeFalse())

		stlxr, ok := insts.Decode(0xC802FC20, 0x1000)
		Expect(ok).To(BeTrue())
		Expect(stlxr.IsRelease).To(BeTrue())
	})

	It("classifies all twelve forms as load/store", func() {
		words := []uint32{
			0xC85F7C20, 0xC85FFC20, 0xC8027C20, 0xC802FC20,
			0xC8DFFC20, 0xC8DF7C20, 0xC89FFC20, 0xC89F7C20,
			0xC87F0820, 0xC87F8820, 0xC8230820, 0xC8238820,
		}
		for _, w := range words {
			inst, ok := insts.Decode(w, 0x1000)
			Expect(ok).To(BeTrue())
			Expect(insts.IsLoadStore(inst)).To(BeTrue())
		}
	})
})

var _ = Describe("SP/ZR resolution in the dataproc decoders", func() {
	It("renders the shifted-register ADD operating on SP as sp, not xzr", func() {
		inst, ok := insts.Decode(0x8B0103E0, 0x1000)

		Expect(ok).To(BeTrue())
		Expect(inst.RnType).To(Equal(insts.RegSP))
		Expect(insts.Format(inst)).To(Equal("add      x0, sp, x1"))
	})

	It("renders the immediate-form MOV from SP in register form, not as #0", func() {
		inst, ok := insts.Decode(0x910003E0, 0x1000)

		Expect(ok).To(BeTrue())
		Expect(inst.HasImm).To(BeFalse())
		Expect(inst.RmType).To(Equal(insts.RegSP))
		Expect(insts.Format(inst)).To(Equal("mov      x0, sp"))
	})

	It("excludes the implicit zero register from UsedRegisters but includes SP", func() {
		cmp, ok := insts.Decode(0xEB00003F, 0x1000)
		Expect(ok).To(BeTrue())
		Expect(insts.UsedRegisters(cmp)).NotTo(ContainElement(uint8(31)))

		add, ok := insts.Decode(0x8B0103E0, 0x1000)
		Expect(ok).To(BeTrue())
		Expect(insts.UsedRegisters(add)).To(ContainElement(uint8(31)))
	})
})

package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/armdisasm/insts"
)

var _ = Describe("Insts Package", func() {
	It("should have an Instruction type", func() {
		var i insts.Instruction
		Expect(i).To(BeZero())
	})

	It("should have a Decoder type", func() {
		decoder := insts.NewDecoder()
		Expect(decoder).ToNot(BeNil())
	})

	It("should decode through a Decoder the same as the package function", func() {
		decoder := insts.NewDecoder()
		viaDecoder, okD := decoder.Decode(0x91000420, 0x1000)
		viaFunc, okF := insts.Decode(0x91000420, 0x1000)

		Expect(okD).To(BeTrue())
		Expect(okF).To(BeTrue())
		Expect(viaDecoder).To(Equal(viaFunc))
	})

	Describe("Cond.String", func() {
		It("renders the canonical condition suffixes", func() {
			Expect(insts.CondEQ.String()).To(Equal("eq"))
			Expect(insts.CondNE.String()).To(Equal("ne"))
			Expect(insts.CondAL.String()).To(Equal("al"))
		})
	})
})

package backend_test

import (
	. "github.com/mudler/echoscribe/core/backend"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Denoiser length contract", func() {
	It("leaves data of the right length untouched", func() {
		data := []int{1, 2, 3}
		Expect(ClampToLength(data, 3)).To(Equal([]int{1, 2, 3}))
	})

	It("truncates longer data", func() {
		data := []int{1, 2, 3, 4, 5}
		Expect(ClampToLength(data, 3)).To(Equal([]int{1, 2, 3}))
	})

	It("zero-pads shorter data", func() {
		data := []int{1, 2}
		Expect(ClampToLength(data, 4)).To(Equal([]int{1, 2, 0, 0}))
	})
})

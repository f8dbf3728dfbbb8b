package drawing

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BoltCache", func() {
	var (
		cache *BoltCache
		draw  *DrawResult
	)

	BeforeEach(func() {
		var err error
		cache, err = NewBoltCache(filepath.Join(GinkgoT().TempDir(), "cache.db"))
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(cache.Close)

		draw = &DrawResult{
			Date:       "Wed, Sep 3, 2025",
			Numbers:    []int{3, 16, 29, 61, 69},
			Powerball:  22,
			Multiplier: "2x",
		}
	})

	Describe("Get", func() {
		var (
			result *DrawResult
			err    error
		)

		JustBeforeEach(func() {
			result, err = cache.Get("09/03/2025")
		})

		When("the drawing was stored", func() {
			BeforeEach(func() {
				Expect(cache.Put("09/03/2025", draw)).To(Succeed())
			})

			It("should not return an error", func() {
				Expect(err).NotTo(HaveOccurred())
			})

			It("should return the stored drawing", func() {
				Expect(result).To(Equal(draw))
			})
		})

		When("the drawing was never stored", func() {
			It("returns ErrNotCached", func() {
				Expect(err).To(MatchError(ErrNotCached))
			})
		})
	})

	Describe("Put", func() {
		It("overwrites an existing entry", func() {
			Expect(cache.Put("09/03/2025", draw)).To(Succeed())

			updated := &DrawResult{
				Date:      "Wed, Sep 3, 2025",
				Numbers:   []int{1, 2, 3, 4, 5},
				Powerball: 6,
			}
			Expect(cache.Put("09/03/2025", updated)).To(Succeed())

			result, err := cache.Get("09/03/2025")
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(updated))
		})
	})
})

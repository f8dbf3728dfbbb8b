package ticket

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Ticket", func() {
	Describe("Validate", func() {
		var (
			play Ticket
			err  error
		)

		BeforeEach(func() {
			play = Ticket{
				LineID:      "A",
				MainNumbers: []int{9, 29, 38, 40, 52},
				Powerball:   23,
			}
		})

		JustBeforeEach(func() {
			err = play.Validate()
		})

		When("the ticket is well formed", func() {
			It("should not return an error", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("there are too few main numbers", func() {
			BeforeEach(func() {
				play.MainNumbers = []int{9, 29, 38, 40}
			})

			It("returns an invalid ticket error", func() {
				Expect(err).To(MatchError(ErrInvalidTicket))
			})
		})

		When("there are too many main numbers", func() {
			BeforeEach(func() {
				play.MainNumbers = []int{9, 29, 38, 40, 52, 60}
			})

			It("returns an invalid ticket error", func() {
				Expect(err).To(MatchError(ErrInvalidTicket))
			})
		})

		When("a main number is out of range", func() {
			BeforeEach(func() {
				play.MainNumbers = []int{9, 29, 38, 40, 70}
			})

			It("returns an invalid ticket error", func() {
				Expect(err).To(MatchError(ErrInvalidTicket))
			})
		})

		When("a main number is zero", func() {
			BeforeEach(func() {
				play.MainNumbers = []int{0, 29, 38, 40, 52}
			})

			It("returns an invalid ticket error", func() {
				Expect(err).To(MatchError(ErrInvalidTicket))
			})
		})

		When("a main number is repeated", func() {
			BeforeEach(func() {
				play.MainNumbers = []int{9, 29, 29, 40, 52}
			})

			It("returns an invalid ticket error", func() {
				Expect(err).To(MatchError(ErrInvalidTicket))
			})
		})

		When("the powerball is out of range", func() {
			BeforeEach(func() {
				play.Powerball = 27
			})

			It("returns an invalid ticket error", func() {
				Expect(err).To(MatchError(ErrInvalidTicket))
			})
		})

		When("the powerball is zero", func() {
			BeforeEach(func() {
				play.Powerball = 0
			})

			It("returns an invalid ticket error", func() {
				Expect(err).To(MatchError(ErrInvalidTicket))
			})
		})
	})
})

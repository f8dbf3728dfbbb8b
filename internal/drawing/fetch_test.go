package drawing

import (
	"context"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const drawPageHTML = `<!DOCTYPE html>
<html>
<body>
<div id="results">
  <div class="card">
    <h5 class="card-title title-date">Wed, Sep 3, 2025</h5>
    <div class="game-ball-group">
      <div class="white-balls">3</div>
      <div class="white-balls">16</div>
      <div class="white-balls">29</div>
      <div class="white-balls">61</div>
      <div class="white-balls">69</div>
      <div class="powerball">22</div>
    </div>
    <span class="power-play-label">Power Play</span>
    <span class="multiplier">2x</span>
  </div>
  <div class="card">
    <h5 class="card-title title-date">Mon, Sep 1, 2025</h5>
    <div class="white-balls">8</div>
    <div class="white-balls">9</div>
    <div class="white-balls">10</div>
    <div class="white-balls">11</div>
    <div class="white-balls">12</div>
    <div class="powerball">13</div>
  </div>
</div>
</body>
</html>`

var _ = Describe("Site", func() {
	var (
		server *httptest.Server
		status int
		body   string
		date   string
		lines  []string
		err    error
	)

	BeforeEach(func() {
		status = http.StatusOK
		body = drawPageHTML
		date = ""
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(body))
		}))
		DeferCleanup(server.Close)
	})

	JustBeforeEach(func() {
		lines, err = NewSiteWithURL(server.URL).FetchDrawLines(context.Background(), date)
	})

	When("the page holds multiple draw cards", func() {
		It("should not return an error", func() {
			Expect(err).NotTo(HaveOccurred())
		})

		It("should return only the most recent card's lines, in document order", func() {
			Expect(lines).To(Equal([]string{
				"Wed, Sep 3, 2025", "3", "16", "29", "61", "69", "22", "Power Play", "2x",
			}))
		})

		It("should produce lines the parser accepts", func() {
			result, perr := ParseDrawLines(lines)
			Expect(perr).NotTo(HaveOccurred())
			Expect(result.Numbers).To(Equal([]int{3, 16, 29, 61, 69}))
			Expect(result.Powerball).To(Equal(22))
			Expect(result.Multiplier).To(Equal("2x"))
		})
	})

	When("a date is requested", func() {
		BeforeEach(func() {
			date = "09/03/2025"
		})

		It("should not return an error", func() {
			Expect(err).NotTo(HaveOccurred())
		})
	})

	When("the date is not MM/DD/YYYY", func() {
		BeforeEach(func() {
			date = "2025-09-03"
		})

		It("returns the error", func() {
			Expect(err).To(HaveOccurred())
		})
	})

	When("the page has no draw card", func() {
		BeforeEach(func() {
			body = `<html><body><p>maintenance</p></body></html>`
		})

		It("returns the error", func() {
			Expect(err).To(HaveOccurred())
		})
	})

	When("the site returns a non-OK status", func() {
		BeforeEach(func() {
			status = http.StatusServiceUnavailable
		})

		It("returns the error", func() {
			Expect(err).To(HaveOccurred())
		})
	})
})

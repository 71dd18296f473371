package layout_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"gitlab.com/tinyland/lab/termkit/display/ansi"
	"gitlab.com/tinyland/lab/termkit/display/layout"
)

func sum(ws []int) int {
	total := 0
	for _, w := range ws {
		total += w
	}
	return total
}

var _ = Describe("Overhead", func() {
	It("counts edges and padding for bordered rows", func() {
		Expect(layout.Overhead(2, true)).To(Equal(7))
		Expect(layout.Overhead(1, true)).To(Equal(4))
	})

	It("counts two-space gutters for borderless rows", func() {
		Expect(layout.Overhead(3, false)).To(Equal(4))
		Expect(layout.Overhead(1, false)).To(Equal(0))
	})

	It("is zero without columns", func() {
		Expect(layout.Overhead(0, true)).To(BeZero())
	})
})

var _ = Describe("NaturalWidths", func() {
	It("takes the widest visible header or cell", func() {
		headers := []string{"Name", "Age"}
		rows := [][]string{
			{"Alice", "30"},
			{ansi.Red + "Bartholomew" + ansi.Reset},
		}
		Expect(layout.NaturalWidths(headers, rows, nil)).To(Equal([]int{11, 3}))
	})

	It("clamps to the column maximum", func() {
		headers := []string{"Path"}
		rows := [][]string{{"/very/long/path/to/somewhere"}}
		specs := []layout.ColumnSpec{{Max: 10}}
		Expect(layout.NaturalWidths(headers, rows, specs)).To(Equal([]int{10}))
	})
})

var _ = Describe("Allocate", func() {
	bordered := func(naturals []int, target int) layout.Request {
		cols := make([]layout.ColumnSpec, len(naturals))
		for i, n := range naturals {
			cols[i] = layout.ColumnSpec{Natural: n, Min: 4}
		}
		return layout.Request{
			Columns:  cols,
			Overhead: layout.Overhead(len(cols), true),
			Target:   target,
			Shrink:   true,
			Bordered: true,
		}
	}

	Context("when shrinking", func() {
		It("shrinks both columns to their minimum at a tight target", func() {
			widths := layout.Allocate(bordered([]int{20, 5}, 15))
			Expect(widths).To(Equal([]int{4, 4}))
			Expect(sum(widths) + 7).To(Equal(15))
		})

		It("takes width from the column with more slack first", func() {
			widths := layout.Allocate(bordered([]int{20, 5}, 25))
			Expect(widths).To(Equal([]int{13, 5}))
		})

		It("rounds shares up and lets later columns absorb the slack", func() {
			widths := layout.Allocate(bordered([]int{10, 10, 10}, 32))
			Expect(widths).To(Equal([]int{7, 7, 8}))
			Expect(sum(widths) + 10).To(Equal(32))
		})

		It("stops at the minimums when the target is unreachable", func() {
			widths := layout.Allocate(bordered([]int{10, 10}, 5))
			Expect(widths).To(Equal([]int{4, 4}))
		})

		It("never drops a column below its minimum", func() {
			naturals := []int{30, 7, 12, 4, 18}
			for target := 0; target < 100; target++ {
				req := bordered(naturals, target)
				req.Columns[1].Min = 6
				widths := layout.Allocate(req)
				for i, w := range widths {
					Expect(w).To(BeNumerically(">=", min(req.Columns[i].Min, naturals[i])), "target %d column %d", target, i)
					Expect(w).To(BeNumerically("<=", naturals[i]), "target %d column %d", target, i)
				}
			}
		})

		It("leaves columns already at their minimum alone", func() {
			widths := layout.Allocate(bordered([]int{3, 4}, 5))
			Expect(widths).To(Equal([]int{3, 4}))
		})

		It("does nothing when shrinking is off", func() {
			req := bordered([]int{20, 5}, 15)
			req.Shrink = false
			Expect(layout.Allocate(req)).To(Equal([]int{20, 5}))
		})
	})

	Context("when expanding", func() {
		It("fills the target exactly, leftmost columns taking the remainder", func() {
			req := bordered([]int{3, 3}, 20)
			req.Expand = true
			widths := layout.Allocate(req)
			Expect(widths).To(Equal([]int{7, 6}))
			Expect(sum(widths) + req.Overhead).To(Equal(20))
		})

		It("fills the target for any slack", func() {
			for target := 24; target < 60; target++ {
				req := bordered([]int{5, 1, 8}, target)
				req.Expand = true
				Expect(sum(layout.Allocate(req)) + req.Overhead).To(Equal(target))
			}
		})

		It("requires a border", func() {
			req := bordered([]int{3, 3}, 20)
			req.Expand = true
			req.Bordered = false
			req.Overhead = layout.Overhead(2, false)
			Expect(layout.Allocate(req)).To(Equal([]int{3, 3}))
		})
	})

	It("clamps natural widths to the maximum and lets the minimum win over it", func() {
		req := layout.Request{
			Columns: []layout.ColumnSpec{
				{Natural: 50, Max: 10},
				{Natural: 20, Min: 8, Max: 5},
			},
			Target: 200,
			Shrink: true,
		}
		Expect(layout.Allocate(req)).To(Equal([]int{10, 8}))
	})

	It("handles an empty column set", func() {
		Expect(layout.Allocate(layout.Request{Target: 10, Expand: true, Bordered: true})).To(BeEmpty())
	})
})

package rings_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/wavelab/internal/rings"
)

var _ = Describe("BuildGrid", func() {
	It("produces square fields of the requested resolution", func() {
		g := rings.BuildGrid(rings.DefaultHalfExtent, 64)

		Expect(g.Resolution()).To(Equal(64))
		Expect(g.XX).To(HaveLen(64))
		Expect(g.YY).To(HaveLen(64))
		Expect(g.R).To(HaveLen(64))
		for i := range g.R {
			Expect(g.XX[i]).To(HaveLen(64))
			Expect(g.YY[i]).To(HaveLen(64))
			Expect(g.R[i]).To(HaveLen(64))
		}
	})

	It("spans the extent symmetrically", func() {
		g := rings.BuildGrid(0.005, 1000)

		Expect(g.X[0]).To(Equal(-0.005))
		Expect(g.X[999]).To(Equal(0.005))
		Expect(g.Y[0]).To(Equal(-0.005))
		Expect(g.Y[999]).To(Equal(0.005))
	})

	It("follows meshgrid axis order", func() {
		g := rings.BuildGrid(1, 5)

		for i := range g.Y {
			for j := range g.X {
				Expect(g.XX[i][j]).To(Equal(g.X[j]))
				Expect(g.YY[i][j]).To(Equal(g.Y[i]))
			}
		}
	})

	It("derives the radial distance from X and Y", func() {
		g := rings.BuildGrid(0.005, 50)

		for i := range g.R {
			for j := range g.R[i] {
				x, y := g.XX[i][j], g.YY[i][j]
				Expect(g.R[i][j]).To(Equal(math.Sqrt(x*x + y*y)))
			}
		}
	})
})

var _ = Describe("ComputeIntensity", func() {
	o := rings.DefaultOptics()

	It("is dark at the centre", func() {
		f := rings.ComputeIntensity([][]float64{{0}}, o.Lambda, o.RLens)
		Expect(f[0][0]).To(Equal(0.0))
	})

	It("is fully bright where the phase is pi/2", func() {
		r := math.Sqrt(o.Lambda * o.RLens / 2)
		Expect(rings.Phase(r, o.Lambda, o.RLens)).To(BeNumerically("~", math.Pi/2, 1e-12))

		f := rings.ComputeIntensity([][]float64{{r}}, o.Lambda, o.RLens)
		Expect(f[0][0]).To(BeNumerically("~", 1, 1e-12))
	})

	It("places bright rings at RingRadius", func() {
		for k := 0; k < 5; k++ {
			Expect(rings.Intensity(o.RingRadius(k), o.Lambda, o.RLens)).To(BeNumerically("~", 1, 1e-9))
		}
	})

	It("counts the bright rings inside a radius", func() {
		Expect(o.RingsWithin(0)).To(Equal(0))
		Expect(o.RingsWithin(o.RingRadius(3) * 0.99)).To(Equal(3))
		Expect(o.RingsWithin(o.RingRadius(3) * 1.01)).To(Equal(4))
		Expect(rings.Optics{}.RingsWithin(0.005)).To(Equal(0))
	})

	It("stays within [0, 1] over the default grid", func() {
		g, f := rings.Compute(o, rings.DefaultHalfExtent, 200)

		Expect(f).To(HaveLen(len(g.R)))
		for i := range f {
			Expect(f[i]).To(HaveLen(len(g.R[i])))
			for _, v := range f[i] {
				Expect(v).To(BeNumerically(">=", 0))
				Expect(v).To(BeNumerically("<=", 1))
			}
		}

		st := f.Stats()
		Expect(st.Finite).To(BeTrue())
		Expect(st.Min).To(BeNumerically(">=", 0))
		Expect(st.Max).To(BeNumerically("<=", 1))
		Expect(st.Mean).To(BeNumerically("~", 0.5, 0.15))
	})

	It("propagates a zero wavelength as NaN instead of failing", func() {
		f := rings.ComputeIntensity([][]float64{{0, 0.001}}, 0, o.RLens)

		Expect(math.IsNaN(f[0][0])).To(BeTrue())
		Expect(math.IsNaN(f[0][1])).To(BeTrue())
		Expect(f.Stats().Finite).To(BeFalse())
	})

	It("keeps the input shape for ragged rows", func() {
		f := rings.ComputeIntensity([][]float64{{0, 1e-4, 2e-4}, {3e-4}}, o.Lambda, o.RLens)

		Expect(f).To(HaveLen(2))
		Expect(f[0]).To(HaveLen(3))
		Expect(f[1]).To(HaveLen(1))
	})
})

var _ = Describe("Field.Image", func() {
	It("describes a fixed-range grayscale plot in metres", func() {
		_, f := rings.Compute(rings.DefaultOptics(), 0.005, 10)
		img := f.Image(0.005)

		Expect(img.VMin).To(Equal(0.0))
		Expect(img.VMax).To(Equal(1.0))
		Expect(img.Extent.XMin).To(Equal(-0.005))
		Expect(img.Extent.YMax).To(Equal(0.005))
		Expect(img.Label).To(Equal("Intensity"))
		Expect(img.HideAxes).To(BeTrue())
		Expect(img.Data).To(HaveLen(10))
	})
})

package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/chaoswatch/internal/raster"
)

func renderRun(cfg Config, frames int) []*raster.FrameBuffer {
	s, err := New(cfg)
	Expect(err).NotTo(HaveOccurred())
	out := make([]*raster.FrameBuffer, frames)
	for i := range out {
		out[i] = s.RenderFrame()
	}
	return out
}

var _ = Describe("watch face animation", func() {
	Context("with the demo settings", func() {
		var frames []*raster.FrameBuffer

		BeforeEach(func() {
			frames = renderRun(DefaultConfig(), 30)
		})

		It("produces thirty full-size frames", func() {
			Expect(frames).To(HaveLen(30))
			for _, fb := range frames {
				Expect(fb.Width).To(Equal(200))
				Expect(fb.Height).To(Equal(200))
			}
		})

		It("changes the picture every frame", func() {
			for i := 1; i < len(frames); i++ {
				Expect(frames[i].Equal(frames[i-1])).To(BeFalse(), "frame %d repeats frame %d", i, i-1)
			}
		})

		It("is exactly reproducible", func() {
			again := renderRun(DefaultConfig(), 30)
			for i := range frames {
				Expect(frames[i].Pix).To(Equal(again[i].Pix), "frame %d", i)
			}
		})

		It("keeps ink inside the margin plus the widest stroke", func() {
			for i, fb := range frames {
				Expect(fb.Count(raster.Foreground)).To(BeNumerically(">", 0), "frame %d is blank", i)
				for y := 0; y < fb.Height; y++ {
					for x := 0; x < fb.Width; x++ {
						if fb.IsSet(x, y) {
							Expect(x).To(BeNumerically(">=", 3))
							Expect(x).To(BeNumerically("<=", 197))
							Expect(y).To(BeNumerically(">=", 3))
							Expect(y).To(BeNumerically("<=", 197))
						}
					}
				}
			}
		})
	})

	Context("with a single-point trajectory", func() {
		It("draws only the emphasized block at the center", func() {
			cfg := DefaultConfig()
			cfg.Capacity = 1

			fb := renderRun(cfg, 1)[0]
			Expect(fb.Count(raster.Foreground)).To(Equal(25))
			for y := 98; y <= 102; y++ {
				for x := 98; x <= 102; x++ {
					Expect(fb.IsSet(x, y)).To(BeTrue())
				}
			}
		})
	})

	Context("when the camera has orbited a full turn", func() {
		It("keeps the angle wrapped", func() {
			s, err := New(DefaultConfig())
			Expect(err).NotTo(HaveOccurred())
			for i := 0; i < 32; i++ {
				s.RenderFrame()
			}
			Expect(s.Turns()).To(BeNumerically(">=", 1))
			Expect(s.Angle()).To(And(BeNumerically(">=", 0), BeNumerically("<", 6.283185307179586)))
		})
	})
})

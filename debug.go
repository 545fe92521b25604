package silk

import (
	"fmt"
	"os"
	"time"

	"github.com/chewxy/math32"
)

// debugStats holds per-frame timing and draw metrics.
// Only populated when App.debug is true.
type debugStats struct {
	steps      int
	stepTime   time.Duration
	renderTime time.Duration
	triangles  int
	drawn      int
}

// debugLog prints timing and draw stats to stderr.
func (a *App) debugLog(stats debugStats) {
	if !a.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[silk] frame %d | steps: %d | physics: %v | render: %v\n",
		a.frame, stats.steps, stats.stepTime, stats.renderTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[silk] triangles: %d | drawn: %d | mode: %s\n",
		stats.triangles, stats.drawn, a.mode)
}

// debugCheckCloth warns on stderr about non-finite particle positions, which
// indicate a diverged solve.
func debugCheckCloth(c *Cloth) int {
	bad := 0
	for i := range c.particles {
		p := c.particles[i].Position
		for _, v := range p {
			if math32.IsNaN(v) || math32.Abs(v) > 1e6 {
				bad++
				break
			}
		}
	}
	if bad > 0 {
		_, _ = fmt.Fprintf(os.Stderr, "[silk] warning: %d particles diverged\n", bad)
	}
	return bad
}

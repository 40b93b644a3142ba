// Package histogram implements the three-pass bin/CDF pre-pass consumed
// by the histogram-equalization family of coloring algorithms.
package histogram

import "math"

// Options configures a Precompute call.
type Options struct {
	Bins       int
	ComputeLog bool
}

// Context is the result of a pre-pass: produced once, consumed
// read-only by equalization algorithms during a single apply.
type Context struct {
	Bins         []uint32
	MinIter      float32
	MaxIter      float32
	Range        float32
	EscapedCount uint64
	CDF          []float32 // monotonically non-decreasing, CDF[N-1] == 1 (all 0 if EscapedCount == 0 or every escaped iteration is equal)

	Log *Context // same fields, computed from ln(iter+1); nil if not requested
}

// Precompute runs the three-pass bin/CDF scan over iterations, gated by
// escaped. Both slices must have the same length.
//
// Pass 1 finds [min, max] among escaped pixels and counts them. If no
// pixel escaped, or min == max, a zeroed context with Range = 1 is
// returned (so that bin() never divides by zero). Pass 2 bins each
// escaped iteration into Bins buckets. Pass 3 integrates to a CDF
// normalized by EscapedCount.
func Precompute(iterations []float32, escaped []uint8, opts Options) *Context {
	bins := opts.Bins
	if bins <= 0 {
		bins = 256
	}

	ctx := scan(iterations, escaped, bins, false)
	if opts.ComputeLog {
		ctx.Log = scan(iterations, escaped, bins, true)
	}
	return ctx
}

func scan(iterations []float32, escaped []uint8, bins int, logScale bool) *Context {
	ctx := &Context{
		Bins:  make([]uint32, bins),
		CDF:   make([]float32, bins),
		Range: 1,
	}

	// Pass 1: range and count.
	minIter := float32(math.Inf(1))
	maxIter := float32(math.Inf(-1))
	var count uint64
	for i, e := range escaped {
		if e == 0 {
			continue
		}
		v := transform(iterations[i], logScale)
		if v < minIter {
			minIter = v
		}
		if v > maxIter {
			maxIter = v
		}
		count++
	}

	ctx.EscapedCount = count
	if count == 0 || minIter == maxIter {
		ctx.MinIter, ctx.MaxIter = 0, 0
		return ctx
	}
	ctx.MinIter, ctx.MaxIter = minIter, maxIter
	ctx.Range = maxIter - minIter

	// Pass 2: bin.
	for i, e := range escaped {
		if e == 0 {
			continue
		}
		v := transform(iterations[i], logScale)
		normalized := (v - minIter) / ctx.Range
		bin := int(normalized * float32(bins))
		if bin >= bins {
			bin = bins - 1
		}
		if bin < 0 {
			bin = 0
		}
		ctx.Bins[bin]++
	}

	// Pass 3: CDF.
	var running uint32
	for i, c := range ctx.Bins {
		running += c
		ctx.CDF[i] = float32(running) / float32(count)
	}
	return ctx
}

func transform(iter float32, logScale bool) float32 {
	if !logScale {
		return iter
	}
	return float32(math.Log(float64(iter) + 1))
}

// Bin returns the bucket index iter falls into for this context.
func (c *Context) Bin(iter float32) int {
	if c.Range == 0 {
		return 0
	}
	normalized := (iter - c.MinIter) / c.Range
	bin := int(normalized * float32(len(c.Bins)))
	if bin >= len(c.Bins) {
		bin = len(c.Bins) - 1
	}
	if bin < 0 {
		bin = 0
	}
	return bin
}

// Equalize returns cdf[bin(iter)], 0 when the context is empty.
func (c *Context) Equalize(iter float32) float32 {
	if c.EscapedCount == 0 {
		return 0
	}
	return c.CDF[c.Bin(iter)]
}

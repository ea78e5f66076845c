// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orchestrator

// Sampler decides, for a given completed step index, whether Run should
// invoke the sample callback (§4.9's "every step, every K steps, or on
// demand"). The embedding application supplies the policy; the
// orchestrator special-cases none of them.
type Sampler interface {
	ShouldSample(step int) bool
}

// EveryStepSampler samples after every step.
type EveryStepSampler struct{}

func (EveryStepSampler) ShouldSample(step int) bool { return true }

// EveryKSampler samples every K steps (K<=0 behaves as every step).
type EveryKSampler struct{ K int }

func (s EveryKSampler) ShouldSample(step int) bool {
	k := s.K
	if k <= 0 {
		k = 1
	}
	return step%k == 0
}

// OnDemandSampler never samples automatically; the embedding application
// pulls state from StepRecord.Profiles only when Demand is set true for
// that call, letting it drive sampling from its own event loop.
type OnDemandSampler struct{ Demand func(step int) bool }

func (s OnDemandSampler) ShouldSample(step int) bool {
	if s.Demand == nil {
		return false
	}
	return s.Demand(step)
}

func samplerFor(strategy SampleStrategy, everyK int) Sampler {
	switch strategy {
	case SampleEveryStep:
		return EveryStepSampler{}
	case SampleEveryK:
		return EveryKSampler{K: everyK}
	default:
		return OnDemandSampler{}
	}
}

package provisioning

import (
	"fmt"
	"time"
)

// Pipeline is the fixed, ordered sequence of phases for one deployment run.
// Order encodes dependency: packages before services, rendered config files
// before the processes that read them.
type Pipeline struct {
	Phases []Phase
}

// NewPipeline builds a pipeline from phases in execution order.
func NewPipeline(phases ...Phase) *Pipeline {
	return &Pipeline{Phases: phases}
}

// Run executes all phases sequentially, halting on the first failure. The
// failing phase's name is wrapped into the returned error; already completed
// phases are not rolled back. Re-invoking the pipeline after remediation is
// safe because each phase is idempotent or guards with existence checks.
func (p *Pipeline) Run(ctx *Context) error {
	if err := p.validate(); err != nil {
		return err
	}

	start := time.Now()
	ctx.Observer.Printf("Starting provisioning with %d phases...", len(p.Phases))

	for i, phase := range p.Phases {
		phaseStart := time.Now()
		label := fmt.Sprintf("%s (%d/%d)", phase.Name(), i+1, len(p.Phases))

		LogPhaseStart(ctx.Observer, label)

		if err := phase.Provision(ctx); err != nil {
			LogPhaseFailed(ctx.Observer, label, err)
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		LogPhaseComplete(ctx.Observer, label, time.Since(phaseStart))
		ctx.Observer.Progress("provisioning", i+1, len(p.Phases))
	}

	ctx.Observer.Printf("Provisioning completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}

// validate rejects duplicate phase names; names identify phases in progress
// output and error messages, so they must be unique within a run.
func (p *Pipeline) validate() error {
	seen := make(map[string]bool, len(p.Phases))
	for _, phase := range p.Phases {
		if seen[phase.Name()] {
			return fmt.Errorf("duplicate phase name %q in pipeline", phase.Name())
		}
		seen[phase.Name()] = true
	}
	return nil
}

package usecase

import (
	"context"
	"fmt"
)

// Pipeline runs named stages in order and stops at the first failure.
// The failing stage's name is attached to the error; the wrapped cause
// stays reachable through errors.Is/As.
type Pipeline struct {
	stages []Stage
}

type Stage struct {
	Name string
	Fn   func(context.Context) error
}

func NewPipeline() *Pipeline {
	return &Pipeline{stages: []Stage{}}
}

func (p *Pipeline) AddStage(name string, fn func(context.Context) error) {
	p.stages = append(p.stages, Stage{name, fn})
}

func (p *Pipeline) Execute(ctx context.Context) error {
	for _, stage := range p.stages {
		if err := stage.Fn(ctx); err != nil {
			return fmt.Errorf("stage '%s' failed: %w", stage.Name, err)
		}
	}
	return nil
}

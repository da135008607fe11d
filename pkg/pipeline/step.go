package pipeline

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-mapgen/pkg/pipeline/attribute"
	"github.com/askiada/go-mapgen/pkg/pipeline/generator"
	"github.com/askiada/go-mapgen/pkg/pipeline/model"
	"github.com/askiada/go-mapgen/pkg/pipeline/transformer"
)

// rowFn computes row y of a step output into out.
type rowFn func(y int, out []float64) error

// execute dispatches a step to its implementation. Every implementation builds its full output
// before committing it, so a failing step leaves the store untouched.
func (p *Pipeline) execute(ctx context.Context, store *attribute.Store, info *model.StepInfo, step model.Step) error {
	switch stp := step.(type) {
	case model.CreateAttribute:
		return model.WithField(store.Create(stp.Name, stp.Default), "name")
	case model.GeneratorAdd:
		return p.generatorAdd(ctx, store, info, stp)
	case model.DistortAlongY:
		return p.distortAlongY(ctx, store, info, stp)
	case model.ModifyWithAttribute:
		return p.modifyWithAttribute(ctx, store, info, stp)
	case model.TransformAttribute2d:
		return p.transformAttribute2d(ctx, store, info, stp)
	default:
		return errors.Wrapf(model.ErrUnknownKind, "step %T", step)
	}
}

func (p *Pipeline) generatorAdd(ctx context.Context, store *attribute.Store, info *model.StepInfo, stp model.GeneratorAdd) error {
	gen, err := generator.New(stp.Generator, store.Size())
	if err != nil {
		return model.WithField(err, "generator")
	}

	snaps, err := p.snapshots(store, info)
	if err != nil {
		return err
	}

	target := snaps[0]

	out, err := p.forEachRow(ctx, info, store.Size(), func(y int, row []float64) error {
		gen.GenerateRow(y, row)

		for x := range row {
			row[x] += target.Get(x, y)
		}

		return nil
	})
	if err != nil {
		return err
	}

	return p.commit(store, info, out)
}

func (p *Pipeline) distortAlongY(ctx context.Context, store *attribute.Store, info *model.StepInfo, stp model.DistortAlongY) error {
	gen, err := generator.New(stp.Generator, store.Size())
	if err != nil {
		return model.WithField(err, "generator")
	}

	snaps, err := p.snapshots(store, info)
	if err != nil {
		return err
	}

	sampler := newDistortionSampler(gen, snaps[0])

	out, err := p.forEachRow(ctx, info, store.Size(), sampler.sampleRow)
	if err != nil {
		return err
	}

	return p.commit(store, info, out)
}

func (p *Pipeline) modifyWithAttribute(ctx context.Context, store *attribute.Store, info *model.StepInfo, stp model.ModifyWithAttribute) error {
	snaps, err := p.snapshots(store, info)
	if err != nil {
		return err
	}

	source, target := snaps[0], snaps[1]
	factor := stp.Percentage / 100

	direction := "increase"
	if factor < 0 {
		direction = "decrease"
	}
	p.logger.Debug("modify attribute with attribute", "direction", direction, "source", stp.Source, "target", stp.Target, "factor", factor, "minimum", stp.Minimum)

	out, err := p.forEachRow(ctx, info, store.Size(), func(y int, row []float64) error {
		for x := range row {
			row[x] = math.Max(stp.Minimum, target.Get(x, y)+source.Get(x, y)*factor)
		}

		return nil
	})
	if err != nil {
		return err
	}

	return p.commit(store, info, out)
}

func (p *Pipeline) transformAttribute2d(ctx context.Context, store *attribute.Store, info *model.StepInfo, stp model.TransformAttribute2d) error {
	trf, err := transformer.New(stp.Transformer)
	if err != nil {
		return model.WithField(err, "transformer")
	}

	snaps, err := p.snapshots(store, info)
	if err != nil {
		return err
	}

	source0, source1, target := snaps[0], snaps[1], snaps[2]

	out, err := p.forEachRow(ctx, info, store.Size(), func(y int, row []float64) error {
		for x := range row {
			row[x] = trf.Transform(source0.Get(x, y), source1.Get(x, y), target.Get(x, y))
		}

		return nil
	})
	if err != nil {
		return err
	}

	return p.commit(store, info, out)
}

// snapshots resolves and copies every attribute the step reads, in the order of info.Reads.
func (p *Pipeline) snapshots(store *attribute.Store, info *model.StepInfo) ([]*attribute.Grid, error) {
	snaps := make([]*attribute.Grid, len(info.Reads))

	for i, ref := range info.Reads {
		start := time.Now()

		snap, err := store.Snapshot(ref.Name)
		if err != nil {
			return nil, model.WithField(err, ref.Field)
		}

		for _, hook := range p.hooks {
			err := hook.OnSnapshot(info, ref.Name, time.Since(start))
			if err != nil {
				return nil, errors.Wrap(err, "unable to run snapshot function")
			}
		}

		snaps[i] = snap
	}

	return snaps, nil
}

// forEachRow computes every row of a step output with at most p.workers goroutines. It returns
// on the first error.
func (p *Pipeline) forEachRow(ctx context.Context, info *model.StepInfo, size model.Size, fn rowFn) ([]float64, error) {
	out := make([]float64, size.Area())

	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(p.workers)

	for y := 0; y < size.Height; y++ {
		localY := y
		errGrp.Go(func() error {
			select {
			case <-dCtx.Done():
				return errors.Wrapf(dCtx.Err(), "row %d", localY)
			default:
			}

			start := time.Now()
			row := out[localY*size.Width : (localY+1)*size.Width]

			err := fn(localY, row)
			if err != nil {
				return errors.Wrapf(err, "row %d", localY)
			}

			for _, hook := range p.hooks {
				err := hook.OnRowOutput(info, time.Since(start))
				if err != nil {
					return errors.Wrap(err, "unable to run row output function")
				}
			}

			return nil
		})
	}

	err := errGrp.Wait()
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (p *Pipeline) commit(store *attribute.Store, info *model.StepInfo, values []float64) error {
	return model.WithField(store.Replace(info.Writes.Name, values), info.Writes.Field)
}

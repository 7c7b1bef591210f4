package main

import (
	"flag"
	"fmt"

	"github.com/unixpickle/essentials"
	"go.uber.org/zap"

	"github.com/Faultbox/printsim/internal/config"
	"github.com/Faultbox/printsim/internal/ik"
	"github.com/Faultbox/printsim/internal/logger"
	"github.com/Faultbox/printsim/internal/path"
	"github.com/Faultbox/printsim/internal/scene"
	"github.com/Faultbox/printsim/internal/sim"
	"github.com/Faultbox/printsim/pkg/math"
)

// buildArm creates the bundled printer arm: a fixed base, an upper arm
// rising from the shoulder and a forearm ending in the nozzle effector.
func buildArm() *ik.Skeleton {
	s := ik.NewSkeleton()
	base, err := s.AddBone("Base", ik.NoParent, math.Vec3{}, math.QuatIdentity())
	essentials.Must(err)
	shoulder, err := s.AddBone("Shoulder", base, math.Vec3{Y: 0.3}, math.QuatIdentity())
	essentials.Must(err)
	elbow, err := s.AddBone("Elbow", shoulder, math.Vec3{Y: 0.9}, math.QuatIdentity())
	essentials.Must(err)
	_, err = s.AddBone("Effector", elbow, math.Vec3{X: 0.9}, math.QuatIdentity())
	essentials.Must(err)
	return s
}

func newSolver(cfg *config.Config, skeleton *ik.Skeleton) *ik.TwoBoneSolver {
	chain := ik.Chain{Root: cfg.IK.RootBone, Middle: cfg.IK.MiddleBone, End: cfg.IK.EndBone}
	up := math.Vec3{X: cfg.IK.Up[0], Y: cfg.IK.Up[1], Z: cfg.IK.Up[2]}

	solver, err := ik.NewTwoBoneSolver(skeleton, chain, ik.WithEpsilon(cfg.IK.Epsilon), ik.WithUp(up))
	if err != nil {
		// The path still runs without an arm
		logger.Warn("IK disabled",
			zap.Error(err),
			zap.Strings("bones", skeleton.Names()))
		return nil
	}
	return solver
}

func keyframesFromConfig(cfg *config.Config) []math.Vec3 {
	points := make([]math.Vec3, len(cfg.Path.Keyframes))
	for i, k := range cfg.Path.Keyframes {
		points[i] = math.Vec3{X: k[0], Y: k[1], Z: k[2]}
	}
	return points
}

func keyframesFromModel(model *scene.Model, step int, minDistance float32) []math.Vec3 {
	var vertices []math.Vec3
	model.ForEachWorldVertex(func(v math.Vec3) {
		vertices = append(vertices, v)
	})
	return path.Simplify(path.KeyframesFromVertices(vertices, step), minDistance)
}

func cmdSimulate(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	ticks := fs.Int("ticks", 120, "Number of frames to simulate")
	dt := fs.Float64("dt", 1.0/60, "Frame time in seconds")
	every := fs.Int("every", 20, "Print every Nth frame")
	step := fs.Int("step", 1, "Keep every Nth model vertex as a keyframe")
	minDist := fs.Float64("min-dist", 0.1, "Drop keyframes closer than this")
	if err := fs.Parse(args); err != nil {
		return err
	}

	keyframes := keyframesFromConfig(cfg)
	if fs.NArg() > 0 {
		model, err := loadModel(fs.Args(), "printsim simulate [model.off]")
		if err != nil {
			return err
		}
		keyframes = keyframesFromModel(model, *step, float32(*minDist))
	}

	easing, err := path.ParseEasing(cfg.Path.Easing)
	if err != nil {
		return err
	}

	controller := path.NewController(keyframes, cfg.Path.Speed)
	controller.SetEasing(easing)
	controller.SetPlaying(cfg.Path.Playing)

	solver := newSolver(cfg, buildArm())
	animator := sim.NewArmAnimator(controller, solver)

	logger.Info("simulation started",
		zap.Int("keyframes", len(keyframes)),
		zap.Float32("length", controller.TotalLength()),
		zap.Float32("loop_seconds", controller.LoopDuration()),
		zap.Stringer("easing", easing),
		zap.Bool("ik", animator.HasSolver()))

	fmt.Printf("%6s  %8s  %-26s  %s\n", "frame", "progress", "target", "effector")
	for i := 1; i <= *ticks; i++ {
		target := animator.Tick(float32(*dt))
		if *every > 0 && i%*every != 0 && i != *ticks {
			continue
		}
		effector := "-"
		if solver != nil {
			effector = formatVec(solver.EndPosition())
		}
		fmt.Printf("%6d  %8.4f  %-26s  %s\n", i, controller.Progress(), formatVec(target), effector)
	}

	logger.Info("simulation finished",
		zap.Int("ticks", animator.Ticks()),
		zap.Float32("progress", controller.Progress()))
	return nil
}

func formatVec(v math.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

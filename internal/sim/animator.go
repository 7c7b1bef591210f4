// Package sim drives the printer arm: each tick moves the path target and
// re-solves the arm's inverse kinematics toward it.
package sim

import (
	"github.com/Faultbox/printsim/internal/ik"
	"github.com/Faultbox/printsim/internal/path"
	"github.com/Faultbox/printsim/pkg/math"
)

// Solver poses a chain so its end reaches a target.
type Solver interface {
	Solve(target math.Vec3)
}

// Animator ties a path controller to an IK solver. The host owns it and
// calls Tick once per frame.
type Animator struct {
	controller *path.Controller
	solver     Solver
	ticks      int
}

// NewAnimator creates an animator. solver may be nil, in which case the
// path still advances but no arm is posed.
func NewAnimator(controller *path.Controller, solver Solver) *Animator {
	return &Animator{controller: controller, solver: solver}
}

// NewArmAnimator is NewAnimator with a two-bone solver. A nil solver
// disables posing.
func NewArmAnimator(controller *path.Controller, solver *ik.TwoBoneSolver) *Animator {
	if solver == nil {
		return NewAnimator(controller, nil)
	}
	return NewAnimator(controller, solver)
}

// Tick advances the path by dt seconds and solves toward the new target.
// While paused the current target is solved again, so manual progress
// changes take effect.
func (a *Animator) Tick(dt float32) math.Vec3 {
	a.controller.Advance(dt)
	a.ticks++
	return a.solve()
}

// Scrub jumps to progress p and solves immediately.
func (a *Animator) Scrub(p float32) math.Vec3 {
	a.controller.SetProgress(p)
	return a.solve()
}

func (a *Animator) solve() math.Vec3 {
	target := a.controller.Target()
	if a.solver != nil {
		a.solver.Solve(target)
	}
	return target
}

// Controller returns the path controller.
func (a *Animator) Controller() *path.Controller {
	return a.controller
}

// HasSolver reports whether ticks pose an arm.
func (a *Animator) HasSolver() bool {
	return a.solver != nil
}

// Ticks returns the number of Tick calls so far.
func (a *Animator) Ticks() int {
	return a.ticks
}

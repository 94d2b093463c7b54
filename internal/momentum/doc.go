// Package momentum implements the unified momentum theory for a yawed
// actuator disk: given a thrust loading and yaw angle it solves for the
// self-consistent induction factor and far-wake velocities.
//
// Each model implements the [Model] interface:
//
//   - [LimitedHeck]: closed-form limiting case for v4 << u4, no iteration
//   - [Heck]: iterative coupled-velocity model (an, u4, v4)
//   - [UnifiedMomentum]: adds the near-wake pressure drop (an, u4, v4, dp)
//     with a nonlinear pressure correction from [pressure.Model]
//   - [ThrustBasedUnified]: unified model parameterized by the disk-averaged
//     thrust coefficient, solving Ctprime as a fifth unknown
//
// Inputs and solved variables are [wake.Field] values, so a single call can
// solve one operating point or a full per-annulus radial distribution.
// Non-convergence is advisory: Solve always returns a [Solution] and the
// Converged flag is the failure signal.
package momentum

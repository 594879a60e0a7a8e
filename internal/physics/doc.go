// Package physics implements the force model and integrator for a ball
// bouncing inside a rectangular room.
//
// Forces are penetration-based: a wall exerts no force until the ball
// crosses its boundary, then pushes back with a spring on the penetration
// depth and a damper on the closing velocity. Damping is derived from a
// quality factor, so one knob tunes how long contacts ring. A Coulomb-style
// tension term couples the axes: sliding along one wall is resisted in
// proportion to the contact force on the other axis. A grabbed ball is
// additionally pulled toward the hand by the same spring-damper shape.
//
// Integration is semi-implicit Euler at a fixed substep [Dt]; a frame
// advances by however many substeps its elapsed time rounds to:
//
//	ball = physics.Advance(room, hand, ball, elapsed, maxElapsed)
//
// All forces are applied directly as accelerations: the ball's mass is
// folded into the stiffness and damping constants.
package physics

package orca

import "errors"

// ErrInfeasible is returned by SolveLinearProgram when no velocity in
// the maxSpeed disk satisfies every half-plane. The engine does not
// recover from it; it propagates to the driver.
var ErrInfeasible = errors.New("orca: linear program infeasible")

// Package courier implements the Courier aggregate for the onboarding domain.
// A Courier is the platform actor performing deliveries and the subject of the
// registration lifecycle state machine: created Pending by the registration
// flow, then moved exactly once to Approved or Rejected by an admin decision.
//
// The package provides:
//   - Courier: the aggregate root with identity, lifecycle status, and
//     commercial profile fields
//   - Status: the lifecycle state machine with transition validation
//
// All construction goes through NewCourier or RestoreCourier; zero-value
// instances fail Validate. The aggregate carries an optimistic-concurrency
// version so that concurrent decisions on the same courier cannot both win.
package courier

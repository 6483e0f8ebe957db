// Package model holds the read-only kinematic model and per-step data that
// island.Build consumes. Construction of these structures — assembling the
// Jacobian, running the kinematics pass that fills DofTreeID/BodyTreeID,
// populating the constraint arrays — is owned by the engine; this package
// only defines the shapes island.Build reads, the way lvlath's flow and
// matrix packages read a *core.Graph they never construct themselves.
package model

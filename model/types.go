package model

// EFCType identifies the constraint family a row (or group of consecutive
// rows) belongs to. The concrete values only matter in that island.Build's
// edge collector switches on them to pick a fast path; everything without a
// fast path below falls through to the generic Jacobian-scan path.
type EFCType int32

const (
	EFCJointFriction       EFCType = iota // DoF friction-loss: self-edge at DofTreeID[EFCID]
	EFCJointLimit                         // joint limit: self-edge at DofTreeID[JntDofAdr[EFCID]]
	EFCContactFrictionless                // contact: edge between the two geoms' body trees
	EFCContactPyramidal
	EFCContactElliptic
	EFCEquality          // equality constraint; subtype decides fast path vs. fallback
	EFCTendonFrictionLoss // no fast path: generic Jacobian-scan fallback
	EFCTendonLimit        // no fast path: generic Jacobian-scan fallback
)

// EqType identifies the equality-constraint subtype referenced by
// Model.EqType[EFCID] when EFCType == EFCEquality.
type EqType int32

const (
	EqConnect EqType = iota // fast path: body trees of EqObj1ID/EqObj2ID
	EqWeld                  // fast path: body trees of EqObj1ID/EqObj2ID
	EqJoint                 // no fast path: generic fallback
	EqDistance              // no fast path: generic fallback
)

// Contact describes one active contact pair, identified by the geoms it
// couples. Only the geom ids are needed to resolve the pair's body trees.
type Contact struct {
	Geom1 int32
	Geom2 int32
}

// StaticTree is the sentinel tree id for the worldbody: it has no DoFs and
// folds onto whatever real tree it is paired with in an edge.
const StaticTree int32 = -1

// Model is the read-only kinematic model consumed by island.Build. It is
// assembled once per simulation (or once per test fixture) and never
// mutated by this package.
type Model struct {
	NV    int32 // number of DoFs
	NTree int32 // number of kinematic trees

	NTendon            int32
	TendonNum          []int32 // TendonNum[t]: DoFs spanned by tendon t
	TendonLimited      []bool
	TendonFrictionLoss []bool

	DofTreeID  []int32 // len NV; StaticTree for world DoFs (never present, kept for symmetry)
	BodyTreeID []int32 // len nbody
	GeomBodyID []int32 // len ngeom
	JntDofAdr  []int32 // len njnt

	EqType   []EqType
	EqObj1ID []int32 // body id of first equality endpoint
	EqObj2ID []int32 // body id of second equality endpoint
}

// Data is the per-step input: the active constraint rows and the Jacobian
// assembled for them.
type Data struct {
	NEFC    int32
	EFCType []EFCType
	EFCID   []int32

	Jacobian Jacobian

	NCon     int32
	NE       int32
	NF       int32 // joint-friction rows, one self-edge each
	NL       int32 // joint-limit rows, one self-edge each
	Contacts []Contact
}

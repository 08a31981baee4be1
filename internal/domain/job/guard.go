package job

// Operation names a mutating action on a job.
type Operation string

const (
	OpCreate Operation = "create"
	OpLike   Operation = "like"
	OpApply  Operation = "apply"
	OpDelete Operation = "delete"
)

// Authorize decides whether actor may perform op on j. It has no side effects
// and must be called before any mutation is applied. j is ignored for
// operations that do not depend on ownership.
func Authorize(actor ActorID, j Job, op Operation) error {
	if actor.IsZero() {
		return ErrUnauthenticated
	}

	switch op {
	case OpCreate, OpLike, OpApply:
		return nil
	case OpDelete:
		if j.CreatedBy != actor {
			return ErrForbidden
		}
		return nil
	default:
		return ErrForbidden
	}
}

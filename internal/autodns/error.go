package autodns

type _error string

func (e _error) Error() string { return string(e) }

const (
	// ErrInstanceNotFound is reported when the compute provider has no
	// record of the requested instance.
	ErrInstanceNotFound _error = "instance not found"

	// ErrRecordMismatch is reported during deletion when the nearest
	// record in the zone is not the one being deleted. Acting on it
	// anyway would destroy an unrelated name.
	ErrRecordMismatch _error = "record mismatch"
)

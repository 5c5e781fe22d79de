package jogfile

// Validate rejects any task that can never be reached because an earlier
// same-named task in the same file always matches first.
func Validate(path string, tasks []*Task) error {
	for j := 1; j < len(tasks); j++ {
		for i := 0; i < j; i++ {
			a, b := tasks[i], tasks[j]
			if a.Name != b.Name || !redundantFor(a, b) {
				continue
			}
			return Errorf(ErrValidation, path, b.Line,
				"redundant definition for '%s', already covered by %s:%d", a.Name, path, a.Line)
		}
	}
	return nil
}

// redundantFor reports whether every call matching b already matches a.
func redundantFor(a, b *Task) bool {
	switch {
	case a.Rest:
		return len(a.Params) <= len(b.Params)
	case b.Rest:
		return false
	default:
		return len(a.Params) == len(b.Params)
	}
}

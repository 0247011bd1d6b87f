package slice

// Map applies f to every element of s.
func Map[T, U any](s []T, f func(T) U) []U {
	if s == nil {
		return nil
	}
	result := make([]U, 0, len(s))
	for _, v := range s {
		result = append(result, f(v))
	}
	return result
}

// Has reports whether v is an element of s.
func Has[T comparable](s []T, v T) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

package utils

func StringIn(s string, options []string) bool {
	for _, o := range options {
		if s == o {
			return true
		}
	}
	return false
}

func IfThenElse(condition bool, then string, otherwise string) string {
	if condition {
		return then
	}
	return otherwise
}

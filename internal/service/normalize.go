package service

import "strings"

// normalizeStatus upper-cases status text so stored values compare exactly.
func normalizeStatus(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// optionalText trims s and maps blank input to nil.
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

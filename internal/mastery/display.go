package mastery

// StatusDisplayName returns the Arabic label for a status.
func StatusDisplayName(s Status) string {
	switch s {
	case StatusLocked:
		return "مقفل"
	case StatusAvailable:
		return "متاح"
	case StatusInProgress:
		return "جاري"
	case StatusMastered:
		return "متقن"
	default:
		return string(s)
	}
}

// StatusIcon returns a single-glyph marker for a status.
func StatusIcon(s Status) string {
	switch s {
	case StatusLocked:
		return "🔒"
	case StatusAvailable:
		return "○"
	case StatusInProgress:
		return "◐"
	case StatusMastered:
		return "●"
	default:
		return "?"
	}
}

package strength

// Оценки времени подбора.
const (
	crackInstant   = "instantly"
	crackSeconds   = "a few seconds"
	crackMinutes   = "a few minutes"
	crackHours     = "a few hours"
	crackDays      = "a few days"
	crackMonths    = "several months"
	crackYears     = "several years"
	crackDecades   = "decades"
	crackCenturies = "centuries"
)

// crackTime - грубая таблица по категории, длине и наличию всех классов символов.
func crackTime(label Label, length int, allClasses bool) string {
	switch label {
	case VeryWeak:
		if length < 6 {
			return crackInstant
		}
		return crackSeconds
	case Weak:
		if length >= 10 {
			return crackHours
		}
		return crackMinutes
	case Moderate:
		if length >= 12 || allClasses {
			return crackMonths
		}
		return crackDays
	case Strong:
		if allClasses && length >= 14 {
			return crackDecades
		}
		return crackYears
	default:
		if allClasses && length >= 16 {
			return crackCenturies
		}
		return crackDecades
	}
}

func suggestions(c Checklist) []string {
	out := []string{}
	if !c.Length {
		out = append(out, "Use at least 8 characters")
	}
	if !c.Uppercase {
		out = append(out, "Add uppercase letters")
	}
	if !c.Lowercase {
		out = append(out, "Add lowercase letters")
	}
	if !c.Numbers {
		out = append(out, "Add numbers")
	}
	if !c.Symbols {
		out = append(out, "Add symbols")
	}
	if !c.NoCommonWords {
		out = append(out, "Avoid common passwords and words")
	}
	if !c.NoSequential {
		out = append(out, "Avoid sequences like abc, 123 or qwerty")
	}
	if !c.NoRepeated {
		out = append(out, "Avoid repeating the same character")
	}
	return out
}

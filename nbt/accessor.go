package nbt

// AsNumber widens any integer or floating point tag to float64.
// Non-numeric and nil tags yield 0.
func AsNumber(t Tag) float64 {
	switch v := t.(type) {
	case Byte:
		return float64(v)
	case Short:
		return float64(v)
	case Int:
		return float64(v)
	case Long:
		return float64(v)
	case Float:
		return float64(v)
	case Double:
		return float64(v)
	default:
		return 0
	}
}

// AsString returns the payload of a String tag, or "" for any other tag.
func AsString(t Tag) string {
	if s, ok := t.(String); ok {
		return string(s)
	}

	return ""
}

// Get resolves key through a Compound tag. Any other tag, or a missing key,
// yields false.
func Get(t Tag, key string) (Tag, bool) {
	c, ok := t.(*Compound)
	if !ok {
		return nil, false
	}

	return c.Get(key)
}

// IsNumber reports whether t is an integer or floating point scalar.
func IsNumber(t Tag) bool {
	return t != nil && t.Type().IsNumeric()
}

package jump

// DefaultAlphabet lists label characters in order of preference, home
// row first.
const DefaultAlphabet = "fjdkslaghrueiwoqptyvncmxzb1234567890"

// Allocate generates the label pool for count matches of a key of
// keyLength characters.
//
// The label length is the smallest L >= 1 with len(alphabet)^L >= count,
// capped at min(keyLength, len(alphabet)) so a label is never longer than
// the key the user already typed. When the cap bites, fewer labels than
// matches are returned. Labels come out in order of preference: a
// mixed-radix count over the alphabet, most significant position first.
func Allocate(keyLength, count int, alphabet string) ([]string, int) {
	chars := []rune(alphabet)
	base := len(chars)
	length := labelLength(keyLength, count, base)
	if count <= 0 || base == 0 {
		return nil, length
	}

	n := capacity(base, length, count)
	labels := make([]string, n)
	for i := range labels {
		labels[i] = labelAt(i, length, chars)
	}
	return labels, length
}

// LabelAt returns the i-th label of the given length over alphabet.
func LabelAt(i, length int, alphabet string) string {
	return labelAt(i, length, []rune(alphabet))
}

func labelAt(i, length int, chars []rune) string {
	base := len(chars)
	buf := make([]rune, length)
	for pos := length - 1; pos >= 0; pos-- {
		buf[pos] = chars[i%base]
		i /= base
	}
	return string(buf)
}

func labelLength(keyLength, count, base int) int {
	limit := min(keyLength, base)
	length := 1
	for length < limit && capacity(base, length, count) < count {
		length++
	}
	return length
}

// capacity returns min(base^length, ceiling) without overflowing.
func capacity(base, length, ceiling int) int {
	c := 1
	for range length {
		c *= base
		if c >= ceiling {
			return ceiling
		}
	}
	return c
}

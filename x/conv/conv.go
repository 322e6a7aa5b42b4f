// Package conv renders integers into caller-owned buffers without fmt or
// strconv, so console lines can be built without allocating.
package conv

// MaxDigits fits any int64 or uint64 including a sign.
const MaxDigits = 20

// AppendUint appends the decimal form of n to dst.
func AppendUint(dst []byte, n uint64) []byte {
	var tmp [MaxDigits]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	return append(dst, tmp[i:]...)
}

// AppendInt appends the decimal form of n to dst, with a leading '-' when
// negative. MinInt64 is handled through its unsigned magnitude.
func AppendInt(dst []byte, n int64) []byte {
	if n < 0 {
		return AppendUint(append(dst, '-'), uint64(-(n+1))+1)
	}
	return AppendUint(dst, uint64(n))
}

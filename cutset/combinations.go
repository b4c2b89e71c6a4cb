package cutset

import "strconv"

// combinations calls fn with every k-subset of [0, n) in lexicographic
// order. The slice passed to fn is reused; copy it to retain it.
func combinations(n, k int, fn func(idx []int)) {
	if k < 1 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// comboKey renders ascending positions as a map key.
func comboKey(idx []int) string {
	buf := make([]byte, 0, len(idx)*3)
	for i, x := range idx {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(x), 10)
	}

	return string(buf)
}

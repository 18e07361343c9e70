package utils

type Index []int

func (I Index) Equals(J Index) bool {
	if len(I) != len(J) {
		return false
	}
	for i, val := range I {
		if J[i] != val {
			return false
		}
	}
	return true
}

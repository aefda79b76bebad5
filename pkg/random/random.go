package random

import (
	"crypto/rand"
	"math/big"
)

// float53 — знаменатель для равномерного float64 из 53 случайных бит
const float53 = 1 << 53

// IntN возвращает криптографически случайное число в [0, n)
func IntN(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// Float64 возвращает криптографически случайное число в [0, 1)
func Float64() (float64, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(float53))
	if err != nil {
		return 0, err
	}
	return float64(v.Int64()) / float53, nil
}

// Shuffle перемешивает слайс строк по Фишеру-Йетсу
func Shuffle(items []string) error {
	for i := len(items) - 1; i > 0; i-- {
		j, err := IntN(i + 1)
		if err != nil {
			return err
		}
		items[i], items[j] = items[j], items[i]
	}
	return nil
}

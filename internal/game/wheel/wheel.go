package wheel

import (
	"log"

	"campus_market/pkg/random"
)

// Segment - сегмент колеса. Вес задает вероятность выбора и не связан
// с долей сегмента на отрисованном круге - та чисто косметическая
type Segment struct {
	Multiplier int
	Weight     float64
}

// segments - фиксированная таблица из 16 сегментов в порядке отрисовки.
// Вероятность сегмента = Weight / totalWeight. Таблица - константа игры:
// менять ее нельзя, иначе поплывет заявленное матожидание.
// Джекпот x100 - вес 0.15 из 200, примерно 0.075%
var segments = [16]Segment{
	{Multiplier: 1, Weight: 25},
	{Multiplier: 2, Weight: 5},
	{Multiplier: 1, Weight: 25},
	{Multiplier: 5, Weight: 1.5},
	{Multiplier: 1, Weight: 25},
	{Multiplier: 2, Weight: 5},
	{Multiplier: 1, Weight: 25},
	{Multiplier: 10, Weight: 1.35},
	{Multiplier: 1, Weight: 25},
	{Multiplier: 2, Weight: 5},
	{Multiplier: 1, Weight: 25},
	{Multiplier: 5, Weight: 1.5},
	{Multiplier: 2, Weight: 5},
	{Multiplier: 100, Weight: 0.15},
	{Multiplier: 1, Weight: 25},
	{Multiplier: 50, Weight: 0.5},
}

// totalWeight - сумма весов всех сегментов
var totalWeight = func() float64 {
	var sum float64
	for _, s := range segments {
		sum += s.Weight
	}
	return sum
}()

// Segments возвращает копию таблицы сегментов
func Segments() [16]Segment {
	return segments
}

// TotalWeight возвращает сумму весов
func TotalWeight() float64 {
	return totalWeight
}

// Select выбирает сегмент одним криптографическим розыгрышем:
// равномерное число масштабируется на сумму весов и идет обход
// накопленных весов в фиксированном порядке
func Select() (int, Segment, error) {
	u, err := random.Float64()
	if err != nil {
		return 0, Segment{}, err
	}
	draw := u * totalWeight

	var cum float64
	for i, s := range segments {
		cum += s.Weight
		if cum >= draw {
			return i, s, nil
		}
	}

	// Сюда попадать не должны: страховка от накопленной ошибки float
	log.Printf("wheel: cumulative walk exhausted, draw=%f total=%f", draw, totalWeight)
	return 0, segments[0], nil
}

// Payout считает выплату: ставка умножается на множитель сегмента.
// Множитель 1 - возврат ставки, выигрышем не считается
func Payout(stake, multiplier int) int {
	return stake * multiplier
}

// IsWin отмечает сегмент как выигрышный для классификации результата
func IsWin(multiplier int) bool {
	return multiplier > 1
}

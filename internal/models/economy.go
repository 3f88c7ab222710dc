package models

// Economy represents a named virtual currency. Names are unique ignoring
// case, enforced by a functional index the store creates on lower(name).
// Every new account of an economy starts at StartValue; the multipliers are
// optional scaling factors for increments and decrements (default 1.0).
type Economy struct {
	ID                 uint    `gorm:"primarykey" json:"id"`
	Name               string  `gorm:"not null" json:"name"`
	StartValue         float64 `gorm:"not null" json:"start_value"`
	IncreaseMultiplier float64 `gorm:"not null;default:1" json:"increase_multiplier"`
	DecreaseMultiplier float64 `gorm:"not null;default:1" json:"decrease_multiplier"`
}

func (Economy) TableName() string {
	return "economy_economies"
}

// IncreaseByMultiplier scales an increment by the economy's increase
// multiplier.
func (e Economy) IncreaseByMultiplier(amount float64) float64 {
	return amount * e.IncreaseMultiplier
}

// DecreaseByMultiplier scales a decrement by the economy's decrease
// multiplier.
func (e Economy) DecreaseByMultiplier(amount float64) float64 {
	return amount * e.DecreaseMultiplier
}

package component

// Life — запас здоровья. Health < 0 означает смерть.
type Life struct {
	Health float32
}

// Weapon — ограничитель скорострельности.
type Weapon struct {
	Repeat float32 // Минимальный интервал между выстрелами, сек
	Last   float32 // Время последнего выстрела (по часам симуляции)
}

// Ready сообщает, можно ли стрелять в момент now.
func (w *Weapon) Ready(now float32) bool {
	return now-w.Last >= w.Repeat
}

// SelfDamage — урон самому себе в секунду (время жизни снарядов).
type SelfDamage struct {
	Damage float32
}

// ContactDamage — урон при касании.
// Once: сущность удаляется после первого же попадания.
type ContactDamage struct {
	Damage float32
	Once   bool
}

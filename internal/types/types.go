// internal/types/types.go
package types

// EntityID — непрозрачный идентификатор сущности.
// Ноль зарезервирован под "нет сущности".
type EntityID uint64

// None — пустой идентификатор (например, Spawner без привязки).
const None EntityID = 0

// IsNone сообщает, что идентификатор не указывает ни на какую сущность.
func (id EntityID) IsNone() bool {
	return id == None
}

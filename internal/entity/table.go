package entity

import (
	"fmt"

	"go-space-shooter/internal/types"
)

// storage — то, что ECS умеет делать с любой таблицей без знания типа.
type storage interface {
	Remove(id types.EntityID)
	Has(id types.EntityID) bool
	Len() int
	Clear()
}

// Table хранит компоненты одного типа в порядке добавления:
// плотный срез значений плюс разреженный индекс id -> позиция.
//
// Указатели, возвращённые Get и Each, живут до следующего структурного
// изменения таблицы (добавление нового id, удаление, Clear).
type Table[T any] struct {
	name      string
	index     map[types.EntityID]int
	ids       []types.EntityID
	data      []T
	iterating int
}

// NewTable создаёт пустую таблицу. name нужен только для сообщений об ошибках.
func NewTable[T any](name string) *Table[T] {
	return &Table[T]{
		name:  name,
		index: make(map[types.EntityID]int, 64),
		ids:   make([]types.EntityID, 0, 64),
		data:  make([]T, 0, 64),
	}
}

// Set прикрепляет компонент к сущности или перезаписывает существующий.
func (t *Table[T]) Set(id types.EntityID, value T) {
	if i, ok := t.index[id]; ok {
		t.data[i] = value
		return
	}
	t.guard("insert")
	t.index[id] = len(t.ids)
	t.ids = append(t.ids, id)
	t.data = append(t.data, value)
}

// Get возвращает компонент сущности. Отсутствие — нормальный исход, не ошибка.
func (t *Table[T]) Get(id types.EntityID) (*T, bool) {
	i, ok := t.index[id]
	if !ok {
		return nil, false
	}
	return &t.data[i], true
}

// Has проверяет наличие компонента.
func (t *Table[T]) Has(id types.EntityID) bool {
	_, ok := t.index[id]
	return ok
}

// Remove удаляет компонент, сохраняя порядок остальных.
func (t *Table[T]) Remove(id types.EntityID) {
	i, ok := t.index[id]
	if !ok {
		return
	}
	t.guard("remove")
	copy(t.ids[i:], t.ids[i+1:])
	copy(t.data[i:], t.data[i+1:])
	last := len(t.ids) - 1
	var zero T
	t.data[last] = zero
	t.ids = t.ids[:last]
	t.data = t.data[:last]
	delete(t.index, id)
	for j := i; j < last; j++ {
		t.index[t.ids[j]] = j
	}
}

// Len — количество компонентов в таблице.
func (t *Table[T]) Len() int {
	return len(t.ids)
}

// Clear удаляет все компоненты.
func (t *Table[T]) Clear() {
	t.guard("clear")
	clear(t.index)
	var zero T
	for i := range t.data {
		t.data[i] = zero
	}
	t.ids = t.ids[:0]
	t.data = t.data[:0]
}

// IDs возвращает копию списка сущностей в порядке добавления.
func (t *Table[T]) IDs() []types.EntityID {
	out := make([]types.EntityID, len(t.ids))
	copy(out, t.ids)
	return out
}

// Each обходит таблицу в порядке добавления. Во время обхода
// структурные изменения этой таблицы запрещены; значения менять можно.
func (t *Table[T]) Each(fn func(types.EntityID, *T)) {
	t.iterating++
	defer func() { t.iterating-- }()
	for i := 0; i < len(t.ids); i++ {
		fn(t.ids[i], &t.data[i])
	}
}

func (t *Table[T]) guard(op string) {
	if t.iterating > 0 {
		panic(fmt.Sprintf("entity: %s on table %q during iteration; queue it and apply after the pass", op, t.name))
	}
}

package entity

import "go-space-shooter/internal/types"

// Each2 обходит сущности, у которых есть оба компонента.
// Порядок — порядок добавления в первую таблицу.
func Each2[A, B any](ta *Table[A], tb *Table[B], fn func(types.EntityID, *A, *B)) {
	ta.Each(func(id types.EntityID, a *A) {
		if b, ok := tb.Get(id); ok {
			fn(id, a, b)
		}
	})
}

// Each3 обходит сущности с тремя компонентами.
func Each3[A, B, C any](ta *Table[A], tb *Table[B], tc *Table[C], fn func(types.EntityID, *A, *B, *C)) {
	ta.Each(func(id types.EntityID, a *A) {
		b, ok := tb.Get(id)
		if !ok {
			return
		}
		if c, ok := tc.Get(id); ok {
			fn(id, a, b, c)
		}
	})
}

// Each4 обходит сущности с четырьмя компонентами.
func Each4[A, B, C, D any](ta *Table[A], tb *Table[B], tc *Table[C], td *Table[D], fn func(types.EntityID, *A, *B, *C, *D)) {
	ta.Each(func(id types.EntityID, a *A) {
		b, ok := tb.Get(id)
		if !ok {
			return
		}
		c, ok := tc.Get(id)
		if !ok {
			return
		}
		if d, ok := td.Get(id); ok {
			fn(id, a, b, c, d)
		}
	})
}

// Cursor2 — "вытягивающий" итератор по паре таблиц. В отличие от Each2
// позволяет прерваться и продолжить с той же позиции, что нужно рендеру
// при разбиении отрисовки на несколько проходов.
//
// Пока курсор жив, таблицы не должны структурно меняться.
type Cursor2[A, B any] struct {
	ta  *Table[A]
	tb  *Table[B]
	pos int
}

// NewCursor2 создаёт курсор в начале первой таблицы.
func NewCursor2[A, B any](ta *Table[A], tb *Table[B]) *Cursor2[A, B] {
	return &Cursor2[A, B]{ta: ta, tb: tb}
}

// Next возвращает следующую пару компонентов или ok=false, если пар больше нет.
func (c *Cursor2[A, B]) Next() (types.EntityID, *A, *B, bool) {
	for c.pos < len(c.ta.ids) {
		i := c.pos
		c.pos++
		id := c.ta.ids[i]
		if b, ok := c.tb.Get(id); ok {
			return id, &c.ta.data[i], b, true
		}
	}
	return types.None, nil, nil, false
}

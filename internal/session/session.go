// internal/session/session.go
package session

import "github.com/google/uuid"

// Session — счёт текущей игры. Сбрасывается при рестарте.
type Session struct {
	ID    uuid.UUID
	Score int
}

func New() *Session {
	return &Session{ID: uuid.New()}
}

// Add прибавляет очки. Отрицательные значения игнорируются: счёт не убывает в течение игры.
func (s *Session) Add(points int) {
	if points > 0 {
		s.Score += points
	}
}

// Clear обнуляет счёт и начинает новую сессию с новым идентификатором.
func (s *Session) Clear() {
	s.Score = 0
	s.ID = uuid.New()
}

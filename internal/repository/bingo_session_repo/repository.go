package bingo_session_repo

import (
	"sync"

	"campus_market/internal/model"
	"campus_market/internal/repository"
)

// Хранилище активных раундов бинго. Одна сессия на пользователя,
// живет только в памяти процесса - раунд короткий, переживать рестарт не обязан
type SessionRepo struct {
	mtx      sync.RWMutex
	sessions map[int]*model.BingoSession
}

func NewBingoSessionRepository() repository.BingoSessionRepository {
	return &SessionRepo{
		sessions: make(map[int]*model.BingoSession),
	}
}

// Get возвращает копию сессии пользователя
func (r *SessionRepo) Get(userID int) (*model.BingoSession, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	s, ok := r.sessions[userID]
	if !ok {
		return nil, false
	}

	cp := *s
	cp.CallSeq = append([]string(nil), s.CallSeq...)
	return &cp, true
}

// Save сохраняет сессию пользователя, перезаписывая прежнюю
func (r *SessionRepo) Save(session *model.BingoSession) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.sessions[session.UserID] = session
}

// Delete закрывает сессию пользователя
func (r *SessionRepo) Delete(userID int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	delete(r.sessions, userID)
}

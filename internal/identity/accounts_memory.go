package identity

import (
	"context"
	"sync"
	"time"
)

// MemoryAccountManager хранит учетные записи в памяти.
// Используется в development без сервисного аккаунта и в тестах.
type MemoryAccountManager struct {
	mu        sync.RWMutex
	users     map[string]*UserRecord
	passwords map[string]string
}

func NewMemoryAccountManager(users ...UserRecord) *MemoryAccountManager {
	m := &MemoryAccountManager{
		users:     make(map[string]*UserRecord),
		passwords: make(map[string]string),
	}
	for _, u := range users {
		m.Put(u)
	}
	return m
}

// Put добавляет или заменяет учетную запись
func (m *MemoryAccountManager) Put(u UserRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	rec := u
	m.users[u.UID] = &rec
}

func (m *MemoryAccountManager) GetUser(_ context.Context, uid string) (*UserRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[uid]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *MemoryAccountManager) UpdateUser(_ context.Context, uid string, update UserUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[uid]
	if !ok {
		return ErrUserNotFound
	}
	if update.DisplayName != nil {
		u.DisplayName = *update.DisplayName
	}
	if update.PhotoURL != nil {
		u.PhotoURL = *update.PhotoURL
	}
	if update.Password != nil {
		m.passwords[uid] = *update.Password
	}
	if update.Disabled != nil {
		u.Disabled = *update.Disabled
	}
	return nil
}

func (m *MemoryAccountManager) DeleteUser(_ context.Context, uid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[uid]; !ok {
		return ErrUserNotFound
	}
	delete(m.users, uid)
	return nil
}

// Exists - есть ли учетная запись (для тестов)
func (m *MemoryAccountManager) Exists(uid string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.users[uid]
	return ok
}

// PasswordOf возвращает последний выставленный пароль
func (m *MemoryAccountManager) PasswordOf(uid string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.passwords[uid]
	return p, ok
}

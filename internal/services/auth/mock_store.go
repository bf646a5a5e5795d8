package auth

// MockStore is an in-memory auth store for testing.
type MockStore struct {
	tokens map[string]string
	reads  int
}

func NewMockStore() *MockStore {
	return &MockStore{tokens: make(map[string]string)}
}

func (m *MockStore) SetToken(entry string, token string) error {
	m.tokens[NormalizeEntry(entry)] = token
	return nil
}

func (m *MockStore) GetToken(entry string) (string, error) {
	m.reads++
	token, ok := m.tokens[NormalizeEntry(entry)]
	if !ok {
		return "", ErrTokenNotFound
	}
	return token, nil
}

func (m *MockStore) DeleteToken(entry string) error {
	key := NormalizeEntry(entry)
	if _, ok := m.tokens[key]; !ok {
		return ErrTokenNotFound
	}
	delete(m.tokens, key)
	return nil
}

// Reads returns how many GetToken calls the store has served.
func (m *MockStore) Reads() int { return m.reads }

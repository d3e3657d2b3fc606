package reports

import "sync"

// MockStore is a mock implementation of the ReportStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	SaveFunc   func(report *Report) error
	GetFunc    func(id string) (*Report, error)
	ListFunc   func(teamID string, limit int) ([]Summary, error)
	DeleteFunc func(id string) error

	// Call records
	SaveCalls   []*Report
	GetCalls    []string
	ListCalls   []ListCall
	DeleteCalls []string
}

// ListCall records the arguments of one List call.
type ListCall struct {
	TeamID string
	Limit  int
}

// NewMockStore creates a new mock instance.
func NewMockStore() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls = nil
	m.GetCalls = nil
	m.ListCalls = nil
	m.DeleteCalls = nil
}

func (m *MockStore) Save(report *Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls = append(m.SaveCalls, report)
	if m.SaveFunc != nil {
		return m.SaveFunc(report)
	}
	return nil
}

func (m *MockStore) Get(id string) (*Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls = append(m.GetCalls, id)
	if m.GetFunc != nil {
		return m.GetFunc(id)
	}
	return nil, ErrNotFound
}

func (m *MockStore) List(teamID string, limit int) ([]Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls = append(m.ListCalls, ListCall{TeamID: teamID, Limit: limit})
	if m.ListFunc != nil {
		return m.ListFunc(teamID, limit)
	}
	return []Summary{}, nil
}

func (m *MockStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

package progress

// MemStore is an in-memory Store for tests.
type MemStore struct {
	Records   map[string]*Record
	SaveCount int
	SaveErr   error // returned by Save when set, without committing
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{Records: make(map[string]*Record)}
}

func (s *MemStore) Load() (map[string]*Record, error) {
	out := make(map[string]*Record, len(s.Records))
	for name, rec := range s.Records {
		out[name] = rec.Clone()
	}
	return out, nil
}

func (s *MemStore) Save(records map[string]*Record) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	out := make(map[string]*Record, len(records))
	for name, rec := range records {
		out[name] = rec.Clone()
	}
	s.Records = out
	s.SaveCount++
	return nil
}

package store

// MemKV is an in-memory key-value store used by no-save runs and tests.
// Nothing survives the process.
type MemKV struct {
	values map[string]string
}

func NewMemKV() *MemKV {
	return &MemKV{values: make(map[string]string)}
}

func (s *MemKV) Get(key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemKV) Set(key, value string) error {
	s.values[key] = value
	return nil
}

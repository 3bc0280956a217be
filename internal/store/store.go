package store

type Store interface {
	Job() Job
	Close() error
}

// DataStore keeps all state in process memory. Records live for the
// process lifetime unless the reaper evicts them.
type DataStore struct {
	job Job
}

func NewStore() Store {
	return &DataStore{
		job: NewJobStore(),
	}
}

func (s *DataStore) Job() Job {
	return s.job
}

func (s *DataStore) Close() error {
	return nil
}

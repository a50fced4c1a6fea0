package fleet

// Registry holds the driver records of a single run, keyed by normalized name.
// It is not safe for concurrent use; callers merge into it from one goroutine.
type Registry struct {
	records map[string]*DriverRecord
	order   []string
}

func NewRegistry() *Registry {
	return &Registry{
		records: map[string]*DriverRecord{},
	}
}

func (r *Registry) Get(key string) *DriverRecord {
	return r.records[key]
}

// GetOrCreate returns the record for key, creating it with displayName if it is new.
// The display name of an existing record is never replaced.
func (r *Registry) GetOrCreate(key string, displayName string) *DriverRecord {
	if record, exists := r.records[key]; exists {
		return record
	}

	record := NewDriverRecord(key, displayName)
	r.records[key] = record
	r.order = append(r.order, key)

	return record
}

func (r *Registry) Apply(observation Observation) *DriverRecord {
	record := r.GetOrCreate(observation.Key, observation.DisplayName)
	record.Observe(observation.Event)

	return record
}

// Records returns every record in the order it was first created
func (r *Registry) Records() []*DriverRecord {
	records := make([]*DriverRecord, 0, len(r.order))
	for _, key := range r.order {
		records = append(records, r.records[key])
	}

	return records
}

func (r *Registry) Len() int {
	return len(r.order)
}

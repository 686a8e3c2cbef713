package runner

import (
	"errors"
	"testing"

	"github.com/vovakirdan/spike-runner/internal/core"
)

// memKV is an in-memory core.KV with switchable failures.
type memKV struct {
	vals   map[string]int
	getErr error
	setErr error
}

func newMemKV() *memKV {
	return &memKV{vals: make(map[string]int)}
}

func (m *memKV) GetInt(key string) (int, error) {
	if m.getErr != nil {
		return 0, m.getErr
	}
	return m.vals[key], nil
}

func (m *memKV) SetInt(key string, value int) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.vals[key] = value
	return nil
}

var _ core.KV = (*memKV)(nil)

func TestLoadRecords(t *testing.T) {
	tests := []struct {
		name     string
		vals     map[string]int
		getErr   error
		expected Records
	}{
		{"empty store", nil, nil, Records{}},
		{"stored values", map[string]int{KeyDeaths: 7, KeyRecord: 64}, nil, Records{Deaths: 7, Record: 64}},
		{"negative values", map[string]int{KeyDeaths: -3, KeyRecord: -1}, nil, Records{}},
		{"record above 100", map[string]int{KeyRecord: 250}, nil, Records{Record: 100}},
		{"read failure", map[string]int{KeyDeaths: 7}, errors.New("disk on fire"), Records{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kv := newMemKV()
			for k, v := range tc.vals {
				kv.vals[k] = v
			}
			kv.getErr = tc.getErr

			if got := LoadRecords(kv); got != tc.expected {
				t.Errorf("LoadRecords() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestLoadRecordsNilStore(t *testing.T) {
	if got := LoadRecords(nil); got != (Records{}) {
		t.Errorf("LoadRecords(nil) = %+v, expected zero", got)
	}
}

func TestSaveRecords(t *testing.T) {
	kv := newMemKV()
	if err := SaveRecords(kv, Records{Deaths: 3, Record: 88}); err != nil {
		t.Fatalf("SaveRecords failed: %v", err)
	}
	if kv.vals[KeyDeaths] != 3 || kv.vals[KeyRecord] != 88 {
		t.Errorf("stored = %v", kv.vals)
	}
	if got := LoadRecords(kv); got != (Records{Deaths: 3, Record: 88}) {
		t.Errorf("round trip = %+v", got)
	}

	errFull := errors.New("store full")
	kv.setErr = errFull
	if err := SaveRecords(kv, Records{Deaths: 4}); !errors.Is(err, errFull) {
		t.Errorf("expected wrapped store error, got %v", err)
	}

	if err := SaveRecords(nil, Records{Deaths: 1}); err != nil {
		t.Errorf("SaveRecords(nil) = %v, expected nil", err)
	}
}

func TestRecordsFromOutcome(t *testing.T) {
	out := core.Outcome{Kind: core.OutcomeDeath, Score: 12, Deaths: 9, Record: 40}
	if got := RecordsFromOutcome(out); got != (Records{Deaths: 9, Record: 40}) {
		t.Errorf("RecordsFromOutcome() = %+v", got)
	}
}

// memCounters adds the atomic counter operations to memKV.
type memCounters struct {
	*memKV
}

func (m memCounters) IncrInt(key string, delta int) (int, error) {
	if m.setErr != nil {
		return 0, m.setErr
	}
	m.vals[key] += delta
	return m.vals[key], nil
}

func (m memCounters) MaxInt(key string, value int) (int, error) {
	if m.setErr != nil {
		return 0, m.setErr
	}
	m.vals[key] = max(m.vals[key], value)
	return m.vals[key], nil
}

var _ core.Counters = memCounters{}

func TestSaveOutcome(t *testing.T) {
	death := func(score, deaths, record int) core.Outcome {
		return core.Outcome{Kind: core.OutcomeDeath, Score: score, Deaths: deaths, Record: record}
	}
	complete := core.Outcome{Kind: core.OutcomeComplete, Score: 100, Deaths: 0, Record: 100}

	tests := []struct {
		name     string
		stored   map[string]int
		outcome  core.Outcome
		expected Records
	}{
		{"empty store", nil, death(30, 1, 30), Records{Deaths: 1, Record: 30}},
		{"stale session keeps record", map[string]int{KeyDeaths: 4, KeyRecord: 90}, death(10, 1, 10), Records{Deaths: 5, Record: 90}},
		{"higher score raises record", map[string]int{KeyDeaths: 2, KeyRecord: 40}, death(55, 3, 55), Records{Deaths: 3, Record: 55}},
		{"completion adds no death", map[string]int{KeyDeaths: 6, KeyRecord: 70}, complete, Records{Deaths: 6, Record: 100}},
	}

	for _, tc := range tests {
		stores := map[string]func() (core.KV, *memKV){
			"plain": func() (core.KV, *memKV) {
				kv := newMemKV()
				return kv, kv
			},
			"counters": func() (core.KV, *memKV) {
				kv := newMemKV()
				return memCounters{kv}, kv
			},
		}
		for kind, build := range stores {
			t.Run(tc.name+"/"+kind, func(t *testing.T) {
				kv, mem := build()
				for k, v := range tc.stored {
					mem.vals[k] = v
				}

				got, err := SaveOutcome(kv, tc.outcome)
				if err != nil {
					t.Fatalf("SaveOutcome() failed: %v", err)
				}
				if got != tc.expected {
					t.Errorf("SaveOutcome() = %+v, expected %+v", got, tc.expected)
				}
				if stored := LoadRecords(kv); stored != tc.expected {
					t.Errorf("stored %+v, expected %+v", stored, tc.expected)
				}
			})
		}
	}
}

func TestSaveOutcomeErrors(t *testing.T) {
	errDisk := errors.New("disk full")
	kv := newMemKV()
	kv.setErr = errDisk

	if _, err := SaveOutcome(memCounters{kv}, core.Outcome{Kind: core.OutcomeDeath}); !errors.Is(err, errDisk) {
		t.Errorf("expected disk error, got %v", err)
	}
	if _, err := SaveOutcome(kv, core.Outcome{Kind: core.OutcomeDeath}); !errors.Is(err, errDisk) {
		t.Errorf("expected disk error from plain store, got %v", err)
	}
	if r, err := SaveOutcome(nil, core.Outcome{Deaths: 2, Record: 50}); err != nil || r != (Records{Deaths: 2, Record: 50}) {
		t.Errorf("nil store = (%+v, %v)", r, err)
	}
}

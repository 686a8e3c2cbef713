package runner

import (
	"errors"

	"github.com/vovakirdan/spike-runner/internal/core"
)

// Persistence keys for the runner's counters.
const (
	KeyDeaths = "runner.deaths"
	KeyRecord = "runner.record"
)

// Records holds the counters that survive across runs.
type Records struct {
	Deaths int
	Record int // Best final progress, 0..100
}

// LoadRecords reads counters from the store. Read failures and out-of-range
// values fall back to zero rather than failing the game.
func LoadRecords(kv core.KV) Records {
	var r Records
	if kv == nil {
		return r
	}
	if v, err := kv.GetInt(KeyDeaths); err == nil && v > 0 {
		r.Deaths = v
	}
	if v, err := kv.GetInt(KeyRecord); err == nil && v > 0 {
		r.Record = core.Clamp(v, 0, 100)
	}
	return r
}

// SaveRecords writes both counters, attempting each even if one fails.
func SaveRecords(kv core.KV, r Records) error {
	if kv == nil {
		return nil
	}
	return errors.Join(
		kv.SetInt(KeyDeaths, r.Deaths),
		kv.SetInt(KeyRecord, r.Record),
	)
}

// RecordsFromOutcome extracts the counters carried by a run outcome.
func RecordsFromOutcome(o core.Outcome) Records {
	return Records{Deaths: o.Deaths, Record: o.Record}
}

// SaveOutcome merges a finished run into the store without lowering the
// record or dropping deaths written by other sessions sharing it. It
// returns the counters as stored. Stores implementing core.Counters are
// updated atomically; plain stores fall back to read, merge and write.
func SaveOutcome(kv core.KV, o core.Outcome) (Records, error) {
	if kv == nil {
		return RecordsFromOutcome(o), nil
	}

	died := 0
	if o.Kind == core.OutcomeDeath {
		died = 1
	}

	if c, ok := kv.(core.Counters); ok {
		var r Records
		var errDeaths, errRecord error
		if died > 0 {
			r.Deaths, errDeaths = c.IncrInt(KeyDeaths, died)
		} else {
			r.Deaths, errDeaths = c.GetInt(KeyDeaths)
		}
		r.Record, errRecord = c.MaxInt(KeyRecord, core.Clamp(o.Record, 0, 100))
		return r, errors.Join(errDeaths, errRecord)
	}

	stored := LoadRecords(kv)
	merged := Records{
		Deaths: max(stored.Deaths+died, o.Deaths),
		Record: max(stored.Record, core.Clamp(o.Record, 0, 100)),
	}
	return merged, SaveRecords(kv, merged)
}

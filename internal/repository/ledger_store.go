package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/workcounter/internal/domain"
)

// Keys of the persisted clock state.
const (
	KeyClockInTime        = "clock_in_time"
	KeyCheckInOutTimes    = "check_in_out_times"
	KeyTotalWorkedSeconds = "total_worked_seconds"
)

// LedgerKeys lists every key a ledger is stored under.
var LedgerKeys = []string{KeyClockInTime, KeyCheckInOutTimes, KeyTotalWorkedSeconds}

type clockInDoc struct {
	Time string `json:"time"`
}

type eventDoc struct {
	Type string `json:"type"`
	Time string `json:"time"`
	ID   string `json:"id,omitempty"`
}

type eventsDoc struct {
	Times []eventDoc `json:"times"`
}

type totalDoc struct {
	Seconds float64 `json:"seconds"`
}

// LedgerStore maps a domain.Ledger onto three keys of a KVRepo.
type LedgerStore struct {
	kv KVRepo
}

func NewLedgerStore(kv KVRepo) *LedgerStore {
	return &LedgerStore{kv: kv}
}

// Load reads the ledger. Missing keys read as their zero value, so an empty
// store yields an idle ledger with no events.
func (s *LedgerStore) Load(ctx context.Context) (*domain.Ledger, error) {
	var l domain.Ledger

	var in clockInDoc
	found, err := s.getDoc(ctx, KeyClockInTime, &in)
	if err != nil {
		return nil, err
	}
	if found {
		t, err := parseTimestamp(in.Time)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", KeyClockInTime, err)
		}
		l.ClockInTime = &t
	}

	var events eventsDoc
	if _, err := s.getDoc(ctx, KeyCheckInOutTimes, &events); err != nil {
		return nil, err
	}
	for i, e := range events.Times {
		typ := domain.EventType(e.Type)
		if !typ.Valid() {
			return nil, fmt.Errorf("event %d: unknown type %q", i, e.Type)
		}
		t, err := parseTimestamp(e.Time)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		l.Events = append(l.Events, domain.Event{ID: e.ID, Type: typ, Time: t})
	}

	var total totalDoc
	if _, err := s.getDoc(ctx, KeyTotalWorkedSeconds, &total); err != nil {
		return nil, err
	}
	if total.Seconds < 0 {
		return nil, fmt.Errorf("%s is negative: %v", KeyTotalWorkedSeconds, total.Seconds)
	}
	l.TotalWorked = time.Duration(math.Round(total.Seconds * float64(time.Second)))

	return &l, nil
}

// Save writes all three keys. An idle ledger removes clock_in_time.
func (s *LedgerStore) Save(ctx context.Context, l *domain.Ledger) error {
	if l.ClockInTime != nil {
		if err := s.putDoc(ctx, KeyClockInTime, clockInDoc{Time: formatTimestamp(*l.ClockInTime)}); err != nil {
			return err
		}
	} else if err := s.kv.Delete(ctx, KeyClockInTime); err != nil {
		return err
	}

	events := eventsDoc{Times: make([]eventDoc, 0, len(l.Events))}
	for _, e := range l.Events {
		events.Times = append(events.Times, eventDoc{
			Type: string(e.Type),
			Time: formatTimestamp(e.Time),
			ID:   e.ID,
		})
	}
	if err := s.putDoc(ctx, KeyCheckInOutTimes, events); err != nil {
		return err
	}

	return s.putDoc(ctx, KeyTotalWorkedSeconds, totalDoc{Seconds: l.TotalWorked.Seconds()})
}

func (s *LedgerStore) getDoc(ctx context.Context, key string, v any) (bool, error) {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return true, nil
}

func (s *LedgerStore) putDoc(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return s.kv.Put(ctx, key, raw)
}

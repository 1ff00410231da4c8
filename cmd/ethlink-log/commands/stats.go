package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/ethlink/ethlink-go/pkg/log"
)

// Stats holds aggregate statistics about a capture file.
type Stats struct {
	TotalEvents      int
	EventsByLayer    map[log.Layer]int
	EventsByCategory map[log.Category]int
	LinkEvents       map[string]int
	ErrorCodes       map[string]int
	Sessions         map[string]*SessionStats
	Undelivered      int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for one controller session.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Errors    int
	LastState string
}

// CollectStats reads every matching event of path.
func CollectStats(path string, opts FilterOptions) (*Stats, error) {
	filter, err := opts.Build()
	if err != nil {
		return nil, err
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to open capture file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByLayer:    make(map[log.Layer]int),
		EventsByCategory: make(map[log.Category]int),
		LinkEvents:       make(map[string]int),
		ErrorCodes:       make(map[string]int),
		Sessions:         make(map[string]*SessionStats),
	}

	_, err = forEach(reader, func(event log.Event) error {
		stats.add(event)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByLayer[event.Layer]++
	s.EventsByCategory[event.Category]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	sess, ok := s.Sessions[event.SessionID]
	if !ok {
		sess = &SessionStats{FirstSeen: event.Timestamp}
		s.Sessions[event.SessionID] = sess
	}
	sess.Events++
	if event.Timestamp.After(sess.LastSeen) {
		sess.LastSeen = event.Timestamp
	}

	switch {
	case event.StateChange != nil:
		if event.StateChange.Entity == log.StateEntityController {
			sess.LastState = event.StateChange.NewState
		}
	case event.Link != nil:
		s.LinkEvents[event.Link.Kind]++
		if event.Link.PostError != "" {
			s.Undelivered++
		}
	case event.Error != nil:
		sess.Errors++
		code := event.Error.Code
		if code == "" {
			code = "UNCLASSIFIED"
		}
		s.ErrorCodes[code]++
	}
}

// RunStats prints statistics about the matching events of path.
func RunStats(path string, opts FilterOptions, w io.Writer) error {
	stats, err := CollectStats(path, opts)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, s *Stats) {
	fmt.Fprintf(w, "Total events: %d\n", s.TotalEvents)
	if s.TotalEvents == 0 {
		return
	}
	fmt.Fprintf(w, "Time range:   %s - %s (%s)\n",
		s.TimeRange.Start.UTC().Format(timeFormat),
		s.TimeRange.End.UTC().Format(timeFormat),
		s.TimeRange.End.Sub(s.TimeRange.Start).Round(time.Millisecond))

	fmt.Fprintln(w, "\nBy layer:")
	for l := log.LayerDriver; l <= log.LayerLifecycle; l++ {
		if n := s.EventsByLayer[l]; n > 0 {
			fmt.Fprintf(w, "  %-10s %d\n", l, n)
		}
	}

	fmt.Fprintln(w, "\nBy category:")
	for c := log.CategoryState; c <= log.CategoryError; c++ {
		if n := s.EventsByCategory[c]; n > 0 {
			fmt.Fprintf(w, "  %-10s %d\n", c, n)
		}
	}

	if len(s.LinkEvents) > 0 {
		fmt.Fprintln(w, "\nLink events:")
		for _, k := range sortedKeys(s.LinkEvents) {
			fmt.Fprintf(w, "  %-18s %d\n", k, s.LinkEvents[k])
		}
		if s.Undelivered > 0 {
			fmt.Fprintf(w, "  undelivered        %d\n", s.Undelivered)
		}
	}

	if len(s.ErrorCodes) > 0 {
		fmt.Fprintln(w, "\nErrors:")
		for _, k := range sortedKeys(s.ErrorCodes) {
			fmt.Fprintf(w, "  %-26s %d\n", k, s.ErrorCodes[k])
		}
	}

	fmt.Fprintf(w, "\nSessions: %d\n", len(s.Sessions))
	ids := make([]string, 0, len(s.Sessions))
	for id := range s.Sessions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return s.Sessions[ids[i]].FirstSeen.Before(s.Sessions[ids[j]].FirstSeen)
	})
	for _, id := range ids {
		sess := s.Sessions[id]
		fmt.Fprintf(w, "  %s  events=%d errors=%d last=%s\n",
			shortenSessionID(id), sess.Events, sess.Errors, sess.LastState)
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

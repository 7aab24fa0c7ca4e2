package notes

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/cbodonnell/purgatorium/pkg/game/constants"
	"github.com/klauspost/compress/zstd"
)

// Note is a single played key, as written by the note extraction tools.
type Note struct {
	// Time is the onset in seconds from the start of the chart.
	Time       float64 `json:"time"`
	MIDINumber int     `json:"midi_number"`
	NoteName   string  `json:"note_name,omitempty"`
	Velocity   int     `json:"velocity"`
	Duration   float64 `json:"duration"`
	Channel    int     `json:"channel"`
}

// ColorScheme returns the hue in degrees a note's bullet is tinted with.
// Each channel is offset by 45 degrees from base.
func (n Note) ColorScheme(base int) int {
	hue := (base + n.Channel*45) % 360
	if hue < 0 {
		hue += 360
	}
	return hue
}

// PitchFraction returns where the note sits on the piano keyboard, 0 for the
// lowest key and 1 for the highest.
func (n Note) PitchFraction() float64 {
	clamped := n.MIDINumber - constants.PitchOffset
	if clamped < 0 {
		clamped = 0
	}
	if clamped > constants.PitchRange {
		clamped = constants.PitchRange
	}
	return float64(clamped) / float64(constants.PitchRange)
}

// Chart is a timed list of notes.
type Chart struct {
	SourceFile string  `json:"source_file,omitempty"`
	Duration   float64 `json:"duration"`
	BPM        float64 `json:"bpm,omitempty"`
	Tempo      int     `json:"tempo,omitempty"`
	NumEvents  int     `json:"num_events"`
	Events     []Note  `json:"events"`
}

// ReadChart decodes a JSON chart and sorts its events by onset time.
func ReadChart(r io.Reader) (*Chart, error) {
	chart := &Chart{}
	if err := json.NewDecoder(r).Decode(chart); err != nil {
		return nil, fmt.Errorf("failed to decode chart: %v", err)
	}
	for i, n := range chart.Events {
		if n.Time < 0 {
			return nil, fmt.Errorf("event %d has negative time %v", i, n.Time)
		}
	}
	sort.SliceStable(chart.Events, func(i, j int) bool {
		return chart.Events[i].Time < chart.Events[j].Time
	})
	chart.NumEvents = len(chart.Events)
	if n := len(chart.Events); n > 0 && chart.Events[n-1].Time > chart.Duration {
		chart.Duration = chart.Events[n-1].Time
	}
	return chart, nil
}

// LoadChart reads a chart from disk. Files ending in .zst are zstd
// compressed.
func LoadChart(path string) (*Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open chart: %v", err)
	}
	defer f.Close()

	if !strings.HasSuffix(path, ".zst") {
		return ReadChart(f)
	}

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer dec.Close()
	return ReadChart(dec)
}

// WriteChart encodes a chart as JSON, zstd compressed when compress is set.
func WriteChart(w io.Writer, chart *Chart, compress bool) error {
	if !compress {
		return json.NewEncoder(w).Encode(chart)
	}
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if err := json.NewEncoder(enc).Encode(chart); err != nil {
		enc.Close()
		return fmt.Errorf("failed to encode chart: %v", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to close zstd writer: %v", err)
	}
	return nil
}

package planjson

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"github.com/katalvlaran/mugs-search/fdr"
	"github.com/katalvlaran/mugs-search/goalset"
)

// msgsLine is one line of the anytime stream (spec §6 Output: "each newly
// discovered MSGS is streamed to standard output as a single-line list of
// fact names"; cmd/mugs-search passes its stdout writer). RunID lets
// concurrent invocations' stdout be told apart
// once interleaved into one log (DOMAIN STACK: google/uuid).
type msgsLine struct {
	RunID string   `json:"run_id"`
	MSGS  []string `json:"msgs"`
}

// Streamer writes one JSON line per Emit call, resolving a goalset.Subset
// to fact names against a fixed task and soft-goal ordering.
type Streamer struct {
	w     io.Writer
	enc   *json.Encoder
	task  *fdr.Task
	soft  []fdr.Fact
	runID string
}

// NewStreamer builds a Streamer writing to w. soft is the collection's
// soft-goal ordering (coll.SoftGoals()), fixed for the lifetime of the run.
func NewStreamer(w io.Writer, task *fdr.Task, soft []fdr.Fact) *Streamer {
	return &Streamer{w: w, enc: json.NewEncoder(w), task: task, soft: soft, runID: uuid.NewString()}
}

// RunID returns the run id tagging every line this Streamer emits.
func (st *Streamer) RunID() string { return st.runID }

// Emit renders subset and writes it as one JSON line. Intended as the
// callback passed to mugs.Collection.OnAdded when the `anytime` option is
// set (spec §6 Configuration).
func (st *Streamer) Emit(subset goalset.Subset) error {
	names, err := SubsetNames(st.task, st.soft, subset)
	if err != nil {
		return err
	}
	return st.enc.Encode(msgsLine{RunID: st.runID, MSGS: names})
}

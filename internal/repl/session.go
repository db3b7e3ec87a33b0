// Package repl provides the interactive calculator session, both the
// terminal UI and the plain line-oriented fallback for piped input.
package repl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chongchonghe/acap/internal/engine"
	"github.com/chongchonghe/acap/internal/history"
	"github.com/chongchonghe/acap/internal/logger"
	"github.com/chongchonghe/acap/internal/quantity"
)

// Outcome is the result of processing one line of interactive input.
type Outcome struct {
	// Quit is set by the quit commands.
	Quit bool
	// Empty marks blank input; the prompt just advances.
	Empty bool
	// Recall carries a previous input to prefill, without evaluating it.
	Recall string
	// Notice is an informational message, such as an empty-history recall.
	Notice string

	Input     string
	Parsed    string
	SI        string
	CGS       string
	Converted string
	Err       *engine.Error
}

// Session drives evaluation for one interactive user. It keeps the variable
// namespace, the last successful result for bare unit reconversion, and a
// handle on the persistent history log.
type Session struct {
	calc  *engine.Calculator
	ns    *engine.Namespace
	store *history.Store

	// base is the history row count when the session started, so that !N
	// refers to the Nth input of this run rather than a row spanning all
	// previous runs. seq counts this run's recorded inputs.
	base int64
	seq  int64

	lastRaw quantity.Quantity
	hasLast bool
}

// NewSession creates an interactive session. The history store may be nil,
// which disables recall.
func NewSession(calc *engine.Calculator, store *history.Store) *Session {
	s := &Session{calc: calc, ns: calc.NewNamespace(), store: store}
	if store != nil {
		if n, err := store.Count(); err == nil {
			s.base = n
		} else {
			logger.Warn("session: history count failed: %s", err.Error())
		}
	}
	return s
}

// Process handles one input line: session commands, history recall, bare
// unit reconversion, or a full evaluation.
func (s *Session) Process(input string) Outcome {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Outcome{Empty: true}
	}

	switch trimmed {
	case "q", "quit", "exit":
		return Outcome{Quit: true}
	case "history":
		return s.showHistory()
	case "names":
		return Outcome{Notice: strings.Join(s.ns.Registry().Names(), " ")}
	}

	if strings.HasPrefix(trimmed, "!") {
		return s.recall(trimmed[1:])
	}

	// Semicolons are accepted as statement separators and normalized.
	trimmed = strings.ReplaceAll(trimmed, ";", ",")

	if rest, ok := strings.CutPrefix(trimmed, "in "); ok {
		return s.reconvert(strings.TrimSpace(rest))
	}

	return s.evaluate(trimmed)
}

// recall resolves "!" (most recent) or "!N" (input N of this run) to a
// previous input. Numbering matches the Input[N] prompts, so it is relative
// to the session start rather than to the persistent log.
func (s *Session) recall(arg string) Outcome {
	if s.store == nil {
		return Outcome{Notice: "history is not available"}
	}
	if s.seq == 0 {
		return Outcome{Notice: "history is empty"}
	}
	n := s.seq
	if arg != "" {
		parsed, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return Outcome{Notice: "history recall takes a number, e.g. !3"}
		}
		if parsed < 1 || parsed > s.seq {
			return Outcome{Notice: fmt.Sprintf("no input %d in this session", parsed)}
		}
		n = parsed
	}
	entry, err := s.store.Get(s.base + n)
	if err != nil {
		return Outcome{Notice: err.Error()}
	}
	return Outcome{Recall: entry.Input}
}

// showHistory lists this session's recorded inputs, newest first.
func (s *Session) showHistory() Outcome {
	if s.store == nil {
		return Outcome{Notice: "history is not available"}
	}
	if s.seq == 0 {
		return Outcome{Notice: "history is empty"}
	}
	entries, err := s.store.Recent(10)
	if err != nil {
		return Outcome{Notice: "history lookup failed: " + err.Error()}
	}
	var lines []string
	for _, e := range entries {
		if e.ID <= s.base {
			continue
		}
		lines = append(lines, fmt.Sprintf("!%d  %s", e.ID-s.base, e.Input))
	}
	return Outcome{Notice: strings.Join(lines, "\n")}
}

// reconvert applies a bare "in <unit>" line to the previous result.
func (s *Session) reconvert(unitText string) Outcome {
	if !s.hasLast {
		return Outcome{Notice: "no previous result to convert"}
	}
	converted, err := s.calc.ConvertToUnit(s.lastRaw, unitText)
	if err != nil {
		return Outcome{Input: "in " + unitText, Err: err}
	}
	out := Outcome{Input: "in " + unitText, Converted: converted}
	s.record(&out)
	return out
}

func (s *Session) evaluate(input string) Outcome {
	res, err := s.calc.EvaluateLine(input, s.ns)
	if err != nil {
		logger.Debug("session: %q failed: %s", input, err.Error())
		return Outcome{Input: input, Err: err}
	}
	if res.Empty {
		return Outcome{Empty: true}
	}

	s.lastRaw = res.Raw
	s.hasLast = true

	out := Outcome{
		Input:     input,
		Parsed:    res.ParsedExpression,
		SI:        res.SI,
		CGS:       res.CGS,
		Converted: res.Converted,
	}
	s.record(&out)
	return out
}

// record logs a successful input. seq tracks the Input[N] numbering, so it
// advances even when the store is unavailable.
func (s *Session) record(out *Outcome) {
	s.seq++
	if s.store == nil {
		return
	}
	if _, err := s.store.Append(&history.Entry{
		Input:     out.Input,
		Parsed:    out.Parsed,
		SI:        out.SI,
		CGS:       out.CGS,
		Converted: out.Converted,
	}); err != nil {
		logger.Warn("session: history append failed: %s", err.Error())
	}
}

// Reset clears the session's variable bindings.
func (s *Session) Reset() {
	s.ns.Reset()
	s.hasLast = false
}

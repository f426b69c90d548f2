// Package scenes sequences an interactive session: welcome threshold,
// regulated dialogue, card draw, interpretation, farewell. Each scene reads
// and writes plain lines so the whole flow works over any reader and writer.
package scenes

import (
	"bufio"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	"github.com/liminal-ware/querent/internal/deck"
	"github.com/liminal-ware/querent/internal/homeostat"
	"github.com/liminal-ware/querent/internal/reading"
	"github.com/liminal-ware/querent/internal/tracelog"
)

// #region session

// SessionConfig wires a Session. Readings and TraceDB are optional; a nil
// store skips persistence, a nil logger skips diagnostics.
type SessionConfig struct {
	In       io.Reader
	Out      io.Writer
	Styles   Styles
	Loop     homeostat.Config
	Rng      *rand.Rand
	Readings *reading.Store
	TraceDB  *sql.DB
	Logger   *zap.Logger
}

// Session runs one querent through the full scene sequence.
type Session struct {
	in       *bufio.Scanner
	out      io.Writer
	styles   Styles
	h        *homeostat.Homeostat
	rng      *rand.Rand
	readings *reading.Store
	traceDB  *sql.DB
	logger   *zap.Logger
}

// NewSession builds a session over the given reader and writer.
func NewSession(cfg SessionConfig) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		in:       bufio.NewScanner(cfg.In),
		out:      cfg.Out,
		styles:   cfg.Styles,
		h:        homeostat.New(cfg.Loop, logger),
		rng:      cfg.Rng,
		readings: cfg.Readings,
		traceDB:  cfg.TraceDB,
		logger:   logger,
	}
}

// Run walks the scene sequence in order. Leaving the dialogue without
// emergence skips the draw; the farewell always runs.
func (s *Session) Run() error {
	s.Welcome()
	query, emerged := s.Dialogue()
	if !emerged {
		s.Farewell()
		return nil
	}

	spread, err := s.Draw(query)
	if err != nil {
		return err
	}
	if _, err := s.Interpretation(spread); err != nil {
		return err
	}
	s.Farewell()
	return nil
}

// #endregion session

// #region welcome

var thresholdLines = []string{
	"What brings you to the cards today?",
	"Find something in your space that can mark a threshold.",
	"Close your eyes for a moment.",
	"What is the quietest sound you can hear?",
	"Feel the weight of the cards.",
}

// Welcome marks the threshold between ordinary time and the reading. Each
// line waits for the querent before the next.
func (s *Session) Welcome() {
	fmt.Fprintln(s.out)
	for _, line := range thresholdLines {
		fmt.Fprintln(s.out, s.styles.Threshold.Render(line))
		if !s.in.Scan() {
			return
		}
	}
	fmt.Fprintln(s.out, s.styles.Threshold.Render("We begin."))
	fmt.Fprintln(s.out)
}

// #endregion welcome

// #region dialogue

// Dialogue runs the regulated loop until the session emerges, the querent
// types quit or exit, or input ends. It returns the surfaced query and
// whether emergence was reached.
func (s *Session) Dialogue() (string, bool) {
	fmt.Fprintln(s.out, s.styles.Prompt.Render(s.h.Opening()))

	for {
		fmt.Fprint(s.out, "> ")
		if !s.in.Scan() {
			break
		}
		utterance := strings.TrimSpace(s.in.Text())
		if utterance == "" {
			continue
		}
		if utterance == "quit" || utterance == "exit" {
			break
		}

		result, err := s.h.Turn(utterance)
		if err != nil {
			fmt.Fprintln(s.out, s.styles.Quiet.Render("take your time. say it another way."))
			s.logger.Debug("turn rejected", zap.Error(err))
			continue
		}

		fmt.Fprintf(s.out, "\n%s\n\n", s.styles.Response.Render(result.Response))
		s.logTurn(result)

		if s.h.Emerged() {
			break
		}
	}

	query := s.h.Query()
	return query, s.h.Emerged() && query != ""
}

// logTurn records the turn to the trace log when one is wired.
func (s *Session) logTurn(result homeostat.TurnResult) {
	if s.traceDB == nil {
		return
	}
	varietyJSON, _ := json.Marshal(map[string]float64{
		"dispersal":  result.Variety.Dispersal,
		"intensity":  result.Variety.Intensity,
		"complexity": result.Variety.Complexity,
	})
	err := tracelog.LogTurn(s.traceDB, tracelog.TurnEntry{
		SessionID:   s.h.SessionID(),
		TurnID:      result.TurnID,
		Utterance:   result.Utterance,
		State:       string(result.State),
		VarietyJSON: string(varietyJSON),
		Momentum:    result.Momentum,
		Persistence: result.Persistence,
		Rule:        result.Rule,
		Override:    result.Override,
	})
	if err != nil {
		s.logger.Warn("trace log failed", zap.Error(err))
	}
}

// #endregion dialogue

// #region draw

// Draw deals the three-card spread for the surfaced query.
func (s *Session) Draw(query string) (*deck.Spread, error) {
	fmt.Fprintln(s.out, s.styles.Threshold.Render("As your question settles, the cards answer."))
	fmt.Fprintln(s.out)

	d := deck.New(s.rng)
	spread, err := deck.Deal(d, s.rng, deck.ThreeCard, query)
	if err != nil {
		return nil, err
	}

	for _, p := range spread.Placed {
		fmt.Fprintf(s.out, "%s  %s\n",
			s.styles.Quiet.Render(p.Position.Name),
			s.styles.Card.Render(p.Card.ID()))
	}
	fmt.Fprintln(s.out)
	return spread, nil
}

// #endregion draw

// #region interpretation

// Interpretation renders the reading, notes any prior reading of the same
// cards, and persists the result when a store is wired.
func (s *Session) Interpretation(spread *deck.Spread) (string, error) {
	interpretation := spread.Describe()

	fmt.Fprintln(s.out, s.styles.Quiet.Render("Your reading:"))
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.styles.Meaning.Render(interpretation))

	if s.readings == nil {
		return interpretation, nil
	}

	prior, err := s.readings.ForCards(spread.CardIDs())
	if err != nil {
		return "", fmt.Errorf("prior reading: %w", err)
	}
	if prior != "" {
		fmt.Fprintln(s.out, s.styles.Quiet.Render("these cards have arranged themselves before."))
		fmt.Fprintln(s.out)
	}

	if _, err := s.readings.Save(s.h.SessionID(), spread.Query, spread.CardIDs(), interpretation); err != nil {
		return "", fmt.Errorf("save reading: %w", err)
	}
	return interpretation, nil
}

// #endregion interpretation

// #region farewell

// Farewell closes the session and steps back over the threshold.
func (s *Session) Farewell() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.styles.Threshold.Render("The cards rest."))
	fmt.Fprintln(s.out, s.styles.Threshold.Render("Carry the question lightly."))
}

// #endregion farewell

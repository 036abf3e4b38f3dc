package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tahcohcat/cluequest/internal/game"
	"github.com/tahcohcat/cluequest/internal/logger"
)

// Console plays one session against a line based terminal.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	logger *logger.Log
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger.New(),
	}
}

// readLine returns the next line without its line ending. EOF with no data is io.EOF.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// Run explores, lists the clues, then asks for one accusation.
func (c *Console) Run(s *game.Session) error {
	c.printf("=== %s ===\n", strings.ToUpper(s.Case.Title))
	if s.Case.Intro != "" {
		c.printf("%s\n", s.Case.Intro)
	}

	if err := c.explore(s); err != nil {
		return err
	}
	c.listClues(s)
	return c.judge(s)
}

func (c *Console) explore(s *game.Session) error {
	c.showRoom(s, s.Entrance())
	for {
		c.showPaths(s)

		line, err := c.readLine()
		if errors.Is(err, io.EOF) {
			s.Move(game.MoveEnd)
			c.printf("\n")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read move: %w", err)
		}

		out := s.Move(game.ParseMove(line))
		switch {
		case !out.Accepted:
			c.printf("Invalid option or no such path. Try again.\n")
		case out.Ended:
			c.printf("\nEnding exploration. Taking the clues to the judgement...\n")
			return nil
		default:
			c.showRoom(s, out)
		}
	}
}

func (c *Console) showRoom(s *game.Session, out game.Outcome) {
	c.printf("\nYou are in: %s\n", s.Map.Name(out.Room))
	switch {
	case out.Clue == "":
		c.printf("  (There is no clue in this room)\n")
	case out.NewClue:
		c.printf("  >> You found a clue: %q\n", out.Clue)
	default:
		c.printf("  >> Clue already noted: %q\n", out.Clue)
	}
}

func (c *Console) showPaths(s *game.Session) {
	view := s.View()
	c.printf("\nAvailable paths:\n")
	for _, m := range s.LegalMoves() {
		switch m {
		case game.MoveLeft:
			c.printf(" (l) Go to %s (left)\n", view.Left)
		case game.MoveRight:
			c.printf(" (r) Go to %s (right)\n", view.Right)
		case game.MoveEnd:
			c.printf(" (q) Leave and go to the judgement\n")
		}
	}
	c.printf("Choice: ")
}

func (c *Console) listClues(s *game.Session) {
	c.printf("\n==========================\n")
	c.printf("Collected clues (sorted):\n")
	found := s.Clues()
	if len(found) == 0 {
		c.printf(" (no clues collected)\n")
	}
	for _, clue := range found {
		c.printf(" - %s\n", clue)
	}
	c.printf("==========================\n")
}

func (c *Console) judge(s *game.Session) error {
	c.printf("\nName the suspect you want to accuse: ")
	accused, err := c.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read accusation: %w", err)
	}

	ruling, ok, err := s.Accuse(accused)
	if err != nil {
		return err
	}
	if !ok {
		c.printf("No suspect named. Closing without a verdict.\n")
		return nil
	}

	c.printf("\nYou accused: %s\n", ruling.Accused)
	c.printf("Collected clues pointing at %s: %d\n", ruling.Accused, ruling.Count)
	if ruling.Guilty() {
		c.printf("\n>>> VERDICT: There is enough evidence! %s is found guilty.\n", ruling.Accused)
	} else {
		c.printf("\n>>> VERDICT: Insufficient evidence. %s cannot be found guilty.\n", ruling.Accused)
		if ruling.Count == 0 {
			if hint := s.Suggest(ruling.Accused); hint != "" {
				c.printf("(Did you mean %s?)\n", hint)
			}
		}
	}
	c.logger.Debug(fmt.Sprintf("verdict for %q: %d clue(s), %s", ruling.Accused, ruling.Count, ruling.Verdict))
	return nil
}

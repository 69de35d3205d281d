package categorize

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"xlftools/internal/logging"
)

// ErrCancelled is returned when the answer stream ends mid-session.
var ErrCancelled = errors.New("operation cancelled by user")

// NewGroupKey is the key that creates a new group during a session.
const NewGroupKey = "`"

// ExtraKeys are bound, in order, to groups created during a session.
var ExtraKeys = []string{"e", "r", "t", "y", "u", "i", "o", "p", "[", "]", `\`}

// Group binds a single-character key to a group name.
type Group struct {
	Key  string
	Name string
}

// Options configures a session.
type Options struct {
	// Col1 and Col2 are the 1-based columns marked in each row display.
	Col1, Col2 int
	Groups     []Group
}

// Result holds the rows that were processed and their group memberships.
type Result struct {
	Header []string
	Rows   [][]string
	// Membership[i] holds the group names chosen for Rows[i].
	Membership []map[string]bool
	// Used lists every group chosen at least once, sorted.
	Used       []string
	Total      int
	EndedEarly bool
}

// Count returns how many processed rows belong to group.
func (r Result) Count(group string) int {
	n := 0
	for _, m := range r.Membership {
		if m[group] {
			n++
		}
	}
	return n
}

type session struct {
	in     *bufio.Reader
	out    io.Writer
	keys   []string
	groups map[string]string
	logger *slog.Logger
}

// Run walks every row of t, asking for group keys on in and writing prompts
// to out. An empty answer confirmed by a second empty answer ends the session
// early with the rows processed so far. End of input returns ErrCancelled.
func Run(ctx context.Context, t Table, opts Options, in io.Reader, out io.Writer, logger *slog.Logger) (Result, error) {
	if err := t.ValidateColumns(opts.Col1, opts.Col2); err != nil {
		return Result{}, err
	}
	logger = logging.NewComponentLogger(logger, "categorize")

	s := &session{
		in:     bufio.NewReader(in),
		out:    out,
		groups: make(map[string]string, len(opts.Groups)),
		logger: logger,
	}
	for _, g := range opts.Groups {
		if _, dup := s.groups[g.Key]; dup {
			continue
		}
		s.keys = append(s.keys, g.Key)
		s.groups[g.Key] = g.Name
	}

	fmt.Fprintf(out, "Displaying columns: %s and %s\n", t.Header[opts.Col1-1], t.Header[opts.Col2-1])
	fmt.Fprintf(out, "Total rows to sort: %d\n", len(t.Rows))

	res := Result{Header: t.Header, Total: len(t.Rows)}
	for i, row := range t.Rows {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		fmt.Fprintf(out, "\n\n%s\nRow %d of %d\n", strings.Repeat("#", 80), i+1, len(t.Rows))
		s.displayRow(t.Header, row, opts.Col1, opts.Col2)

		selected, end, err := s.choose()
		if err != nil {
			return Result{}, err
		}
		if end {
			fmt.Fprintln(out, "\nEnding early. Saving partial results...")
			res.EndedEarly = true
			break
		}

		membership := make(map[string]bool, len(selected))
		for _, name := range selected {
			membership[name] = true
		}
		res.Rows = append(res.Rows, row)
		res.Membership = append(res.Membership, membership)
		if len(selected) > 0 {
			fmt.Fprintf(out, "\nAdded to groups: %s\n", strings.Join(selected, ", "))
		} else {
			fmt.Fprintln(out, "\nNo groups selected for this row")
		}
	}

	used := make(map[string]bool)
	for _, m := range res.Membership {
		for name := range m {
			used[name] = true
		}
	}
	for name := range used {
		res.Used = append(res.Used, name)
	}
	sort.Strings(res.Used)

	logger.Info("categorize session complete",
		logging.Int("processed", len(res.Rows)),
		logging.Int("total", res.Total),
		logging.Int("groups_used", len(res.Used)),
		logging.Bool("ended_early", res.EndedEarly),
	)
	return res, nil
}

func (s *session) displayRow(header, row []string, col1, col2 int) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", "Column", "Value", ""})
	n := len(header)
	if len(row) < n {
		n = len(row)
	}
	for i := 0; i < n; i++ {
		marker := ""
		if i+1 == col1 || i+1 == col2 {
			marker = "<--"
		}
		tw.AppendRow(table.Row{strconv.Itoa(i + 1), header[i], row[i], marker})
	}
	fmt.Fprintln(s.out, tw.Render())
}

func (s *session) printGroups() {
	fmt.Fprintln(s.out, "\nAvailable groups:")
	fmt.Fprintf(s.out, "  %s Create new group\n", NewGroupKey)
	for _, key := range s.keys {
		fmt.Fprintf(s.out, "  %s %s\n", key, s.groups[key])
	}
}

// choose prompts until it gets a valid answer. It returns the selected group
// names in answer order, or end=true when the user asked to stop.
func (s *session) choose() (selected []string, end bool, err error) {
	s.printGroups()
	for {
		choice, err := s.prompt("\nEnter character(s) for group(s) (or Enter to skip/end): ")
		if err != nil {
			return nil, false, err
		}
		if choice == "" {
			confirm, err := s.prompt("Press Enter again to end early and save partial results, or type something to continue: ")
			if err != nil {
				return nil, false, err
			}
			if confirm == "" {
				return nil, true, nil
			}
			continue
		}

		if strings.Contains(choice, NewGroupKey) {
			name, err := s.prompt("Enter name for new group: ")
			if err != nil {
				return nil, false, err
			}
			if name == "" {
				fmt.Fprintln(s.out, "Group name cannot be empty. Try again.")
				continue
			}
			key, ok := s.nextFreeKey()
			if !ok {
				fmt.Fprintln(s.out, "No more character slots available for new groups.")
				continue
			}
			s.keys = append(s.keys, key)
			s.groups[key] = name
			s.logger.Debug("group created", logging.String("key", key), logging.String("name", name))
			fmt.Fprintf(s.out, "New group '%s' assigned to character '%s'\n", name, key)
			choice = strings.ReplaceAll(choice, NewGroupKey, key)
		}

		var invalid []string
		for _, r := range choice {
			if _, ok := s.groups[string(r)]; !ok {
				invalid = append(invalid, string(r))
			}
		}
		if len(invalid) > 0 {
			fmt.Fprintf(s.out, "Invalid characters: %s\n", strings.Join(invalid, ", "))
			fmt.Fprintln(s.out, "Please use only the characters shown above.")
			continue
		}

		for _, r := range choice {
			selected = append(selected, s.groups[string(r)])
		}
		return selected, false, nil
	}
}

func (s *session) nextFreeKey() (string, bool) {
	for _, key := range ExtraKeys {
		if _, taken := s.groups[key]; !taken {
			return key, true
		}
	}
	return "", false
}

// prompt writes msg and reads one trimmed line. A final line without a
// newline is still returned; a read with no data at all is a cancellation.
func (s *session) prompt(msg string) (string, error) {
	fmt.Fprint(s.out, msg)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Render writes the processed rows with one 1/0 column per used group.
func Render(res Result) []byte {
	var b strings.Builder
	header := append(append([]string{}, res.Header...), res.Used...)
	b.WriteString(strings.Join(header, "\t"))
	b.WriteByte('\n')
	for i, row := range res.Rows {
		cols := append([]string{}, row...)
		for _, name := range res.Used {
			if res.Membership[i][name] {
				cols = append(cols, "1")
			} else {
				cols = append(cols, "0")
			}
		}
		b.WriteString(strings.Join(cols, "\t"))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

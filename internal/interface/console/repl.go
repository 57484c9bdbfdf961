package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/campus-hub/enrollment-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPL
// ══════════════════════════════════════════════════════════════════════════════

const helpText = `Available commands:
  student <id> <name> <email> [max_credits]   register a student
  course <id> <name> <credits>                add a course
  enroll <student_id> <course_id>             enroll a student in a course
  grade <student_id> <course_id> <grade>      assign a grade (0.0 - 4.0)
  gpa <student_id>                            calculate the student's GPA
  transcript <student_id>                     show the student's transcript
  help                                        show this message
  exit                                        quit

Quote multi-word names: student S1 "Alice Johnson" alice@campus.edu`

// REPL reads commands from an input stream and dispatches them to the
// Controller, writing one response per line of input.
type REPL struct {
	controller *Controller
	in         io.Reader
	out        io.Writer
	log        *logger.Logger

	// defaultMaxCredits is used when the student command omits a limit.
	defaultMaxCredits int
}

// NewREPL creates a new REPL.
func NewREPL(controller *Controller, in io.Reader, out io.Writer, log *logger.Logger) *REPL {
	if log == nil {
		log = logger.Default()
	}

	return &REPL{
		controller:        controller,
		in:                in,
		out:               out,
		log:               log.With(logger.String("component", "repl")),
		defaultMaxCredits: 18,
	}
}

// WithDefaultMaxCredits overrides the credit allowance used when the
// student command omits one.
func (r *REPL) WithDefaultMaxCredits(maxCredits int) *REPL {
	if maxCredits > 0 {
		r.defaultMaxCredits = maxCredits
	}
	return r
}

// Run processes input line by line until EOF, the exit command, or
// context cancellation.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, "Campus Enrollment Hub. Type 'help' for commands.")

	scanner := bufio.NewScanner(r.in)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if line == "exit" || line == "quit" {
			fmt.Fprintln(r.out, "Bye.")
			return nil
		}

		fmt.Fprintln(r.out, r.Dispatch(ctx, line))
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("console: read input: %w", err)
	}

	return nil
}

// Dispatch parses a single command line and returns the response string.
func (r *REPL) Dispatch(ctx context.Context, line string) string {
	args := splitArgs(line)
	if len(args) == 0 {
		return "ERROR: empty command (type 'help')"
	}
	cmd := strings.ToLower(args[0])

	switch cmd {
	case "help":
		return helpText

	case "enroll":
		if len(args) != 3 {
			return "ERROR: usage: enroll <student_id> <course_id>"
		}
		return r.controller.EnrollStudent(ctx, args[1], args[2])

	case "gpa":
		if len(args) != 2 {
			return "ERROR: usage: gpa <student_id>"
		}
		return r.controller.GetStudentGPA(ctx, args[1])

	case "grade":
		if len(args) != 4 {
			return "ERROR: usage: grade <student_id> <course_id> <grade>"
		}
		grade, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return fmt.Sprintf("ERROR: invalid grade: %s", args[3])
		}
		return r.controller.AssignGrade(ctx, args[1], args[2], grade)

	case "student":
		if len(args) != 4 && len(args) != 5 {
			return "ERROR: usage: student <id> <name> <email> [max_credits]"
		}
		maxCredits := r.defaultMaxCredits
		if len(args) == 5 {
			var err error
			maxCredits, err = strconv.Atoi(args[4])
			if err != nil {
				return fmt.Sprintf("ERROR: invalid max credits: %s", args[4])
			}
		}
		return r.controller.RegisterStudent(ctx, args[1], args[2], args[3], maxCredits)

	case "course":
		if len(args) != 4 {
			return "ERROR: usage: course <id> <name> <credits>"
		}
		credits, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Sprintf("ERROR: invalid credits: %s", args[3])
		}
		return r.controller.AddCourse(ctx, args[1], args[2], credits)

	case "transcript":
		if len(args) != 2 {
			return "ERROR: usage: transcript <student_id>"
		}
		return r.controller.GetTranscript(ctx, args[1])

	default:
		r.log.Debug("unknown command", logger.String("command", cmd))
		return fmt.Sprintf("ERROR: unknown command: %s (type 'help')", cmd)
	}
}

// splitArgs splits a command line on whitespace, keeping double-quoted
// runs together so multi-word names stay one argument.
func splitArgs(line string) []string {
	args := make([]string, 0, 8)
	var cur strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case unicode.IsSpace(r) && !inQuotes:
			if cur.Len() > 0 {
				args = append(args, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}

	if cur.Len() > 0 {
		args = append(args, cur.String())
	}
	return args
}

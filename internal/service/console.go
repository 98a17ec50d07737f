package service

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// ConsoleService reads moves and answers line by line. Malformed lines are re-prompted here,
// only a closed or failing input is returned as an error.
type ConsoleService struct {
	logger *slog.Logger
	in     io.Reader
	out    io.Writer

	once    sync.Once
	lines   chan string
	readErr error
}

func NewConsoleService(logger *slog.Logger, in io.Reader, out io.Writer) *ConsoleService {
	return &ConsoleService{
		logger: logger.With("component", "console"),
		in:     in,
		out:    out,
		lines:  make(chan string),
	}
}

func (that *ConsoleService) ProvideMove(ctx context.Context, participant entity.Participant, grid *entity.Grid) (int, error) {
	log := that.logger.With("method", "ProvideMove", "player", participant.Name)

	for {
		that.printf("%s (%s), which column would you like to play? [0-%d]: ", participant.Name, participant.Marker, grid.Cols()-1)

		line, err := that.readLine(ctx)
		if err != nil {
			return 0, err
		}

		col, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			log.Debug("malformed column", "input", line)
			that.printf("Error while receiving input: %q is not a column number\n", strings.TrimSpace(line))
			continue
		}

		if !grid.IsValidMove(col) {
			that.printf("Invalid column %d. Please choose another column\n", col)
			continue
		}

		return col, nil
	}
}

func (that *ConsoleService) Confirm(ctx context.Context, question string) (bool, error) {
	that.printf("\n%s y/n: ", question)

	for {
		line, err := that.readLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			that.printf("Please enter 'y' or 'n': ")
		}
	}
}

// readLine waits for the next input line or for ctx to end.
func (that *ConsoleService) readLine(ctx context.Context) (string, error) {
	that.once.Do(func() {
		go that.scan()
	})

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("failed to read input: %w", ctx.Err())
	case line, ok := <-that.lines:
		if !ok {
			if that.readErr != nil {
				return "", fmt.Errorf("failed to read input: %w", that.readErr)
			}

			return "", apperror.ErrInputClosed
		}

		return line, nil
	}
}

func (that *ConsoleService) scan() {
	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		that.lines <- scanner.Text()
	}

	that.readErr = scanner.Err()
	close(that.lines)
}

func (that *ConsoleService) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write prompt", "error", err)
	}
}

package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"focustasks/internal/service"
	"focustasks/internal/task"
)

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses a single 1-based task number from the first arg.
func ParseTaskRef(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskRefRequired
	}
	if !isAllDigits(args[0]) {
		return 0, fmt.Errorf("invalid task reference: %s", args[0])
	}
	num, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid task reference: %s", args[0])
	}
	return num, nil
}

// ParseTaskRefs parses task numbers and inclusive ranges ("3", "2-5") against
// a list of count tasks. Returns the numbers in argument order; repeats are
// kept. A number or range end outside 1..count is an error, checked before any
// range is expanded.
func ParseTaskRefs(args []string, count int) ([]int, error) {
	if len(args) == 0 {
		return nil, ErrTaskRefRequired
	}

	var nums []int
	for _, arg := range args {
		lo, hi, isRange := strings.Cut(arg, "-")
		if !isRange {
			num, err := ParseTaskRef([]string{arg})
			if err != nil {
				return nil, err
			}
			if num < 1 || num > count {
				return nil, errOutOfRange(num)
			}
			nums = append(nums, num)
			continue
		}

		if !isAllDigits(lo) || !isAllDigits(hi) {
			return nil, fmt.Errorf("invalid task reference: %s", arg)
		}
		from, err1 := strconv.Atoi(lo)
		to, err2 := strconv.Atoi(hi)
		if err1 != nil || err2 != nil || from > to {
			return nil, fmt.Errorf("invalid task reference: %s", arg)
		}
		if from < 1 {
			return nil, errOutOfRange(from)
		}
		if to > count {
			return nil, errOutOfRange(to)
		}
		for n := from; n <= to; n++ {
			nums = append(nums, n)
		}
	}
	return nums, nil
}

// isAllDigits returns true if s consists only of digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// errOutOfRange reports a task number that does not match a listed task.
type errOutOfRange int

func (e errOutOfRange) Error() string {
	return fmt.Sprintf("task number out of range: %d", int(e))
}

// findTaskByNumber returns the task shown as number num by the list command.
func findTaskByNumber(svc service.Service, num int) (task.Task, error) {
	tasks := svc.Tasks()
	if num < 1 || num > len(tasks) {
		return task.Task{}, errOutOfRange(num)
	}
	return tasks[num-1], nil
}

// reportRefError prints a task reference error in the CLI format.
func reportRefError(errOut io.Writer, err error) {
	if errors.Is(err, ErrTaskRefRequired) {
		fmt.Fprintln(errOut, "error: task reference required")
		return
	}
	fmt.Fprintf(errOut, "error: %v\n", err)
}

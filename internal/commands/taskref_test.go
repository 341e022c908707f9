package commands

import (
	"errors"
	"testing"
)

func TestParseTaskRef_Number(t *testing.T) {
	num, err := ParseTaskRef([]string{"5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != 5 {
		t.Errorf("expected 5, got %d", num)
	}
}

func TestParseTaskRef_NoArgs_Error(t *testing.T) {
	_, err := ParseTaskRef(nil)
	if !errors.Is(err, ErrTaskRefRequired) {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}
}

func TestParseTaskRef_Invalid_Error(t *testing.T) {
	for _, arg := range []string{"abc", "a1", "1.5", "-1"} {
		_, err := ParseTaskRef([]string{arg})
		if err == nil {
			t.Errorf("expected error for %q", arg)
			continue
		}
		if err.Error() != "invalid task reference: "+arg {
			t.Errorf("unexpected message %q", err.Error())
		}
	}
}

func TestParseTaskRefs_Mixed(t *testing.T) {
	nums, err := ParseTaskRefs([]string{"4", "1-3", "2"}, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{4, 1, 2, 3, 2}
	if len(nums) != len(want) {
		t.Fatalf("expected %v, got %v", want, nums)
	}
	for i := range want {
		if nums[i] != want[i] {
			t.Errorf("expected %v, got %v", want, nums)
			break
		}
	}
}

func TestParseTaskRefs_BadRange_Error(t *testing.T) {
	for _, arg := range []string{"3-1", "1-", "-2", "a-b", "1-2-3"} {
		if _, err := ParseTaskRefs([]string{arg}, 5); err == nil {
			t.Errorf("expected error for %q", arg)
		}
	}
}

func TestParseTaskRefs_OutOfRange(t *testing.T) {
	cases := map[string]string{
		"3":             "task number out of range: 3",
		"0":             "task number out of range: 0",
		"0-1":           "task number out of range: 0",
		"1-50000000":    "task number out of range: 50000000",
		"2-99999999999": "task number out of range: 99999999999",
	}
	for arg, want := range cases {
		nums, err := ParseTaskRefs([]string{arg}, 2)
		if err == nil {
			t.Errorf("expected error for %q, got %d numbers", arg, len(nums))
			continue
		}
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	}
}

func TestParseTaskRefs_NoArgs_Error(t *testing.T) {
	if _, err := ParseTaskRefs(nil, 5); !errors.Is(err, ErrTaskRefRequired) {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}
}

func TestRegistry_DuplicateAlias(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&AddCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(&AddCmd{}); err == nil {
		t.Error("expected error for duplicate registration")
	}
	if cmd, ok := r.Find("create"); !ok || cmd.Name() != "add" {
		t.Error("expected alias to resolve to add")
	}
	if n := len(r.All()); n != 1 {
		t.Errorf("expected 1 command, got %d", n)
	}
}

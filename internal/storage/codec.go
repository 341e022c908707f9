// Package storage persists the task list as a full snapshot in a named slot.
package storage

import (
	"fmt"

	"github.com/bytedance/sonic"

	"focustasks/internal/task"
)

// Encode serializes the whole list as a JSON array. A nil list encodes as [].
func Encode(tasks []task.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := sonic.ConfigStd.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("encode tasks: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot produced by Encode.
func Decode(data []byte) ([]task.Task, error) {
	var tasks []task.Task
	if err := sonic.ConfigStd.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return tasks, nil
}

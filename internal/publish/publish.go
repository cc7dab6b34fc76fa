// Package publish exports a board to a remote task list.
//
// Export is one-way: nothing is read back into the board, and a second
// push of the same board creates a second set of tasks.
package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todolist/internal/service"
	"todolist/internal/todo"
)

// Board is the read side of a todo.Controller.
type Board interface {
	Incomplete() []todo.Item
	Completed() []todo.Item
}

// Target names the remote list to write into.
type Target struct {
	// List is the list title. Empty means the backend's default list.
	List string

	// Create makes a missing List instead of failing.
	Create bool
}

// Result summarizes a push.
type Result struct {
	List      service.TaskList
	Created   int
	Completed int
}

// Publisher writes boards through a service.Service.
type Publisher struct {
	svc service.Service
	log *log.Logger
}

// New returns a Publisher. A nil logger discards output.
func New(svc service.Service, logger *log.Logger) *Publisher {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
	}
	return &Publisher{svc: svc, log: logger}
}

// Resolve finds the list named by t, creating it when allowed.
func (p *Publisher) Resolve(ctx context.Context, t Target) (service.TaskList, error) {
	name := strings.TrimSpace(t.List)
	if name == "" {
		return p.svc.DefaultList(ctx)
	}

	list, err := p.svc.ResolveList(ctx, name)
	if err == nil {
		return list, nil
	}
	if !errors.Is(err, service.ErrListNotFound) || !t.Create {
		return service.TaskList{}, err
	}

	p.log.Info("creating list", "title", name)
	return p.svc.CreateList(ctx, name)
}

// Publish writes every item of b into the target list: incomplete items
// first as open tasks, then complete items as completed tasks, each placed
// after the previous one. It stops at the first backend error and returns
// the counts reached so far.
func (p *Publisher) Publish(ctx context.Context, b Board, t Target) (Result, error) {
	list, err := p.Resolve(ctx, t)
	if err != nil {
		return Result{}, err
	}
	res := Result{List: list}

	var after string
	for _, item := range b.Incomplete() {
		task, err := p.svc.CreateTask(ctx, list.ID, item.Text, after)
		if err != nil {
			return res, fmt.Errorf("push item %d: %w", item.ID, err)
		}
		after = task.ID
		res.Created++
		p.log.Debug("pushed item", "id", item.ID, "task", task.ID)
	}

	for _, item := range b.Completed() {
		task, err := p.svc.CreateTask(ctx, list.ID, item.Text, after)
		if err != nil {
			return res, fmt.Errorf("push item %d: %w", item.ID, err)
		}
		after = task.ID
		res.Created++
		if err := p.svc.CompleteTask(ctx, list.ID, task.ID); err != nil {
			return res, fmt.Errorf("complete item %d: %w", item.ID, err)
		}
		res.Completed++
		p.log.Debug("pushed completed item", "id", item.ID, "task", task.ID)
	}

	return res, nil
}

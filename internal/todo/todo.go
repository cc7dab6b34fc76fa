// Package todo holds the TODO list state: two ordered item lists and the
// transitions between them.
package todo

import (
	"slices"
	"strconv"
)

// ItemID identifies an item for the lifetime of a Controller.
// IDs start at 1 and are never reused.
type ItemID int64

// String returns the decimal form of the ID.
func (id ItemID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseItemID parses the decimal form produced by ItemID.String.
func ParseItemID(s string) (ItemID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 1 {
		return 0, &InvalidIDError{Input: s}
	}
	return ItemID(n), nil
}

// Item is a single TODO entry. Text never changes after Add.
type Item struct {
	ID   ItemID
	Text string
}

// State is the list an item currently lives in.
type State int

const (
	Incomplete State = iota
	Complete
)

func (s State) String() string {
	switch s {
	case Incomplete:
		return "incomplete"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Controller owns the incomplete and complete lists.
// It is not safe for concurrent use.
type Controller struct {
	incomplete []Item
	complete   []Item
	lastID     ItemID
}

// NewController returns an empty controller.
func NewController() *Controller {
	return &Controller{}
}

// Add appends a new item with the given text to the incomplete list and
// returns its ID. Any text is accepted, including the empty string.
func (c *Controller) Add(text string) ItemID {
	c.lastID++
	c.incomplete = append(c.incomplete, Item{ID: c.lastID, Text: text})
	return c.lastID
}

// Complete moves an incomplete item to the end of the complete list.
func (c *Controller) Complete(id ItemID) error {
	item, ok := take(&c.incomplete, id)
	if !ok {
		return &NotFoundError{ID: id, From: Incomplete}
	}
	c.complete = append(c.complete, item)
	return nil
}

// Return moves a completed item to the end of the incomplete list.
func (c *Controller) Return(id ItemID) error {
	item, ok := take(&c.complete, id)
	if !ok {
		return &NotFoundError{ID: id, From: Complete}
	}
	c.incomplete = append(c.incomplete, item)
	return nil
}

// Delete removes an incomplete item permanently.
// Completed items have to be returned before they can be deleted.
func (c *Controller) Delete(id ItemID) error {
	if _, ok := take(&c.incomplete, id); !ok {
		return &NotFoundError{ID: id, From: Incomplete}
	}
	return nil
}

// Incomplete returns a copy of the incomplete list in display order.
func (c *Controller) Incomplete() []Item {
	return slices.Clone(c.incomplete)
}

// Completed returns a copy of the complete list in completion order.
func (c *Controller) Completed() []Item {
	return slices.Clone(c.complete)
}

// Lookup reports where an item currently lives.
// ok is false for IDs that were deleted or never allocated.
func (c *Controller) Lookup(id ItemID) (item Item, state State, ok bool) {
	if i := indexOf(c.incomplete, id); i >= 0 {
		return c.incomplete[i], Incomplete, true
	}
	if i := indexOf(c.complete, id); i >= 0 {
		return c.complete[i], Complete, true
	}
	return Item{}, 0, false
}

// Len returns the sizes of both lists.
func (c *Controller) Len() (incomplete, complete int) {
	return len(c.incomplete), len(c.complete)
}

// take removes the item with the given ID from *list, keeping the order of
// the rest.
func take(list *[]Item, id ItemID) (Item, bool) {
	i := indexOf(*list, id)
	if i < 0 {
		return Item{}, false
	}
	item := (*list)[i]
	*list = slices.Delete(*list, i, i+1)
	return item, true
}

func indexOf(list []Item, id ItemID) int {
	return slices.IndexFunc(list, func(it Item) bool { return it.ID == id })
}

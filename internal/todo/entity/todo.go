package entity

import "time"

// Todo is a single task owned by a user.
type Todo struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Completed   bool
	Priority    int16
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TodoListFilterData carries the resolved filter, sort, and pagination
// values the db layer turns into SQL. Sort values are whitelisted by the
// use case before they get here.
type TodoListFilterData struct {
	UserID         int64
	Completed      bool
	Priority       int16
	OrderBy        string
	OrderDirection string
	Size           int32
	Offset         int32

	IsFilterByCompleted bool
	IsFilterByPriority  bool
}

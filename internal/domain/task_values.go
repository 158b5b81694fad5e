package domain

const (
	titleMinLength       = 3
	titleMaxLength       = 100
	descriptionMinLength = 5
	descriptionMaxLength = 500
)

// TaskTitle is a task title of 3 to 100 characters.
type TaskTitle struct {
	value string
}

// NewTaskTitle validates the title length.
func NewTaskTitle(raw string) (TaskTitle, error) {
	if !lengthBetween(raw, titleMinLength, titleMaxLength) {
		return TaskTitle{}, invalidTitle(raw)
	}
	return TaskTitle{value: raw}, nil
}

func (t TaskTitle) String() string {
	return t.value
}

// TaskDescription is either empty or 5 to 500 characters long.
type TaskDescription struct {
	value string
}

// NewTaskDescription validates the description length. The empty string is
// always accepted.
func NewTaskDescription(raw string) (TaskDescription, error) {
	if raw != "" && !lengthBetween(raw, descriptionMinLength, descriptionMaxLength) {
		return TaskDescription{}, invalidDescription(raw)
	}
	return TaskDescription{value: raw}, nil
}

func (d TaskDescription) String() string {
	return d.value
}

// internal/domain/homework/homework.go
package homework

import (
	"errors"
	"time"
)

// Status is the review verdict key returned by the homework API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Keys of the homework API payload.
const (
	KeyHomeworks = "homeworks"
	KeyName      = "homework_name"
	KeyStatus    = "status"
)

// verdicts maps every known status to the sentence sent to the user.
var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the canonical sentence for a status.
func Verdict(s Status) (string, bool) {
	v, ok := verdicts[s]
	return v, ok
}

// ErrType marks a payload value of an unexpected type.
var ErrType = errors.New("unexpected type")

// ErrKey marks a missing key or an unknown enum value.
var ErrKey = errors.New("key error")

// Delivery is a notification that reached the user.
// Corresponds to the 'homework_notifications' table.
type Delivery struct {
	ID           int64
	HomeworkName string
	Status       Status
	Message      string
	SentAt       time.Time
	CreatedAt    time.Time
}

package types

// SendStatus is the recorded result of one send attempt.
type SendStatus string

const (
	StatusSuccess SendStatus = "Success"
	StatusFailed  SendStatus = "Failed"
)

// SendOutcome records the result of one attempted send within a run.
// Only Success outcomes are ever persisted to the sent ledger; Failed
// outcomes exist for the run log and are retried on future runs.
type SendOutcome struct {
	Email  string     `json:"email"`
	Status SendStatus `json:"status"`
	Error  string     `json:"error"`
}

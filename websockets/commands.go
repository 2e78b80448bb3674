package websockets

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
)

var (
	// ErrNoRemote no submit endpoint is available
	ErrNoRemote = errors.New("no available remote")
	// ErrSubmitRejected the server did not accept the transaction
	ErrSubmitRejected = errors.New("transaction rejected")
	// ErrRemoteClosed the websocket session is shut down
	ErrRemoteClosed = errors.New("remote closed")
)

var counter uint64

type Syncer interface {
	ID() uint64
	Done()
	Fail(message string)
}

// CommandError is the error object rippled returns for a failed command.
type CommandError struct {
	Name    string `json:"error"`
	Code    int    `json:"error_code"`
	Message string `json:"error_message"`
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s %d %s", e.Name, e.Code, e.Message)
}

type Command struct {
	*CommandError
	Id     uint64        `json:"id"`
	Name   string        `json:"command"`
	Type   string        `json:"type,omitempty"`
	Status string        `json:"status,omitempty"`
	Ready  chan struct{} `json:"-"`
}

func (c *Command) ID() uint64 {
	return c.Id
}

func (c *Command) Done() {
	c.Ready <- struct{}{}
}

func (c *Command) Fail(message string) {
	c.CommandError = &CommandError{
		Name:    "Client Error",
		Code:    -1,
		Message: message,
	}
	c.Ready <- struct{}{}
}

func newCommand(command string) *Command {
	return &Command{
		Id:    atomic.AddUint64(&counter, 1),
		Name:  command,
		Ready: make(chan struct{}, 1),
	}
}

type SubmitCommand struct {
	*Command
	TxBlob string        `json:"tx_blob"`
	Result *SubmitResult `json:"result,omitempty"`
}

func newSubmitCommand(blob []byte) *SubmitCommand {
	return &SubmitCommand{
		Command: newCommand("submit"),
		TxBlob:  fmt.Sprintf("%X", blob),
	}
}

// SubmitResult is the result of the submit command.
type SubmitResult struct {
	EngineResult        string      `json:"engine_result"`
	EngineResultCode    int         `json:"engine_result_code"`
	EngineResultMessage string      `json:"engine_result_message"`
	TxBlob              string      `json:"tx_blob"`
	Tx                  interface{} `json:"tx_json"`
}

// Success is true for tesSUCCESS.
func (r *SubmitResult) Success() bool {
	return r.EngineResultCode == 0 && r.EngineResult == "tesSUCCESS"
}

// Queued is true when the server holds the transaction in its queue.
func (r *SubmitResult) Queued() bool {
	return r.EngineResult == "terQUEUED"
}

// Accepted is true when resubmitting the same blob is pointless because
// the server will apply it.
func (r *SubmitResult) Accepted() bool {
	return r.Success() || r.Queued()
}

// Final is true for results that no retry can change: malformed (tem),
// failed (tef) and fee claimed (tec).
func (r *SubmitResult) Final() bool {
	for _, prefix := range []string{"tem", "tef", "tec"} {
		if strings.HasPrefix(r.EngineResult, prefix) {
			return true
		}
	}
	return false
}

func (r *SubmitResult) String() string {
	return fmt.Sprintf("%s (%d) %s", r.EngineResult, r.EngineResultCode, r.EngineResultMessage)
}

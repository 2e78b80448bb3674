package websockets

import (
	"fmt"
	"time"

	"github.com/anyswap/ripple-signer/log"
)

// Submitter sends a signed transaction blob to the network.
type Submitter interface {
	Submit(blob []byte) (*SubmitResult, error)
}

// SubmitWithRetry tries every submitter in turn, up to times rounds with
// interval between rounds. It stops at the first accepted result or at a
// result no retry can change.
func SubmitWithRetry(submitters []Submitter, blob []byte, times int, interval time.Duration) (*SubmitResult, error) {
	if len(submitters) == 0 {
		return nil, ErrNoRemote
	}
	if times <= 0 {
		times = 1
	}
	var lastErr error
	for i := 0; i < times; i++ {
		for _, s := range submitters {
			res, err := s.Submit(blob)
			if err != nil || res == nil {
				log.Warn("Try sending transaction failed", "remote", s, "round", i, "err", err)
				if err == nil {
					err = fmt.Errorf("%v: empty submit result", s)
				}
				lastErr = err
				continue
			}
			if res.Accepted() {
				log.Info("Send transaction success", "remote", s, "result", res.EngineResult)
				return res, nil
			}
			lastErr = fmt.Errorf("%w: %v", ErrSubmitRejected, res)
			if res.Final() {
				log.Warn("Send transaction rejected", "remote", s, "result", res)
				return res, lastErr
			}
			log.Warn("Send transaction not applied", "remote", s, "round", i, "result", res)
		}
		if i+1 < times {
			time.Sleep(interval)
		}
	}
	return nil, lastErr
}

// NewSubmitters connects to every websocket endpoint and wraps every json
// rpc endpoint. Unreachable websockets are logged and skipped. The
// returned func closes the websocket sessions.
func NewSubmitters(wsEndpoints, rpcEndpoints []string, timeout time.Duration) ([]Submitter, func()) {
	var (
		submitters []Submitter
		remotes    []*Remote
	)
	for _, endpoint := range wsEndpoints {
		remote, err := NewRemote(endpoint, timeout)
		if err != nil {
			log.Warn("Cannot connect to remote", "endpoint", endpoint, "err", err)
			continue
		}
		remotes = append(remotes, remote)
		submitters = append(submitters, remote)
	}
	for _, endpoint := range rpcEndpoints {
		submitters = append(submitters, NewRPCClient(endpoint, timeout))
	}
	if len(submitters) == 0 {
		log.Error("No available remote api")
	}
	return submitters, func() {
		for _, r := range remotes {
			r.Close()
		}
	}
}

package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gridsnake/engine/api"
	"github.com/gridsnake/engine/game"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// remoteBoard submits intents to a running engine over its HTTP api. It
// satisfies the board interface so the watch command can steer remotely.
type remoteBoard struct {
	apiURL string
	client *http.Client
}

func newRemoteBoard(apiURL string) *remoteBoard {
	return &remoteBoard{
		apiURL: apiURL,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (rb *remoteBoard) Turn(d game.Direction) (bool, error) {
	return rb.post("/board/turn", api.TurnRequest{Direction: d.String()})
}

func (rb *remoteBoard) TogglePause() (bool, error) {
	return rb.post("/board/pause", nil)
}

func (rb *remoteBoard) Restart() (bool, error) {
	return rb.post("/board/restart", nil)
}

func (rb *remoteBoard) post(path string, body interface{}) (bool, error) {
	buf := &bytes.Buffer{}
	if body != nil {
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return false, err
		}
	}

	resp, err := rb.client.Post(rb.apiURL+path, "application/json", buf)
	if err != nil {
		return false, err
	}
	out := api.IntentResponse{}
	err = json.NewDecoder(resp.Body).Decode(&out)
	if cerr := resp.Body.Close(); cerr != nil {
		log.WithError(cerr).Warn("closing intent response body")
	}
	if err != nil {
		return false, err
	}

	// A rate-limited intent is dropped, not fatal: key repeats can trip
	// the api limiter.
	if resp.StatusCode == http.StatusTooManyRequests {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, errors.Errorf("intent rejected: %s", resp.Status)
	}
	return out.Changed, nil
}

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gridsnake/engine/api"
	"github.com/gridsnake/engine/session"
)

type client struct {
	apiURL string
	client *http.Client
}

func (c *client) board() (*session.Snapshot, int, error) {
	resp, err := c.client.Get(fmt.Sprintf("%s/board", c.apiURL))
	if err != nil {
		return nil, 0, err
	}
	snap := &session.Snapshot{}
	err = json.NewDecoder(resp.Body).Decode(snap)
	if cErr := resp.Body.Close(); cErr != nil {
		return nil, resp.StatusCode, cErr
	}
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return snap, resp.StatusCode, nil
}

func (c *client) intent(path string, body interface{}) (bool, int, error) {
	buf := &bytes.Buffer{}
	if body != nil {
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return false, 0, err
		}
	}

	resp, err := c.client.Post(fmt.Sprintf("%s%s", c.apiURL, path), "application/json", buf)
	if err != nil {
		return false, 0, err
	}
	out := &api.IntentResponse{}
	err = json.NewDecoder(resp.Body).Decode(out)
	if cErr := resp.Body.Close(); cErr != nil {
		return false, resp.StatusCode, cErr
	}
	if err != nil {
		return false, resp.StatusCode, err
	}
	return out.Changed, resp.StatusCode, nil
}

func (c *client) turn(direction string) (bool, int, error) {
	return c.intent("/board/turn", api.TurnRequest{Direction: direction})
}

func (c *client) pause() (bool, int, error) {
	return c.intent("/board/pause", nil)
}

func (c *client) restart() (bool, int, error) {
	return c.intent("/board/restart", nil)
}

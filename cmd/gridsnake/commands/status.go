package commands

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/gridsnake/engine/session"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "dumps the current board snapshot from a running engine",
	Run: func(*cobra.Command, []string) {
		spew.Dump(getStatus())
	},
}

func getStatus() *session.Snapshot {
	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	resp, err := client.Get(fmt.Sprintf("%s/board", apiAddr))
	if err != nil {
		fmt.Println("error while getting board", err)
		return nil
	}

	data, err := ioutil.ReadAll(resp.Body)
	if cerr := resp.Body.Close(); cerr != nil {
		fmt.Println("error while closing body", cerr)
	}
	if err != nil {
		fmt.Println("unable to read response body", err)
		return nil
	}

	snap := &session.Snapshot{}
	err = json.Unmarshal(data, snap)
	if err != nil {
		log.WithFields(log.Fields{
			"resp": string(data),
		}).Infof("unable to unmarshal board response: %s", string(data))
		return nil
	}

	return snap
}

// Command todolist runs a todo list session through the example reducers and prints the resulting state.
//
// Without arguments it runs a scripted session. With -replay it dispatches the actions from a file
// holding one JSON encoded action per line, as written by -record.
//
// Configuration is read from the environment, see the config package.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/reducers-go/action"
	"github.com/AntonStoeckl/reducers-go/example/features/todolist"
	"github.com/AntonStoeckl/reducers-go/example/shared/shell"
	"github.com/AntonStoeckl/reducers-go/example/shared/shell/config"
	"github.com/AntonStoeckl/reducers-go/reducer"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(cfg, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type output struct {
	List   todolist.List   `json:"list"`
	Status todolist.Status `json:"status"`
}

func run(cfg config.Config, args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("todolist", flag.ContinueOnError)
	flags.SetOutput(stderr)
	replayPath := flags.String("replay", "", "dispatch the JSON-lines encoded actions from this file")
	recordPath := flags.String("record", "", "write the dispatched actions as JSON lines to this file")

	if err := flags.Parse(args); err != nil {
		return err
	}

	logger, err := cfg.NewLogger(stderr)
	if err != nil {
		return err
	}

	list := shell.NewStore(todolist.NewListReducer(
		reducer.WithName(cfg.ReducerName+"/list"),
		reducer.WithLogger(logger),
	))
	status := shell.NewStore(todolist.NewStatusReducer(
		reducer.WithName(cfg.ReducerName+"/status"),
		reducer.WithLogger(logger),
	))

	session := scriptedSession()
	if *replayPath != "" {
		if session, err = readSession(*replayPath); err != nil {
			return err
		}
	}

	var journal bytes.Buffer

	for _, a := range session {
		data, err := action.Marshal(a)
		if err != nil {
			return err
		}

		journal.Write(data)
		journal.WriteByte('\n')

		listChanged := list.Dispatch(a)
		statusChanged := status.Dispatch(a)
		logger.Info("dispatched", "action", string(data), "list_changed", listChanged, "status_changed", statusChanged)
	}

	if *recordPath != "" {
		if err := os.WriteFile(*recordPath, journal.Bytes(), 0o600); err != nil {
			return errors.Join(errors.New("writing journal failed"), err)
		}
	}

	logger.Info("session finished", slog.Int("items", len(list.State().Items)), slog.Int("open", list.State().Open()))

	encoded, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(
		output{List: *list.State(), Status: *status.State()}, "", "  ",
	)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, string(encoded))

	return err
}

func scriptedSession() []action.Dispatchable {
	milk := todolist.ItemAdded.Create("buy milk")
	bread := todolist.ItemAdded.Create("buy bread")
	requestID := uuid.New()

	return []action.Dispatchable{
		milk,
		bread,
		todolist.ItemToggled.Create(milk.Payload.ID),
		todolist.Sync.Start.Create(todolist.SyncRequest{RequestID: requestID, Remote: "origin"}),
		todolist.Sync.Fail.Create(todolist.SyncFailure{RequestID: requestID, Reason: "remote unreachable"}),
		todolist.ItemRemoved.Create(bread.Payload.ID),
	}
}

// maxJournalLineBytes bounds one encoded action in a replayed journal.
const maxJournalLineBytes = 16 * 1024 * 1024

func readSession(path string) ([]action.Dispatchable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := todolist.NewDecoder()

	var session []action.Dispatchable

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxJournalLineBytes)
	for line := 1; scanner.Scan(); line++ {
		if len(bytes.TrimSpace(scanner.Bytes())) == 0 {
			continue
		}

		a, err := dec.Decode(scanner.Bytes())
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}

		session = append(session, a)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return session, nil
}

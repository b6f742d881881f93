package wizard

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

const defaultID = 1000

// idEntry is one row from /etc/passwd or /etc/group.
type idEntry struct {
	Name string
	ID   int
}

// stepUser configures the remote user and optional UID/GID mapping. A
// custom UID/GID ends up as a --user runArg so files created in the
// container keep host ownership.
func (w *wizard) stepUser() error {
	useDefault := true
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Use default remote user %q?", defaultRemoteUser)).
			Value(&useDefault),
	)).Run()
	if err != nil {
		return err
	}

	if !useDefault {
		if err := w.mergeTemplate("user.jsonc"); err != nil {
			return err
		}
		var name string
		err := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Remote user name").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("user name cannot be empty")
					}
					return nil
				}).
				Value(&name),
		)).Run()
		if err != nil {
			return err
		}
		w.data["remoteUser"] = strings.TrimSpace(name)
	}

	uid, uidSet, err := w.pickID("UID", hostUsers())
	if err != nil {
		return err
	}
	gid, gidSet, err := w.pickID("GID", hostGroups())
	if err != nil {
		return err
	}

	arg, ok := userRunArg(uid, gid, uidSet, gidSet)
	if !ok {
		return nil
	}

	w.prof.UserID = uid
	w.prof.GroupID = gid
	w.appendRunArg(arg)
	log.Info("Using custom container user", "uid", uid, "gid", gid)

	return nil
}

// userRunArg builds the --user runArg. When only one of UID/GID was
// chosen the other falls back to the default. The chosen flags are
// separate from the values because 0 (root) is a valid choice.
func userRunArg(uid, gid int, uidSet, gidSet bool) (string, bool) {
	if !uidSet && !gidSet {
		return "", false
	}
	if !uidSet {
		uid = defaultID
	}
	if !gidSet {
		gid = defaultID
	}
	return fmt.Sprintf("--user=%d:%d", uid, gid), true
}

// pickID asks whether a custom UID or GID is wanted and lets the user
// choose one from the host's entries or type a value. The second return
// reports whether a value was chosen at all.
func (w *wizard) pickID(kind string, entries []idEntry) (int, bool, error) {
	custom := false
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Set a custom %s? (default %d)", kind, defaultID)).
			Value(&custom),
	)).Run()
	if err != nil {
		return 0, false, err
	}
	if !custom {
		return 0, false, nil
	}

	const manual = -1
	options := []huh.Option[int]{huh.NewOption("Enter a value manually", manual)}
	for _, e := range entries {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s: %d)", e.Name, kind, e.ID), e.ID))
	}

	picked := manual
	err = huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title(fmt.Sprintf("Select a host entry for the %s", kind)).
			Options(options...).
			Value(&picked),
	)).Run()
	if err != nil {
		return 0, false, err
	}
	if picked != manual {
		return picked, true, nil
	}

	var raw string
	err = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(fmt.Sprintf("Custom %s", kind)).
			Validate(func(s string) error {
				n, err := strconv.Atoi(strings.TrimSpace(s))
				if err != nil || n < 0 {
					return fmt.Errorf("%s must be a non-negative integer", kind)
				}
				return nil
			}).
			Value(&raw),
	)).Run()
	if err != nil {
		return 0, false, err
	}

	n, _ := strconv.Atoi(strings.TrimSpace(raw))
	return n, true, nil
}

func hostUsers() []idEntry {
	return readIDFile("/etc/passwd")
}

func hostGroups() []idEntry {
	return readIDFile("/etc/group")
}

func readIDFile(path string) []idEntry {
	f, err := os.Open(path)
	if err != nil {
		log.Warn("Cannot read host entries", "path", path, "err", err)
		return nil
	}
	defer f.Close()
	return parseIDFile(f)
}

// parseIDFile reads colon separated lines where field 0 is the name and
// field 2 the numeric id, the layout shared by /etc/passwd and
// /etc/group.
func parseIDFile(r io.Reader) []idEntry {
	var entries []idEntry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) < 3 {
			continue
		}
		id, err := strconv.Atoi(fields[2])
		if err != nil {
			continue
		}
		entries = append(entries, idEntry{Name: fields[0], ID: id})
	}
	return entries
}
